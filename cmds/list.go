package cmds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/telton/asciimock/internal/logger"
	"github.com/telton/asciimock/mockup"
	"github.com/telton/asciimock/ui"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:        "list",
		Aliases:     []string{"ls"},
		Usage:       "list all available templates",
		Description: `List prints every template asciimock can render along with a short description.`,
		Before:      setup,
		Action: func(ctx context.Context, c *cli.Command) error {
			outFmt := c.String("format")
			pretty := c.Bool("pretty")

			logger.Debug("Listing templates", "format", outFmt, "pretty", pretty)

			type templateInfo struct {
				Name        string `json:"name"`
				Description string `json:"description"`
				Width       int    `json:"width,omitempty"`
			}

			var templates []templateInfo
			for _, t := range mockup.Templates() {
				templates = append(templates, templateInfo{
					Name:        t.Name,
					Description: t.Description,
					Width:       t.Defaults.Width,
				})
			}

			return withOutput(c, func(w io.Writer) error {
				switch outFmt {
				case "json":
					encoder := json.NewEncoder(w)
					if pretty {
						encoder.SetIndent("", "  ")
					}
					if err := encoder.Encode(templates); err != nil {
						return fmt.Errorf("write json: %w", err)
					}
					return nil
				case "text":
					fallthrough
				default:
					var b strings.Builder
					if pretty {
						table := ui.NewTable().
							AddColumn("#", 2, "right").
							AddColumn("Template", 10, "left").
							AddColumn("Description", 60, "left").
							AddColumn("Width", 7, "center")
						for i, t := range templates {
							// table columns are sized from content
							width := "auto"
							if t.Width > 0 {
								width = strconv.Itoa(t.Width)
							}
							table.AddRow(strconv.Itoa(i+1), t.Name, t.Description, width)
						}
						fmt.Fprintln(&b, ui.NewHeader("Available Templates").WithMargin().Render())
						fmt.Fprintln(&b, table.Render())
						fmt.Fprintln(&b)
						fmt.Fprintln(&b, ui.NewCount(len(templates), "template(s) available").Render())
					} else {
						for _, t := range templates {
							fmt.Fprintf(&b, "%s: %s\n", t.Name, t.Description)
						}
					}
					if _, err := io.WriteString(w, b.String()); err != nil {
						return fmt.Errorf("write list: %w", err)
					}
					return nil
				}
			})
		},
	}
}
