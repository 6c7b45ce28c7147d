package cmds

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/telton/asciimock/internal/config"
	"github.com/telton/asciimock/internal/logger"
	"github.com/telton/asciimock/mockup"
)

// params holds the resolved values for one render, after flags, config and
// catalog defaults have been merged.
type params struct {
	Title   string
	Items   []string
	Width   int
	Count   int
	Content string
	Rows    [][]string
	Widths  []int
	Joined  bool
}

type renderFunc func(r *mockup.Renderer, p params) (string, error)

var renderers = map[string]renderFunc{
	mockup.NavbarTemplate: func(r *mockup.Renderer, p params) (string, error) {
		return r.Navbar(mockup.NavbarParams{Logo: p.Title, Items: p.Items, Width: p.Width}), nil
	},
	mockup.CardsTemplate: func(r *mockup.Renderer, p params) (string, error) {
		cardWidth, err := mockup.CardWidth(p.Width, p.Count)
		if err != nil {
			return "", err
		}
		return r.Cards(mockup.CardsParams{Title: p.Title, Count: p.Count, CardWidth: cardWidth}), nil
	},
	mockup.FormTemplate: func(r *mockup.Renderer, p params) (string, error) {
		return r.Form(mockup.FormParams{Title: p.Title, Fields: p.Items, Width: p.Width}), nil
	},
	mockup.SidebarTemplate: func(r *mockup.Renderer, p params) (string, error) {
		return r.Sidebar(mockup.SidebarParams{Logo: p.Title, Items: p.Items, Width: p.Width}), nil
	},
	mockup.ModalTemplate: func(r *mockup.Renderer, p params) (string, error) {
		return r.Modal(mockup.ModalParams{Title: p.Title, Content: p.Content, Width: p.Width}), nil
	},
	mockup.TableTemplate: func(r *mockup.Renderer, p params) (string, error) {
		return r.Table(mockup.TableParams{Headers: p.Items, Rows: p.Rows, Widths: p.Widths, Joined: p.Joined}), nil
	},
}

// templateCommands builds one subcommand per catalog template.
func templateCommands() []*cli.Command {
	var commands []*cli.Command
	for _, tmpl := range mockup.Templates() {
		commands = append(commands, templateCommand(tmpl))
	}
	return commands
}

func templateCommand(tmpl mockup.Template) *cli.Command {
	d := tmpl.Defaults

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "title",
			Aliases: []string{"t"},
			Usage:   "Title, heading or logo text",
			Value:   d.Title,
		},
		&cli.IntFlag{
			Name:      "width",
			Aliases:   []string{"w"},
			Usage:     "Width of the mockup in columns",
			Value:     d.Width,
			Validator: positive("width"),
		},
		&cli.StringSliceFlag{
			Name:    "items",
			Aliases: []string{"i"},
			Usage:   "Menu items, form fields or table headers; trailing arguments are appended",
		},
		&cli.IntFlag{
			Name:      "count",
			Aliases:   []string{"n"},
			Usage:     "Number of repeated elements",
			Value:     max(d.Count, 1),
			Validator: positive("count"),
		},
	}

	switch tmpl.Name {
	case mockup.ModalTemplate:
		flags = append(flags, &cli.StringFlag{
			Name:  "content",
			Usage: `Dialog message; "\n" starts a new line`,
			Value: d.Content,
		})
	case mockup.TableTemplate:
		flags = append(flags,
			&cli.StringSliceFlag{
				Name:  "row",
				Usage: "Data row as comma-separated cells (repeatable)",
			},
			&cli.StringFlag{
				Name:  "widths",
				Usage: "Comma-separated column widths",
			},
			&cli.BoolFlag{
				Name:  "joined",
				Usage: "Draw ┬ ┼ ┴ joins between columns",
			},
		)
	}

	return &cli.Command{
		Name:      tmpl.Name,
		Usage:     strings.ToLower(tmpl.Description[:1]) + tmpl.Description[1:],
		ArgsUsage: "[ITEM...]",
		// --row and --items values keep their commas; parseRows splits cells
		DisableSliceFlagSeparator: true,
		Flags:                     flags,
		Before:                    setup,
		Action: func(ctx context.Context, c *cli.Command) error {
			return renderTemplate(ctx, c, tmpl)
		},
	}
}

func renderTemplate(ctx context.Context, c *cli.Command, tmpl mockup.Template) error {
	cfg := config.FromContext(ctx)

	p, err := resolveParams(c, tmpl, cfg)
	if err != nil {
		return err
	}

	measure := mockup.ParseMeasure(cfg.Measure)
	if c.IsSet("measure") || cfg.Measure == "" {
		measure = mockup.ParseMeasure(c.String("measure"))
	}

	logger.Debug("Rendering template",
		"template", tmpl.Name,
		"title", p.Title,
		"items", p.Items,
		"width", p.Width,
		"count", p.Count,
		"measure", measure,
	)

	block, err := renderers[tmpl.Name](mockup.NewRenderer(measure), p)
	if err != nil {
		return fmt.Errorf("render %s: %w", tmpl.Name, err)
	}

	return writeBlock(c, tmpl.Name, block, c.Bool("pretty") || cfg.Pretty)
}

// resolveParams merges, in increasing priority, the catalog defaults, the
// config file and explicitly set flags.
func resolveParams(c *cli.Command, tmpl mockup.Template, cfg *config.Config) (params, error) {
	d := tmpl.Defaults
	p := params{
		Title:   d.Title,
		Items:   d.Items,
		Width:   d.Width,
		Count:   d.Count,
		Content: d.Content,
		Rows:    d.Rows,
	}

	if cfg.Width > 0 && d.Width > 0 {
		p.Width = cfg.Width
	}
	t := cfg.Template(tmpl.Name)
	if t.Title != "" {
		p.Title = t.Title
	}
	if t.Items != nil {
		p.Items = t.Items
	}
	if t.Width > 0 {
		p.Width = t.Width
	}
	if t.Count > 0 {
		p.Count = t.Count
	}
	if t.Content != "" {
		p.Content = t.Content
	}
	if t.Rows != nil {
		p.Rows = t.Rows
	}
	p.Widths = t.Widths

	if c.IsSet("title") {
		p.Title = c.String("title")
	}
	if c.IsSet("width") {
		p.Width = c.Int("width")
	}
	if c.IsSet("count") {
		p.Count = c.Int("count")
	}
	if items := append(c.StringSlice("items"), c.Args().Slice()...); len(items) > 0 {
		p.Items = items
	}

	switch tmpl.Name {
	case mockup.ModalTemplate:
		if c.IsSet("content") {
			p.Content = c.String("content")
		}
		p.Content = strings.ReplaceAll(p.Content, `\n`, "\n")
	case mockup.TableTemplate:
		if rows := c.StringSlice("row"); len(rows) > 0 {
			p.Rows = parseRows(rows)
		}
		if c.IsSet("widths") {
			widths, err := parseWidths(c.String("widths"))
			if err != nil {
				return params{}, err
			}
			p.Widths = widths
		}
		if p.Widths == nil {
			p.Widths = mockup.ContentWidths(p.Items, p.Rows, d.ColumnPadding)
		}
		p.Joined = c.Bool("joined")
	}

	return p, nil
}

func parseRows(rows []string) [][]string {
	parsed := make([][]string, len(rows))
	for i, row := range rows {
		cells := strings.Split(row, ",")
		for j := range cells {
			cells[j] = strings.TrimSpace(cells[j])
		}
		parsed[i] = cells
	}
	return parsed
}

func parseWidths(s string) ([]int, error) {
	var widths []int
	for _, part := range strings.Split(s, ",") {
		w, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parse widths %q: %w", s, err)
		}
		if w < 1 {
			return nil, fmt.Errorf("parse widths %q: column width must be positive, got %d", s, w)
		}
		widths = append(widths, w)
	}
	return widths, nil
}

func positive(what string) func(int) error {
	return func(n int) error {
		if n < 1 {
			return fmt.Errorf("%s must be positive, got %d", what, n)
		}
		return nil
	}
}
