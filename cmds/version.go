package cmds

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/telton/asciimock/internal/version"
	"github.com/telton/asciimock/ui"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Usage:   "Show version information",
		Aliases: []string{"v"},
		Action: func(ctx context.Context, c *cli.Command) error {
			_, err := fmt.Fprintln(c.Root().Writer, ui.NewLabelValue("asciimock", version.Get()).Render())
			return err
		},
	}
}
