package cmds

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/telton/asciimock/internal/config"
	"github.com/telton/asciimock/internal/logger"
	"github.com/telton/asciimock/internal/version"
	"github.com/telton/asciimock/mockup"
)

// NewApp builds the asciimock command tree.
func NewApp() *cli.Command {
	commands := templateCommands()
	commands = append(commands, listCmd(), versionCmd())

	return &cli.Command{
		Name:    "asciimock",
		Usage:   "sketch UI layouts as ASCII art",
		Version: version.Get(),
		Description: `asciimock prints fixed ASCII-art mockups of common UI patterns
(navigation bars, card grids, forms, sidebars, modals and tables) for
pasting into docs, tickets and design discussions.`,
		Flags:    globalFlags(),
		Commands: commands,
		Action:   unknownTemplate,
	}
}

// unknownTemplate runs when no subcommand matched. With no arguments it
// shows help; otherwise the first argument names a template that does not
// exist, so usage goes to stderr and the lookup error is returned.
func unknownTemplate(ctx context.Context, c *cli.Command) error {
	if !c.Args().Present() {
		return cli.ShowRootCommandHelp(c)
	}

	name := c.Args().First()
	cli.HelpPrinter(c.Root().ErrWriter, cli.RootCommandHelpTemplate, c)
	return fmt.Errorf("%w: %q", mockup.ErrUnknownTemplate, name)
}

// Execute runs asciimock with the given command-line arguments.
func Execute(ctx context.Context, args []string) error {
	return NewApp().Run(ctx, args)
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML file with per-template defaults",
			Sources: cli.EnvVars("ASCIIMOCK_CONFIG"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (debug, info, warn, error)",
			Value:   string(logger.LevelWarn),
			Sources: cli.EnvVars("ASCIIMOCK_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:      "log-format",
			Usage:     "Log format (text, json)",
			Value:     "text",
			Validator: oneOf("log format", "text", "json"),
		},
		&cli.StringFlag{
			Name:      "format",
			Aliases:   []string{"f"},
			Usage:     "The output format (text, json)",
			Value:     "text",
			Validator: oneOf("format", "text", "json"),
		},
		&cli.StringFlag{
			Name:      "measure",
			Usage:     "How to measure text width (runes, cells)",
			Value:     string(mockup.MeasureRunes),
			Validator: oneOf("measure", string(mockup.MeasureRunes), string(mockup.MeasureCells)),
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Color borders and actions in text output",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write output to a file instead of stdout",
		},
	}
}

// setup configures logging and loads the config file before a subcommand
// runs. It hangs off each subcommand rather than the root so that global
// flags given after the subcommand name are already parsed.
func setup(ctx context.Context, c *cli.Command) (context.Context, error) {
	logger.Setup(&logger.Config{
		Level:  logger.ParseLevelFromString(c.String("log-level")),
		Format: c.String("log-format"),
		Output: c.Root().ErrWriter,
	})

	path := c.String("config")
	cfg, err := config.Load(path)
	if err != nil {
		return ctx, fmt.Errorf("load config %s: %w", path, err)
	}
	if path != "" {
		logger.Debug("Loaded config", "path", path, "templates", len(cfg.Templates))
	}

	return config.WithContext(ctx, cfg), nil
}

func oneOf(what string, allowed ...string) func(string) error {
	return func(s string) error {
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return fmt.Errorf("unknown %s value: %s", what, s)
	}
}
