package cmds

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/telton/asciimock/internal/logger"
	"github.com/telton/asciimock/mockup"
	"github.com/telton/asciimock/ui"
)

type renderedBlock struct {
	Template string   `json:"template"`
	Lines    []string `json:"lines"`
}

// writeBlock writes a rendered block in the requested --format to stdout
// or the --output file.
func writeBlock(c *cli.Command, name, block string, pretty bool) error {
	return withOutput(c, func(w io.Writer) error {
		if c.String("format") == "json" {
			encoder := json.NewEncoder(w)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(renderedBlock{Template: name, Lines: mockup.Lines(block)}); err != nil {
				return fmt.Errorf("write json: %w", err)
			}
			return nil
		}

		if pretty {
			block = ui.Highlight(block)
		}
		if _, err := fmt.Fprintln(w, block); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		return nil
	})
}

// withOutput calls fn with the --output file, or the root writer when no
// file was given.
func withOutput(c *cli.Command, fn func(w io.Writer) error) error {
	path := c.String("output")
	if path == "" {
		return fn(c.Root().Writer)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	logger.Info("Wrote output", "path", path)
	return nil
}
