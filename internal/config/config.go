// Package config loads per-template default overrides from a YAML file.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/telton/asciimock/mockup"
)

// Template overrides the catalog defaults of one template.
type Template struct {
	Title   string     `yaml:"title,omitempty"`
	Items   []string   `yaml:"items,omitempty"`
	Width   int        `yaml:"width,omitempty"`
	Count   int        `yaml:"count,omitempty"`
	Content string     `yaml:"content,omitempty"`
	Rows    [][]string `yaml:"rows,omitempty"`
	Widths  []int      `yaml:"widths,omitempty"`
}

// Config is the contents of an asciimock config file.
type Config struct {
	Width     int                 `yaml:"width,omitempty"`
	Pretty    bool                `yaml:"pretty,omitempty"`
	Measure   string              `yaml:"measure,omitempty"`
	Templates map[string]Template `yaml:"templates,omitempty"`
}

// Load reads the config file at path. An empty path returns an empty config.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates config file contents.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) validate() error {
	if c.Width < 0 {
		return fmt.Errorf("config width must be positive, got %d", c.Width)
	}
	if c.Measure != "" && c.Measure != string(mockup.MeasureRunes) && c.Measure != string(mockup.MeasureCells) {
		return fmt.Errorf("config measure must be %q or %q, got %q", mockup.MeasureRunes, mockup.MeasureCells, c.Measure)
	}

	for name, t := range c.Templates {
		if _, err := mockup.Lookup(name); err != nil {
			return fmt.Errorf("config templates: %w", err)
		}
		if t.Width < 0 {
			return fmt.Errorf("config templates.%s.width must be positive, got %d", name, t.Width)
		}
		if t.Count < 0 {
			return fmt.Errorf("config templates.%s.count must be positive, got %d", name, t.Count)
		}
	}

	return nil
}

// Template returns the overrides for name, or the zero value if the file
// has none.
func (c *Config) Template(name string) Template {
	if c == nil {
		return Template{}
	}
	return c.Templates[name]
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying c.
func WithContext(ctx context.Context, c *Config) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the config carried by ctx, or an empty config.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(contextKey{}).(*Config); ok && c != nil {
		return c
	}
	return &Config{}
}
