package cmds

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telton/asciimock/mockup"
)

// run executes the app with args and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ASCIIMOCK_CONFIG", "")
	t.Setenv("ASCIIMOCK_LOG_LEVEL", "")

	var out, errOut bytes.Buffer
	app := NewApp()
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.Run(context.Background(), append([]string{"asciimock"}, args...))
	return out.String(), err
}

func TestNavbarCommand(t *testing.T) {
	out, err := run(t, "navbar", "--width", "40", "--items", "Home", "About")
	require.NoError(t, err)

	want := mockup.NewRenderer(mockup.MeasureRunes).Navbar(mockup.NavbarParams{
		Logo:  "Logo",
		Items: []string{"Home", "About"},
		Width: 40,
	})
	assert.Equal(t, want+"\n", out)
}

func TestCardsCommand(t *testing.T) {
	out, err := run(t, "cards", "--title", "Plan")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	for _, line := range lines {
		// 80 columns across 3 cards leaves 26 per card
		assert.Equal(t, 3*26+2*2, len([]rune(line)))
	}
	assert.Equal(t, 3, strings.Count(lines[1], "Plan"))
}

func TestCardsCommand_InvalidCount(t *testing.T) {
	_, err := run(t, "cards", "--count", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count must be positive")

	_, err = run(t, "cards", "--count", "50", "--width", "80")
	assert.ErrorIs(t, err, mockup.ErrCardTooNarrow)
}

func TestFormCommand(t *testing.T) {
	out, err := run(t, "form", "--width", "40", "--items", "Name", "Email")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 11)
	assert.Contains(t, lines[3], "Name")
	assert.Contains(t, lines[6], "Email")
}

func TestSidebarCommand(t *testing.T) {
	out, err := run(t, "sidebar", "--title", "Acme")
	require.NoError(t, err)

	assert.Contains(t, out, "│ Acme")
	assert.Contains(t, out, "► Dashboard")
	assert.Contains(t, out, "► Settings")
	assert.NotContains(t, out, "► Logout")
}

func TestModalCommand(t *testing.T) {
	out, err := run(t, "modal", "--width", "50", "--content", `First line\nSecond line`)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[1], "Confirm Action")
	assert.Contains(t, lines[3], "First line")
	assert.Contains(t, lines[4], "Second line")
}

func TestTableCommand_Defaults(t *testing.T) {
	out, err := run(t, "table")
	require.NoError(t, err)

	assert.Contains(t, out, "│ Name")
	assert.Contains(t, out, "john@example.com")
	assert.Contains(t, out, "Inactive")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 6)
	for _, line := range lines[1:] {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(line)))
	}
}

func TestTableCommand_RowsAndWidths(t *testing.T) {
	out, err := run(t, "table", "--row", "1,2", "--widths", "3,3", "--items", "A", "B")
	require.NoError(t, err)

	assert.Equal(t, "┌──┌──┐\n│ A│ B│\n├──├──┤\n│ 1│ 2│\n└──└──┘\n", out)
}

func TestTableCommand_Joined(t *testing.T) {
	out, err := run(t, "table", "--joined", "--row", "1,2", "--widths", "3,3", "--items", "A", "B")
	require.NoError(t, err)

	assert.Equal(t, "┌──┬──┐\n│ A│ B│\n├──┼──┤\n│ 1│ 2│\n└──┴──┘\n", out)
}

func TestTableCommand_InterspersedFlags(t *testing.T) {
	out, err := run(t, "table", "--items", "A", "B", "--row", "1,2", "--widths", "3,3")
	require.NoError(t, err)

	assert.Equal(t, "┌──┌──┐\n│ A│ B│\n├──├──┤\n│ 1│ 2│\n└──└──┘\n", out)
}

func TestRenderCommand_ItemsKeepCommas(t *testing.T) {
	out, err := run(t, "navbar", "--items", "Home, About")
	require.NoError(t, err)

	assert.Contains(t, out, "Home, About")
}

func TestRenderCommand_UnknownTemplate(t *testing.T) {
	t.Setenv("ASCIIMOCK_CONFIG", "")
	t.Setenv("ASCIIMOCK_LOG_LEVEL", "")

	var out, errOut bytes.Buffer
	app := NewApp()
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.Run(context.Background(), []string{"asciimock", "carousel"})
	require.Error(t, err)
	assert.ErrorIs(t, err, mockup.ErrUnknownTemplate)
	assert.Contains(t, err.Error(), `"carousel"`)

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "navbar")
}

func TestRenderCommand_NoTemplate(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)

	assert.Contains(t, out, "asciimock")
	assert.Contains(t, out, "table")
}

func TestTableCommand_BadWidths(t *testing.T) {
	_, err := run(t, "table", "--widths", "3,x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse widths")

	_, err = run(t, "table", "--widths", "3,0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column width must be positive")
}

func TestRenderCommand_InvalidWidth(t *testing.T) {
	_, err := run(t, "navbar", "--width", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width must be positive")
}

func TestRenderCommand_JSON(t *testing.T) {
	out, err := run(t, "--format", "json", "navbar", "--width", "40")
	require.NoError(t, err)

	var got renderedBlock
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "navbar", got.Template)
	assert.Len(t, got.Lines, 3)
}

func TestRenderCommand_MeasureCells(t *testing.T) {
	out, err := run(t, "--measure", "cells", "navbar", "--width", "40")
	require.NoError(t, err)

	r := mockup.NewRenderer(mockup.MeasureCells)
	for _, line := range mockup.Lines(strings.TrimSuffix(out, "\n")) {
		assert.Equal(t, 40, r.TextWidth(line))
	}
}

func TestRenderCommand_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asciimock.yaml")
	data := "width: 60\ntemplates:\n  navbar:\n    title: Acme\n    items: [Docs, Blog]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := run(t, "--config", path, "navbar")
	require.NoError(t, err)

	lines := mockup.Lines(strings.TrimSuffix(out, "\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, 60, len([]rune(lines[0])))
	assert.Contains(t, lines[1], " Acme    Docs  Blog ")

	// flags win over the config file
	out, err = run(t, "--config", path, "navbar", "--title", "Other", "--width", "50")
	require.NoError(t, err)
	assert.Contains(t, out, " Other    Docs  Blog ")
	assert.Equal(t, 50, len([]rune(mockup.Lines(out)[0])))
}

func TestRenderCommand_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asciimock.yaml")
	require.NoError(t, os.WriteFile(path, []byte("templates:\n  carousel: {}\n"), 0o644))

	_, err := run(t, "--config", path, "navbar")
	assert.ErrorIs(t, err, mockup.ErrUnknownTemplate)
}

func TestRenderCommand_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navbar.txt")

	out, err := run(t, "--output", path, "navbar")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, mockup.NewRenderer(mockup.MeasureRunes).Navbar(mockup.NavbarParams{
		Logo:  "Logo",
		Items: []string{"Home", "About", "Services"},
		Width: 80,
	})+"\n", string(data))
}

func TestRenderCommand_Idempotent(t *testing.T) {
	first, err := run(t, "sidebar", "--width", "70", "--items", "One", "Two")
	require.NoError(t, err)
	second, err := run(t, "sidebar", "--width", "70", "--items", "One", "Two")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseRows(t *testing.T) {
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, parseRows([]string{"a, b", "c"}))
}
