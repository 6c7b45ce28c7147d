package cmds

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telton/asciimock/internal/version"
)

func TestListCommand_Text(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "navbar: "))
	assert.True(t, strings.HasPrefix(lines[5], "table: "))
}

func TestListCommand_Pretty(t *testing.T) {
	out, err := run(t, "list", "--pretty")
	require.NoError(t, err)

	assert.Contains(t, out, "Available Templates")
	assert.Contains(t, out, "sidebar")
	assert.Contains(t, out, "template(s) available")

	// index column is right-aligned, default width column centered
	assert.Contains(t, out, " 1  navbar      Navigation bar")
	assert.Contains(t, out, "  80   ")
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, " 6  table") {
			assert.True(t, strings.HasSuffix(line, "   auto  "), "table row %q", line)
		}
	}
}

func TestListCommand_JSON(t *testing.T) {
	out, err := run(t, "--format", "json", "ls")
	require.NoError(t, err)

	var got []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Width       int    `json:"width"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 6)
	assert.Equal(t, "cards", got[1].Name)
	assert.Equal(t, 80, got[0].Width)
	assert.Zero(t, got[5].Width)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "asciimock")
	assert.Contains(t, out, version.Get())
}
