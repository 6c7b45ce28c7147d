package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	borderGlyphs = "┌┐└┘─│├┤┬┴┼"
	markerGlyphs = "►×🔍"
)

// Highlight colors a rendered mockup block: box-drawing borders, marker
// glyphs, bracketed actions like [OK] and bracketed input placeholders.
// Text between them is left unstyled, so stripping the escape codes gives
// back the original block.
func Highlight(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = highlightLine(line)
	}
	return strings.Join(lines, "\n")
}

func highlightLine(line string) string {
	var (
		b     strings.Builder
		plain strings.Builder
	)
	flush := func() {
		b.WriteString(plain.String())
		plain.Reset()
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case strings.ContainsRune(borderGlyphs, c):
			flush()
			j := i
			for j < len(runes) && strings.ContainsRune(borderGlyphs, runes[j]) {
				j++
			}
			b.WriteString(Border.Render(string(runes[i:j])))
			i = j - 1
		case strings.ContainsRune(markerGlyphs, c):
			flush()
			b.WriteString(Glyph.Render(string(c)))
		case c == '[':
			end := indexRune(runes[i:], ']')
			if end < 0 || isMarker(runes[i:i+end+1]) {
				plain.WriteRune(c)
				continue
			}
			flush()
			token := string(runes[i : i+end+1])
			b.WriteString(bracketStyle(token).Render(token))
			i += end
		default:
			plain.WriteRune(c)
		}
	}
	flush()
	return b.String()
}

// bracketStyle picks Muted for input placeholders like [____] and Action
// for everything else.
func bracketStyle(token string) lipgloss.Style {
	if strings.Trim(token[1:len(token)-1], "_") == "" {
		return Muted
	}
	return Action
}

// isMarker reports whether the bracketed token wraps a marker glyph, as
// in the modal close button [×], which is styled glyph by glyph instead.
func isMarker(token []rune) bool {
	return strings.ContainsAny(string(token), markerGlyphs)
}

func indexRune(runes []rune, r rune) int {
	for i, c := range runes {
		if c == r {
			return i
		}
	}
	return -1
}
