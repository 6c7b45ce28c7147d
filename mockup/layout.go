package mockup

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Box drawing glyphs
const (
	glyphTopLeft     = "┌"
	glyphTopRight    = "┐"
	glyphBottomLeft  = "└"
	glyphBottomRight = "┘"
	glyphHorizontal  = "─"
	glyphVertical    = "│"
	glyphTeeRight    = "├"
	glyphTeeLeft     = "┤"
	glyphTeeDown     = "┬"
	glyphTeeUp       = "┴"
	glyphCross       = "┼"
)

// Measure selects how the renderer counts the width of a string.
type Measure string

const (
	// MeasureRunes counts one column per rune.
	MeasureRunes Measure = "runes"
	// MeasureCells counts terminal display cells, so wide glyphs take two.
	MeasureCells Measure = "cells"
)

// ParseMeasure converts a flag or config value to a Measure.
// Anything other than "cells" measures runes.
func ParseMeasure(s string) Measure {
	if strings.EqualFold(strings.TrimSpace(s), string(MeasureCells)) {
		return MeasureCells
	}
	return MeasureRunes
}

// Renderer draws the mockup templates. It holds no state beyond the
// measure it was built with, so every method is a pure function of its
// arguments.
type Renderer struct {
	measure Measure
}

// NewRenderer creates a renderer using the given measure.
func NewRenderer(measure Measure) *Renderer {
	if measure != MeasureCells {
		measure = MeasureRunes
	}
	return &Renderer{measure: measure}
}

// Measure returns the measure the renderer pads and truncates with.
func (r *Renderer) Measure() Measure {
	return r.measure
}

// TextWidth returns the width of s under the renderer's measure.
func (r *Renderer) TextWidth(s string) int {
	if r.measure == MeasureCells {
		return runewidth.StringWidth(s)
	}
	return len([]rune(s))
}

func (r *Renderer) runeWidth(c rune) int {
	if r.measure == MeasureCells {
		return runewidth.RuneWidth(c)
	}
	return 1
}

// truncate cuts s to at most n columns. A non-positive n gives "".
func (r *Renderer) truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if r.TextWidth(s) <= n {
		return s
	}

	var b strings.Builder
	used := 0
	for _, c := range s {
		w := r.runeWidth(c)
		if used+w > n {
			break
		}
		b.WriteRune(c)
		used += w
	}
	return b.String()
}

// fit left-justifies s into exactly n columns, truncating when s is wider.
func (r *Renderer) fit(s string, n int) string {
	s = r.truncate(s, n)
	return s + spaces(n-r.TextWidth(s))
}

// row renders a full-width content row: "│ text │".
func (r *Renderer) row(text string, width int) string {
	return glyphVertical + " " + r.fit(text, width-4) + " " + glyphVertical
}

// cell renders one column cell without its closing glyph: "│ text".
func (r *Renderer) cell(text string, width int) string {
	return glyphVertical + " " + r.fit(text, width-2)
}

// columnRow renders cells for each column followed by the closing glyph.
// Missing cells are blank and surplus cells are dropped.
func (r *Renderer) columnRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, w := range widths {
		var text string
		if i < len(cells) {
			text = cells[i]
		}
		b.WriteString(r.cell(text, w))
	}
	b.WriteString(glyphVertical)
	return b.String()
}

// boxBorder renders a horizontal border of the given total width.
func boxBorder(width int, left, right string) string {
	return left + dashes(width-2) + right
}

// columnBorder renders a horizontal border across columns. Each column
// contributes its boundary glyph and width-1 dashes.
func columnBorder(widths []int, left, join, right string) string {
	var b strings.Builder
	for i, w := range widths {
		if i == 0 {
			b.WriteString(left)
		} else {
			b.WriteString(join)
		}
		b.WriteString(dashes(w - 1))
	}
	b.WriteString(right)
	return b.String()
}

func dashes(n int) string {
	return repeat(glyphHorizontal, n)
}

func spaces(n int) string {
	return repeat(" ", n)
}

// repeat is strings.Repeat with negative counts treated as zero.
func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

// Lines splits a rendered block into its lines.
func Lines(block string) []string {
	if block == "" {
		return nil
	}
	return strings.Split(block, "\n")
}
