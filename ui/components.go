package ui

import (
	"strconv"
	"strings"
)

// HeaderComponent renders styled headers
type HeaderComponent struct {
	Text   string
	Margin bool
}

// NewHeader creates a new header component
func NewHeader(text string) *HeaderComponent {
	return &HeaderComponent{Text: text}
}

// WithMargin adds bottom margin to the header
func (h *HeaderComponent) WithMargin() *HeaderComponent {
	h.Margin = true
	return h
}

// Render outputs the styled header
func (h *HeaderComponent) Render() string {
	style := Header
	if h.Margin {
		style = style.MarginBottom(1)
	}
	return style.Render(h.Text)
}

// LabelValueComponent renders label: value pairs
type LabelValueComponent struct {
	Label  string
	Value  string
	Indent int
}

// NewLabelValue creates a new label-value component
func NewLabelValue(label, value string) *LabelValueComponent {
	return &LabelValueComponent{Label: label, Value: value}
}

// WithIndent adds left indentation
func (lv *LabelValueComponent) WithIndent(spaces int) *LabelValueComponent {
	lv.Indent = spaces
	return lv
}

// Render outputs the styled label-value pair
func (lv *LabelValueComponent) Render() string {
	result := Label.Render(lv.Label) + " " + Value.Render(lv.Value)
	if lv.Indent > 0 {
		result = strings.Repeat(" ", lv.Indent) + result
	}
	return result
}

// CountComponent renders a highlighted count followed by a noun
type CountComponent struct {
	N    int
	Noun string
}

// NewCount creates a new count component
func NewCount(n int, noun string) *CountComponent {
	return &CountComponent{N: n, Noun: noun}
}

// Render outputs the styled count
func (c *CountComponent) Render() string {
	return Count.Render(strconv.Itoa(c.N)) + " " + c.Noun
}
