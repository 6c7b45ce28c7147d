package mockup

import (
	"strings"
)

const (
	defaultLogo       = "Logo"
	defaultWideWidth  = 80
	defaultFormWidth  = 40
	defaultModalWidth = 50
	defaultCardWidth  = 20
	defaultCardCount  = 3

	// navbar reserves room for the search affordance and the box padding
	navSearchWidth = 8
	navPadding     = 4
	navItemSlack   = 5

	sidebarWidth    = 20
	sidebarNavSlots = 6

	// columns added to each header length when no table widths are given
	tableHeaderPadding = 2
)

// NavbarParams configures a navigation bar.
type NavbarParams struct {
	Logo  string
	Items []string
	Width int
}

// Navbar renders a single-row bordered navigation bar.
func (r *Renderer) Navbar(p NavbarParams) string {
	logo := orDefault(p.Logo, defaultLogo)
	items := p.Items
	if items == nil {
		items = []string{"Home", "About", "Services", "Contact"}
	}
	width := orDefaultInt(p.Width, defaultWideWidth)

	logoWidth := r.TextWidth(logo) + 4
	itemBudget := width - logoWidth - navSearchWidth - navPadding - navItemSlack
	navItems := r.truncate(strings.Join(items, "  "), itemBudget)

	content := " " + logo + "    " + navItems + " 🔍 Search "

	return strings.Join([]string{
		boxBorder(width, glyphTopLeft, glyphTopRight),
		glyphVertical + r.fit(content, width-2) + glyphVertical,
		boxBorder(width, glyphBottomLeft, glyphBottomRight),
	}, "\n")
}

// CardsParams configures a card grid. A zero Count draws the default three
// cards; a negative Count draws nothing.
type CardsParams struct {
	Title     string
	Count     int
	CardWidth int
}

// Cards renders Count identical cards side by side, two spaces apart.
func (r *Renderer) Cards(p CardsParams) string {
	title := orDefault(p.Title, "Card Title")
	count := orDefaultInt(p.Count, defaultCardCount)
	if count < 0 {
		return ""
	}
	width := orDefaultInt(p.CardWidth, defaultCardWidth)

	card := []string{
		boxBorder(width, glyphTopLeft, glyphTopRight),
		r.row(title, width),
		glyphVertical + " " + dashes(width-4) + " " + glyphVertical,
		r.row("Content", width),
		r.row("[Action]", width),
		boxBorder(width, glyphBottomLeft, glyphBottomRight),
	}

	lines := make([]string, len(card))
	for i, line := range card {
		copies := make([]string, count)
		for j := range copies {
			copies[j] = line
		}
		lines[i] = strings.Join(copies, "  ")
	}
	return strings.Join(lines, "\n")
}

// FormParams configures a form. Title heads the form and defaults to "Form".
type FormParams struct {
	Title  string
	Fields []string
	Width  int
}

// Form renders a bordered form with a label, input and spacer row per field.
func (r *Renderer) Form(p FormParams) string {
	fields := p.Fields
	if fields == nil {
		fields = []string{"Name", "Email", "Message"}
	}
	width := orDefaultInt(p.Width, defaultFormWidth)

	input := "[" + repeat("_", width-6) + "]"
	blank := glyphVertical + spaces(width-2) + glyphVertical

	lines := []string{
		boxBorder(width, glyphTopLeft, glyphTopRight),
		r.row(orDefault(p.Title, "Form"), width),
		boxBorder(width, glyphTeeRight, glyphTeeLeft),
	}
	for _, field := range fields {
		lines = append(lines, r.row(field, width), r.row(input, width), blank)
	}
	lines = append(lines,
		r.row("[Submit] [Cancel]", width),
		boxBorder(width, glyphBottomLeft, glyphBottomRight),
	)
	return strings.Join(lines, "\n")
}

// SidebarParams configures a sidebar layout.
type SidebarParams struct {
	Logo  string
	Items []string
	Width int
}

// Sidebar renders a two-column grid: a fixed sidebar listing up to six nav
// entries beside the main content column.
func (r *Renderer) Sidebar(p SidebarParams) string {
	logo := orDefault(p.Logo, defaultLogo)
	items := p.Items
	if items == nil {
		items = []string{"Dashboard", "Users", "Settings", "Logout"}
	}
	width := orDefaultInt(p.Width, defaultWideWidth)
	columns := []int{sidebarWidth, width - sidebarWidth - 1}

	lines := []string{
		columnBorder(columns, glyphTopLeft, glyphTeeDown, glyphTopRight),
		r.columnRow([]string{logo, "Main Content"}, columns),
		columnBorder(columns, glyphTeeRight, glyphCross, glyphTeeLeft),
	}
	for i := range sidebarNavSlots {
		var nav string
		if i < len(items) {
			nav = "► " + items[i]
		}
		lines = append(lines, r.columnRow([]string{nav}, columns))
	}
	lines = append(lines, columnBorder(columns, glyphBottomLeft, glyphTeeUp, glyphBottomRight))
	return strings.Join(lines, "\n")
}

// ModalParams configures a modal dialog. Content may span several lines.
type ModalParams struct {
	Title   string
	Content string
	Width   int
}

// Modal renders a dialog with a closable header, content rows and an
// OK/Cancel action row.
func (r *Renderer) Modal(p ModalParams) string {
	title := orDefault(p.Title, "Modal Title")
	content := orDefault(p.Content, "Are you sure?")
	width := orDefaultInt(p.Width, defaultModalWidth)

	lines := []string{
		boxBorder(width, glyphTopLeft, glyphTopRight),
		glyphVertical + " " + r.fit(title, width-8) + " [×] " + glyphVertical,
		boxBorder(width, glyphTeeRight, glyphTeeLeft),
	}
	for _, line := range strings.Split(content, "\n") {
		lines = append(lines, r.row(line, width))
	}

	const cancel, ok = "[Cancel]", "[OK]"
	gap := width - 4 - len(cancel) - len(ok)
	lines = append(lines,
		boxBorder(width, glyphTeeRight, glyphTeeLeft),
		r.row(cancel+spaces(gap)+ok, width),
		boxBorder(width, glyphBottomLeft, glyphBottomRight),
	)
	return strings.Join(lines, "\n")
}

// TableParams configures a data table. When Widths is nil each column is
// its header length plus two. Joined draws ┬ ┼ ┴ at inner column
// boundaries instead of repeating the outer corner glyphs.
type TableParams struct {
	Headers []string
	Rows    [][]string
	Widths  []int
	Joined  bool
}

// Table renders a column-aligned table with a header row and divider.
func (r *Renderer) Table(p TableParams) string {
	widths := p.Widths
	if widths == nil {
		widths = PaddedWidths(p.Headers, tableHeaderPadding)
	}

	top, mid, bottom := glyphTopLeft, glyphTeeRight, glyphBottomLeft
	if p.Joined {
		top, mid, bottom = glyphTeeDown, glyphCross, glyphTeeUp
	}

	lines := []string{
		columnBorder(widths, glyphTopLeft, top, glyphTopRight),
		r.columnRow(p.Headers, widths),
		columnBorder(widths, glyphTeeRight, mid, glyphTeeLeft),
	}
	for _, row := range p.Rows {
		lines = append(lines, r.columnRow(row, widths))
	}
	lines = append(lines, columnBorder(widths, glyphBottomLeft, bottom, glyphBottomRight))
	return strings.Join(lines, "\n")
}

// PaddedWidths returns len(header)+padding for every header.
func PaddedWidths(headers []string, padding int) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h)) + padding
	}
	return widths
}

// ContentWidths sizes each column to its widest header or cell plus padding.
func ContentWidths(headers []string, rows [][]string, padding int) []int {
	widths := PaddedWidths(headers, padding)
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := len([]rune(row[i])) + padding; w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orDefaultInt(n, def int) int {
	if n == 0 {
		return def
	}
	return n
}
