package mockup

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTemplate = errors.New("unknown template")
	ErrInvalidCount    = errors.New("card count must be at least 1")
	ErrCardTooNarrow   = errors.New("card width too narrow")
)

// MinCardWidth is the narrowest card that can still draw its corners.
const MinCardWidth = 2

// Template names
const (
	NavbarTemplate  = "navbar"
	CardsTemplate   = "cards"
	FormTemplate    = "form"
	SidebarTemplate = "sidebar"
	ModalTemplate   = "modal"
	TableTemplate   = "table"
)

// Defaults are the values the command line falls back to for a template.
type Defaults struct {
	Title   string
	Items   []string
	Width   int
	Count   int
	Content string
	Rows    [][]string
	// ColumnPadding is added to each header length to size table columns.
	ColumnPadding int
}

// Template describes one renderable mockup.
type Template struct {
	Name        string
	Description string
	Defaults    Defaults
}

// Templates returns the catalog in display order.
func Templates() []Template {
	return []Template{
		{
			Name:        NavbarTemplate,
			Description: "Navigation bar with logo, menu items and search",
			Defaults: Defaults{
				Title: "Logo",
				Items: []string{"Home", "About", "Services"},
				Width: 80,
			},
		},
		{
			Name:        CardsTemplate,
			Description: "Grid of identical cards placed side by side",
			Defaults: Defaults{
				Title: "Card Title",
				Width: 80,
				Count: 3,
			},
		},
		{
			Name:        FormTemplate,
			Description: "Form with labelled input fields and submit/cancel actions",
			Defaults: Defaults{
				Items: []string{"Name", "Email", "Message"},
				Width: 80,
			},
		},
		{
			Name:        SidebarTemplate,
			Description: "Two-column layout with a navigation sidebar",
			Defaults: Defaults{
				Title: "Logo",
				Items: []string{"Dashboard", "Users", "Settings"},
				Width: 80,
			},
		},
		{
			Name:        ModalTemplate,
			Description: "Modal dialog with title, message and OK/Cancel",
			Defaults: Defaults{
				Title:   "Confirm Action",
				Content: "Are you sure you want to continue?",
				Width:   80,
			},
		},
		{
			Name:        TableTemplate,
			Description: "Data table with header row and sample rows",
			Defaults: Defaults{
				Items: []string{"Name", "Email", "Status"},
				Rows: [][]string{
					{"John Doe", "john@example.com", "Active"},
					{"Jane Smith", "jane@example.com", "Inactive"},
				},
				ColumnPadding: 4,
			},
		},
	}
}

// Lookup finds a template by name.
func Lookup(name string) (Template, error) {
	for _, t := range Templates() {
		if t.Name == name {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
}

// CardWidth splits a total width evenly between count cards.
func CardWidth(total, count int) (int, error) {
	if count < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	w := total / count
	if w < MinCardWidth {
		return 0, fmt.Errorf("%w: %d columns across %d cards leaves %d per card, need %d",
			ErrCardTooNarrow, total, count, w, MinCardWidth)
	}
	return w, nil
}
