// Package ui provides styled output for asciimock commands.
//
// The ui package uses charmbracelet/lipgloss for terminal styling. It
// includes:
//
//   - Centralized color palette and theming
//   - Small components (headers, label/value pairs, counts)
//   - A column-aligned text table for command listings
//   - Highlight, which colors a rendered mockup for --pretty output
//
// Usage:
//
//	fmt.Println(ui.NewHeader("Available Templates").WithMargin().Render())
//
//	table := ui.NewTable().
//		AddColumn("Template", 10, "left").
//		AddColumn("Description", 50, "left").
//		AddRow("navbar", "Navigation bar")
//	fmt.Println(table.Render())
//
//	fmt.Println(ui.Highlight(block))
//
// Color usage:
//   - Indigo: mockup borders
//   - Orange: bracketed actions such as [Submit]
//   - Pink: marker glyphs (►, ×, 🔍)
//   - Purple: headers
//   - Cyan: values
//   - Gray: muted text and input placeholders
//   - Green: counts
package ui
