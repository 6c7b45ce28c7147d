// Package mockup renders ASCII-art UI mockup templates.
//
// Each template is a pure function from a parameter struct to a block of
// newline-joined lines drawn with box-drawing characters:
//
//	r := mockup.NewRenderer(mockup.MeasureRunes)
//	fmt.Println(r.Navbar(mockup.NavbarParams{Logo: "Acme", Width: 60}))
//	fmt.Println(r.Table(mockup.TableParams{
//		Headers: []string{"Name", "Status"},
//		Rows:    [][]string{{"job1", "ok"}},
//	}))
//
// Zero-valued params fall back to built-in defaults. Every line of a block
// has the same width as long as the width leaves room for the frame; widths
// that are too small give short, visually broken lines rather than errors.
//
// The catalog (Templates, Lookup) lists the templates the command line
// exposes along with the defaults it uses.
package mockup
