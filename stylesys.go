// Package stylesys builds CSS text for layout style properties.
//
// Layout props are plain maps from logical keys (width, display, zIndex, ...)
// to values. A value is either a scalar or a responsive value; responsive
// values are split into an unconditional part and one part per breakpoint.
//
// # Building
//
//	style, err := stylesys.Layout(stylesys.LayoutProps{
//		stylesys.Width:   10,
//		stylesys.Display: "flex",
//		stylesys.ZIndex:  stylesys.Responsive{"base": 1, "md": 2},
//	})
//	// style.Base            == "width:10px;display:flex;z-index:1;"
//	// style.Media["md"]     == "z-index:2;"
//
// Sizes (width, height and their min/max variants) turn bare numbers into
// pixel lengths; every other key writes the value as given.
//
// # Rendering
//
// A Stylesheet renders built styles under selectors, grouping breakpoint
// text into @media blocks ordered by the breakpoint set:
//
//	sheet := stylesys.NewStylesheet(stylesys.DefaultBreakpoints())
//	sheet.Add(".card", style)
//	fmt.Print(sheet)
//
// # CLI Tool
//
// The stylesys command generates a stylesheet from YAML style documents:
//
//	go install github.com/yacobolo/stylesys/cmd/stylesys@latest
package stylesys
