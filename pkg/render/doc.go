// Package render draws layout results for terminals.
//
// [Text] produces a scaled diagram of the realized items, stacked along the
// main axis the way the layout placed them, followed by a table of their
// bounds. The adjusted item is highlighted in both.
//
//	res, _, err := runner.Layout(ctx, s)
//	fmt.Println(render.Text(res, render.WithCells(24)))
//
// Styling goes through lipgloss, so colors degrade to plain text when the
// output is not a terminal.
package render
