// Package text estimates the size of text content for leaf elements.
//
// A Measurer reports the advance width of a single line and the height of one
// line. Two measurers are provided: Cells counts terminal cells using East
// Asian width rules, and Face measures with a golang.org/x/image font face
// (the bundled Go Regular font or the fixed 7x13 bitmap font).
//
// WrapLines turns a string into the lines a TextBlock would show at a given
// width, and Measure combines the two into a size.
package text
