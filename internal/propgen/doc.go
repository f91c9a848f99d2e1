// Package propgen generates typed property registrations and accessors from
// a TOML description.
//
// The input lists descriptor tables and properties:
//
//	package = "panels"
//
//	[[table]]
//	name = "Node"
//	receiver = "n"
//
//	[[property]]
//	owner = "Node"
//	name = "Width"
//	type = "float64"
//	default = 'math.NaN()'
//	flags = ["AffectsMeasure"]
//	coerce = "coerceSize"
//	doc = "is the explicit width. NaN means unset."
//
// For each table the output declares a property.Table; for each property a
// registration plus a getter and setter. Ordinary properties become methods
// on the owner type; attached properties become GetX(e Element) and
// SetX(e Element, v) functions.
package propgen
