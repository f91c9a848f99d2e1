// Package property implements typed, registered node properties.
//
// Each node type owns a Table of descriptors. Tables chain to a parent table
// so a derived type sees the properties of the types it builds on. A
// descriptor carries the default value, the invalidation Flags and optional
// Coerce, Equal and Changed hooks; instances only pay for the values they
// override, which live in a sparse per-node Store.
//
// Setting a value runs, in order: Coerce, the equality check against the
// current effective value, the store write, the typed Changed callback and
// finally Owner.PropertyChanged with the descriptor so the owner can act on
// its Flags. Nothing is notified when the effective value does not change.
//
// Example:
//
//	var widthProp = property.Register(nodeTable, "Width", property.Metadata[float64]{
//		Default: math.NaN(),
//		Flags:   property.AffectsMeasure,
//	})
//
//	widthProp.Set(n, 40)
//	w := widthProp.Get(n)
package property
