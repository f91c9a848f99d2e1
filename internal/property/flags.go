package property

import "strings"

// Flags describes which layout results a property change invalidates.
type Flags uint8

const (
	AffectsMeasure Flags = 1 << iota
	AffectsArrange
	AffectsParentMeasure
	AffectsParentArrange
	AffectsRender
)

// None is the zero Flags value: changes invalidate nothing.
const None Flags = 0

var flagNames = []struct {
	flag Flags
	name string
}{
	{AffectsMeasure, "AffectsMeasure"},
	{AffectsArrange, "AffectsArrange"},
	{AffectsParentMeasure, "AffectsParentMeasure"},
	{AffectsParentArrange, "AffectsParentArrange"},
	{AffectsRender, "AffectsRender"},
}

// Has reports whether all bits of other are set in f.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

func (f Flags) String() string {
	if f == None {
		return "None"
	}
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}
