package layout

// Alignment positions a box inside a larger slot along one axis.
// The zero value is Stretch.
type Alignment uint8

const (
	AlignStretch Alignment = iota // Fill the slot (default)
	AlignStart                    // Left or top edge
	AlignCenter                   // Centered
	AlignEnd                      // Right or bottom edge
)

func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "Start"
	case AlignCenter:
		return "Center"
	case AlignEnd:
		return "End"
	default:
		return "Stretch"
	}
}

// AlignOffset returns where a box of the given size starts inside a slot.
// A Stretch box that is smaller than its slot (explicit size or max clamp)
// is centered. The offset is never negative.
func AlignOffset(a Alignment, slot, size float64) float64 {
	free := slot - size
	if free <= 0 {
		return 0
	}
	switch a {
	case AlignEnd:
		return free
	case AlignCenter, AlignStretch:
		return free / 2
	default:
		return 0
	}
}
