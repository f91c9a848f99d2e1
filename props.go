package panels

import (
	"math"

	"github.com/grindlemire/go-panels/internal/property"
)

// Coercion hooks referenced from props.toml. Layouts must stay renderable,
// so out-of-range values are normalized instead of rejected.

// coerceSize maps negative and infinite explicit sizes to unset.
func coerceSize(v float64) float64 {
	if v < 0 || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

func coerceMin(v float64) float64 {
	if math.IsNaN(v) || v < 0 || math.IsInf(v, 1) {
		return 0
	}
	return v
}

func coerceMax(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return math.Inf(1)
	}
	return v
}

func coerceOpacity(v float64) float64 {
	if math.IsNaN(v) {
		return 1
	}
	return math.Max(0, math.Min(1, v))
}

// coerceOffset maps infinite Canvas offsets to unset. Negative offsets are
// legal and place a child partly outside the Canvas.
func coerceOffset(v float64) float64 {
	if math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

func coerceThickness(t Thickness) Thickness {
	return t.Clamp()
}

func coerceCount(v int) int {
	return max(v, 0)
}

func coerceSpan(v int) int {
	return max(v, 1)
}

// Properties returns the descriptor tables of every element type, sorted by
// name, for tooling that lists what can be configured.
func Properties() []*property.Table {
	return property.Tables()
}
