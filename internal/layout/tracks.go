package layout

import "math"

// ResolveTracks sizes a list of Grid tracks along one axis and writes each
// result into the matching Definition's ActualSize.
//
// content[i] is the largest desired size, on this axis, of any child whose
// span lies entirely inside track i. It is read for Auto tracks, and for Star
// tracks when available is infinite (an unbounded axis has no remainder to
// share, so proportional tracks fall back to their content). content may be
// shorter than defs; missing entries count as zero.
//
// Resolution runs in three phases: Pixel tracks, then Auto tracks, then Star
// tracks sharing max(0, available-used) by weight. Every result is clamped to
// the track's [MinSize, MaxSize].
func ResolveTracks(defs []Definition, available float64, content []float64) []float64 {
	sizes := make([]float64, len(defs))
	unbounded := math.IsInf(available, 1)
	contentAt := func(i int) float64 {
		if i < len(content) {
			return NonNegative(content[i])
		}
		return 0
	}

	used := 0.0

	// Phase 1: fixed tracks are final immediately.
	for i, d := range defs {
		if d.Length.IsPixel() {
			sizes[i] = d.Clamp(d.Length.Value)
			used += sizes[i]
		}
	}

	// Phase 2: content-sized tracks.
	for i, d := range defs {
		if d.Length.IsAuto() || (unbounded && d.Length.IsStar()) {
			sizes[i] = d.Clamp(contentAt(i))
			used += sizes[i]
		}
	}

	// Phase 3: proportional tracks share what is left.
	if !unbounded {
		distributeStars(defs, sizes, math.Max(0, NonNegative(available)-used))
	}

	for i := range defs {
		defs[i].ActualSize = sizes[i]
	}
	return sizes
}

// distributeStars shares remaining among the Star tracks by weight.
//
// Tracks whose proportional share falls outside their clamp are pinned at the
// clamp, and their pinned size and weight leave the pool. The remaining tracks
// re-share what is left exactly once; a clamp hit in that second share is
// applied without further correction.
func distributeStars(defs []Definition, sizes []float64, remaining float64) {
	totalWeight := 0.0
	for _, d := range defs {
		if d.Length.IsStar() {
			totalWeight += d.Length.Value
		}
	}

	pinned := make([]bool, len(defs))
	if totalWeight == 0 {
		for i, d := range defs {
			if d.Length.IsStar() {
				sizes[i] = d.Clamp(0)
			}
		}
		return
	}

	anyPinned := false
	pinnedSize, pinnedWeight := 0.0, 0.0
	for i, d := range defs {
		if !d.Length.IsStar() {
			continue
		}
		share := remaining * d.Length.Value / totalWeight
		clamped := d.Clamp(share)
		sizes[i] = clamped
		if clamped != share {
			anyPinned = true
			pinned[i] = true
			pinnedSize += clamped
			pinnedWeight += d.Length.Value
		}
	}

	if !anyPinned {
		return
	}

	restWeight := totalWeight - pinnedWeight
	if restWeight <= 0 {
		return
	}
	rest := math.Max(0, remaining-pinnedSize)
	for i, d := range defs {
		if d.Length.IsStar() && !pinned[i] {
			sizes[i] = d.Clamp(rest * d.Length.Value / restWeight)
		}
	}
}

// SpanSize returns the sum of sizes[start : start+span], with the span
// clipped to the slice bounds.
func SpanSize(sizes []float64, start, span int) float64 {
	total := 0.0
	for i := start; i < start+span && i < len(sizes); i++ {
		if i >= 0 {
			total += sizes[i]
		}
	}
	return total
}

// Offsets returns the cumulative start offset of each track.
func Offsets(sizes []float64) []float64 {
	offsets := make([]float64, len(sizes))
	pos := 0.0
	for i, s := range sizes {
		offsets[i] = pos
		pos += s
	}
	return offsets
}

// Sum returns the total of all sizes.
func Sum(sizes []float64) float64 {
	return SpanSize(sizes, 0, len(sizes))
}
