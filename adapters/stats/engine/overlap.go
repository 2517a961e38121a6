package engine

import (
	"math"

	"github.com/ghomem/lgc/domain/core"
	"github.com/ghomem/lgc/domain/trial"
)

// Overlap returns the intersection of two intervals, or nil when they are
// disjoint. Disjoint intervals are a valid, expected outcome, not an error.
func Overlap(a, b trial.Interval) *trial.Interval {
	lo := math.Max(a.Lower, b.Lower)
	hi := math.Min(a.Upper, b.Upper)
	if lo > hi {
		return nil
	}
	return &trial.Interval{Lower: lo, Upper: hi}
}

// OverlapPercent expresses the overlap width as a percentage of one group's
// own interval width. Fails when that interval has zero width.
func OverlapPercent(overlap, group trial.Interval) (float64, error) {
	width := group.Width()
	if width == 0 {
		return 0, core.NewNotComputableError("overlap percentage", "group interval has zero width")
	}
	return overlap.Width() / width * 100, nil
}
