package rotation

import (
	"errors"

	"github.com/hoopsight/stintline/internal/domain/clock"
)

// ErrInvalidInterval marks a rotation row whose entry does not precede its
// exit. Source tables occasionally contain degenerate zero-length rows, so
// callers normally skip these rather than fail the game.
var ErrInvalidInterval = errors.New("invalid rotation interval")

// Split decomposes an interval into one segment per period it touches.
// Segments are contiguous, non-overlapping, in increasing period order, and
// their tick extents sum exactly to the interval duration. A boundary tick
// closes the segment of the period that is ending; the next segment opens
// the following period at its full clock.
func Split(in Interval) ([]Segment, error) {
	if in.EntryTick >= in.ExitTick {
		return nil, ErrInvalidInterval
	}

	segments := make([]Segment, 0, 2)
	current := in.EntryTick
	for current < in.ExitTick {
		period := clock.PeriodAt(current)
		end := clock.PeriodEnd(period)
		if in.ExitTick < end {
			end = in.ExitTick
		}

		segments = append(segments, Segment{
			Period:    period,
			InClock:   clock.Countdown(clock.Remaining(period, current)),
			OutClock:  clock.Countdown(clock.Remaining(period, end)),
			StartTick: current,
			EndTick:   end,
			Minutes:   clock.Minutes(end - current),
		})
		current = end
	}

	return segments, nil
}

// IsStarterSegment reports whether a segment opens the game: period 1 at the
// full clock. Used to infer starter status when the box score carries no
// explicit flag.
func IsStarterSegment(seg Segment) bool {
	return seg.Period == 1 && seg.InClock == clock.Countdown(clock.RegulationPeriodSeconds)
}
