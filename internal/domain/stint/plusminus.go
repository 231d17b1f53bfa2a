package stint

import (
	"github.com/hoopsight/stintline/internal/domain/clock"
	"github.com/hoopsight/stintline/internal/domain/pbp"
	"github.com/hoopsight/stintline/internal/domain/rotation"
)

// PlusMinus derives a segment's scoring differential. When the segment is
// the only one its rotation interval produced, the source-supplied raw value
// is authoritative and returned as-is (mirrored for away players, whose raw
// value arrives from the home perspective already corrected upstream).
//
// A segment created by splitting a period-crossing interval carries no raw
// value of its own, so the differential is rebuilt from running score
// snapshots: the last snapshot strictly before the window opens against the
// last snapshot at or before it closes. With no usable snapshot the segment
// reports 0 rather than failing the game.
func PlusMinus(events []pbp.Event, seg rotation.Segment, home bool, raw int, soleSegment bool) int {
	if soleSegment {
		return raw
	}

	startPos := elapsedSeconds(seg.Period, clock.ParseCountdown(seg.InClock))
	endPos := elapsedSeconds(seg.Period, clock.ParseCountdown(seg.OutClock))

	startHome, startAway := snapshotBefore(events, startPos, false)
	endHome, endAway := snapshotBefore(events, endPos, true)

	diff := (endHome - startHome) - (endAway - startAway)
	if !home {
		diff = -diff
	}
	return diff
}

// snapshotBefore finds the running score at the latest snapshot positioned
// before pos (at-or-before when inclusive). Events need not be sorted; the
// chronologically latest qualifying snapshot wins. Absent any snapshot the
// score is the opening 0-0.
func snapshotBefore(events []pbp.Event, pos int, inclusive bool) (home, away int) {
	best := -1
	for _, e := range events {
		h, a, ok := e.ScoreSnapshot()
		if !ok {
			continue
		}
		p := elapsedSeconds(e.Period, clock.ParseCountdown(e.Clock))
		if p > pos || (p == pos && !inclusive) {
			continue
		}
		// Ties go to the later row; two scores on the same clock second
		// arrive in play order.
		if p >= best {
			best = p
			home, away = h, a
		}
	}
	return home, away
}

// elapsedSeconds places a (period, seconds-remaining) pair on the whole-game
// time axis.
func elapsedSeconds(period int, remaining int) int {
	return int(clock.PeriodStart(period))/clock.TicksPerSecond + clock.PeriodSeconds(period) - remaining
}
