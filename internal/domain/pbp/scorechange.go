package pbp

import (
	"strconv"
	"strings"

	"github.com/hoopsight/stintline/internal/domain/clock"
)

// ScoreChange is one point on the momentum timeline: the running score at an
// elapsed-minutes position. The sequence is non-decreasing in time and in
// both scores, and always opens with (0, 0, 0).
type ScoreChange struct {
	Minute float64 `json:"minute"`
	Home   int     `json:"home"`
	Away   int     `json:"away"`
}

// ScoreChanges walks the full event list in order and emits a point whenever
// either running score moves. Snapshots that would run a score backwards are
// treated as feed noise and skipped.
func ScoreChanges(events []Event) []ScoreChange {
	out := []ScoreChange{{Minute: 0, Home: 0, Away: 0}}
	lastHome, lastAway := 0, 0

	for _, e := range events {
		home, away, ok := e.ScoreSnapshot()
		if !ok {
			continue
		}
		if home < lastHome || away < lastAway {
			continue
		}
		if home == lastHome && away == lastAway {
			continue
		}
		out = append(out, ScoreChange{
			Minute: clock.ElapsedMinutes(e.Period, clock.ParseCountdown(e.Clock)),
			Home:   home,
			Away:   away,
		})
		lastHome, lastAway = home, away
	}
	return out
}

// ScoreSnapshot extracts the running score carried on an event, if any. The
// newer schema has per-side numeric columns; the older one a single
// "away - home" text field.
func (e Event) ScoreSnapshot() (home, away int, ok bool) {
	if e.ScoreHome != "" || e.ScoreAway != "" {
		h, errH := strconv.Atoi(strings.TrimSpace(e.ScoreHome))
		a, errA := strconv.Atoi(strings.TrimSpace(e.ScoreAway))
		if errH != nil || errA != nil {
			return 0, 0, false
		}
		return h, a, true
	}

	text := strings.TrimSpace(e.ScoreText)
	if text == "" {
		return 0, 0, false
	}
	parts := strings.SplitN(text, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errA != nil || errH != nil {
		return 0, 0, false
	}
	return h, a, true
}
