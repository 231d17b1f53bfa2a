package usecase

import (
	"github.com/hoopsight/stintline/internal/domain/pbp"
	"github.com/hoopsight/stintline/internal/domain/rotation"
	"github.com/hoopsight/stintline/internal/domain/source"
	"github.com/hoopsight/stintline/internal/domain/stint"
)

// stintWindow is one finished segment with everything both assemblers need
// from it.
type stintWindow struct {
	Segment   rotation.Segment
	Events    []pbp.WindowEvent
	Stats     stint.StatLine
	PlusMinus int
}

// buildStintWindows runs one rotation row through the whole chain: split
// into period segments, filter the window, aggregate, reconcile plus/minus.
// Degenerate rows (entry at or after exit) yield nothing.
func buildStintWindows(events []pbp.Event, row source.RotationRow, isHome bool) []stintWindow {
	segments, err := rotation.Split(rotation.Interval{
		PlayerID:     row.PersonID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		EntryTick:    row.InTick,
		ExitTick:     row.OutTick,
		RawPlusMinus: row.PointDiff,
	})
	if err != nil {
		return nil
	}

	sole := len(segments) == 1
	out := make([]stintWindow, 0, len(segments))
	for _, seg := range segments {
		windowed := pbp.FilterWindow(events, row.PersonID, row.LastName, seg.Period, seg.InClock, seg.OutClock)
		out = append(out, stintWindow{
			Segment:   seg,
			Events:    windowed,
			Stats:     stint.Aggregate(windowed),
			PlusMinus: stint.PlusMinus(events, seg, isHome, row.PointDiff, sole),
		})
	}
	return out
}

func (w stintWindow) line() stint.Line {
	return stint.Line{
		Period:    w.Segment.Period,
		InTime:    w.Segment.InClock,
		OutTime:   w.Segment.OutClock,
		Minutes:   w.Segment.Minutes,
		PlusMinus: w.PlusMinus,
		StatLine:  w.Stats,
	}
}
