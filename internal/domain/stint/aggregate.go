package stint

import "github.com/hoopsight/stintline/internal/domain/pbp"

// Aggregate counts a segment's filtered events into a StatLine. Events
// selected through the assist chain credit only the assist; the underlying
// shot belongs to the shooter's own window. Pure over its input: the same
// events always produce the same line.
func Aggregate(events []pbp.WindowEvent) StatLine {
	var s StatLine
	for _, we := range events {
		if we.ViaAssist {
			s.AST++
			continue
		}

		switch c := we.Classify(); c.Kind {
		case pbp.KindMake2:
			s.FGM++
			s.FGA++
			s.PTS += c.Points
		case pbp.KindMake3:
			s.FGM++
			s.FGA++
			s.FG3M++
			s.FG3A++
			s.PTS += c.Points
		case pbp.KindMiss2:
			s.FGA++
		case pbp.KindMiss3:
			s.FGA++
			s.FG3A++
		case pbp.KindFreeThrow:
			s.FTA++
			if we.FreeThrowMade() {
				s.FTM++
				s.PTS++
			}
		case pbp.KindRebound:
			s.REB++
			if we.OffensiveRebound() {
				s.OREB++
			}
		case pbp.KindAssist:
			s.AST++
		case pbp.KindSteal:
			s.STL++
		case pbp.KindBlock:
			s.BLK++
		case pbp.KindTurnover:
			s.TOV++
		case pbp.KindFoul:
			s.PF++
		}
	}
	return s
}
