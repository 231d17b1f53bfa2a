package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hoopsight/stintline/internal/domain/boxscore"
	"github.com/hoopsight/stintline/internal/domain/pbp"
	"github.com/hoopsight/stintline/internal/domain/rotation"
	"github.com/hoopsight/stintline/internal/domain/source"
	"github.com/hoopsight/stintline/internal/domain/stint"
)

// PositionResolver supplies a coarse position for players whose box-score
// row carries none. Typically backed by the run-scoped roster cache.
type PositionResolver func(playerID int64) string

// BoxscoreService assembles the box-score record for one game: full-game
// totals straight from the box-score table, per-stint breakdowns rebuilt
// from rotation and play-by-play.
type BoxscoreService struct {
	resolvePosition PositionResolver
}

func NewBoxscoreService(resolver PositionResolver) *BoxscoreService {
	return &BoxscoreService{resolvePosition: resolver}
}

// Build produces the full record. Table-level problems (missing header or
// line score, unmatchable team rows) abort the game; row-level anomalies
// are absorbed with safe defaults.
func (s *BoxscoreService) Build(ctx context.Context, gameID, date string, t source.Tables) (boxscore.Record, error) {
	_, span := startUsecaseSpan(ctx, "BoxscoreService.Build")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return boxscore.Record{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	_, homeLine, awayLine, err := gameSides(t.Scoreboard, gameID)
	if err != nil {
		return boxscore.Record{}, fmt.Errorf("resolve game sides: %w", err)
	}

	events := pbp.Dedupe(t.PlayByPlay)

	players := make([]boxscore.PlayerEntry, 0, len(t.Boxscore.PlayerStats))
	for _, row := range t.Boxscore.PlayerStats {
		minutes := boxscore.ParseMinutes(row.Minutes)
		if minutes <= 0 {
			continue // DNP
		}

		isHome := row.Tricode == homeLine.Tricode
		lines, firstSegment := s.playerStints(events, t.Rotation, row.PlayerID, isHome)

		totals := playerTotals(row, minutes)
		totals.FillDerived()

		players = append(players, boxscore.PlayerEntry{
			PlayerID: strconv.FormatInt(row.PlayerID, 10),
			Name:     row.Name,
			Team:     row.Tricode,
			Position: s.position(row),
			Starter:  row.StartPosition != "" || firstSegment != nil && rotation.IsStarterSegment(*firstSegment),
			Totals:   totals,
			Stints:   lines,
		})
	}

	homeTotals, awayTotals, err := teamTotals(t.Boxscore, homeLine.Tricode, awayLine.Tricode)
	if err != nil {
		return boxscore.Record{}, err
	}

	return boxscore.Record{
		GameID:     gameID,
		Date:       date,
		HomeTeam:   teamScore(homeLine),
		AwayTeam:   teamScore(awayLine),
		Players:    players,
		TeamTotals: boxscore.SideTotals{Home: homeTotals, Away: awayTotals},
		PeriodTotals: boxscore.SidePeriods{
			Home: []boxscore.PeriodLine{gamePeriodLine(homeTotals)},
			Away: []boxscore.PeriodLine{gamePeriodLine(awayTotals)},
		},
	}, nil
}

// playerStints rebuilds one player's chronological stint lines and returns
// the first segment for starter inference.
func (s *BoxscoreService) playerStints(events []pbp.Event, rot source.Rotation, playerID int64, isHome bool) ([]stint.Line, *rotation.Segment) {
	rows := rot.Away
	if isHome {
		rows = rot.Home
	}

	mine := make([]source.RotationRow, 0, 8)
	for _, r := range rows {
		if r.PersonID == playerID {
			mine = append(mine, r)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool { return mine[i].InTick < mine[j].InTick })

	lines := make([]stint.Line, 0, len(mine))
	var first *rotation.Segment
	for _, r := range mine {
		for _, w := range buildStintWindows(events, r, isHome) {
			if first == nil {
				seg := w.Segment
				first = &seg
			}
			lines = append(lines, w.line())
		}
	}
	return lines, first
}

func (s *BoxscoreService) position(row source.PlayerStatRow) string {
	if row.StartPosition != "" {
		return row.StartPosition
	}
	if s.resolvePosition != nil {
		return s.resolvePosition(row.PlayerID)
	}
	return ""
}

func playerTotals(row source.PlayerStatRow, minutes float64) boxscore.Totals {
	return boxscore.Totals{
		Min:       boxscore.RoundMinutes(minutes),
		FGM:       row.FGM,
		FGA:       row.FGA,
		FG3M:      row.FG3M,
		FG3A:      row.FG3A,
		FTM:       row.FTM,
		FTA:       row.FTA,
		OREB:      row.OREB,
		REB:       row.REB,
		AST:       row.AST,
		BLK:       row.BLK,
		STL:       row.STL,
		TOV:       row.TOV,
		PF:        row.PF,
		PTS:       row.PTS,
		PlusMinus: row.PlusMinus,
	}
}

// teamTotals matches the two team-stat rows to home and away. Fallback
// chain: tricode match, then the first two rows positionally, then a
// column-wise sum of each side's player rows when no team rows exist at all.
func teamTotals(box source.Boxscore, homeTricode, awayTricode string) (home, away stint.StatLine, err error) {
	var homeRow, awayRow *source.TeamStatRow
	for i := range box.TeamStats {
		switch box.TeamStats[i].Tricode {
		case homeTricode:
			homeRow = &box.TeamStats[i]
		case awayTricode:
			awayRow = &box.TeamStats[i]
		}
	}

	if homeRow == nil || awayRow == nil {
		switch {
		case len(box.TeamStats) >= 2:
			homeRow, awayRow = &box.TeamStats[0], &box.TeamStats[1]
		case len(box.TeamStats) == 1:
			homeRow, awayRow = &box.TeamStats[0], &box.TeamStats[0]
		case len(box.PlayerStats) > 0:
			return sumPlayerRows(box.PlayerStats, homeTricode), sumPlayerRows(box.PlayerStats, awayTricode), nil
		default:
			return home, away, fmt.Errorf("%w: no team or player rows to aggregate", ErrAmbiguousTeams)
		}
	}
	return teamStatLine(*homeRow), teamStatLine(*awayRow), nil
}

func sumPlayerRows(rows []source.PlayerStatRow, tricode string) stint.StatLine {
	var s stint.StatLine
	for _, r := range rows {
		if r.Tricode != tricode {
			continue
		}
		s.FGM += r.FGM
		s.FGA += r.FGA
		s.FG3M += r.FG3M
		s.FG3A += r.FG3A
		s.FTM += r.FTM
		s.FTA += r.FTA
		s.OREB += r.OREB
		s.REB += r.REB
		s.AST += r.AST
		s.BLK += r.BLK
		s.STL += r.STL
		s.TOV += r.TOV
		s.PF += r.PF
		s.PTS += r.PTS
	}
	return s
}

func teamStatLine(r source.TeamStatRow) stint.StatLine {
	return stint.StatLine{
		FGM: r.FGM, FGA: r.FGA,
		FG3M: r.FG3M, FG3A: r.FG3A,
		FTM: r.FTM, FTA: r.FTA,
		OREB: r.OREB, REB: r.REB,
		AST: r.AST, BLK: r.BLK, STL: r.STL,
		TOV: r.TOV, PF: r.PF, PTS: r.PTS,
	}
}

func gamePeriodLine(s stint.StatLine) boxscore.PeriodLine {
	return boxscore.PeriodLine{
		Period: "Game",
		FGM:    s.FGM,
		FGA:    s.FGA,
		FG3M:   s.FG3M,
		FG3A:   s.FG3A,
		FTM:    s.FTM,
		FTA:    s.FTA,
		PTS:    s.PTS,
	}
}
