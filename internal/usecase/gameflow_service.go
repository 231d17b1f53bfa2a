package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hoopsight/stintline/internal/domain/game"
	"github.com/hoopsight/stintline/internal/domain/gameflow"
	"github.com/hoopsight/stintline/internal/domain/pbp"
	"github.com/hoopsight/stintline/internal/domain/source"
)

// GameflowService assembles the timeline view: every rostered player's
// stints grouped per player, each stint carrying its stats and plays, plus
// the game-long score-change curve.
type GameflowService struct{}

func NewGameflowService() *GameflowService {
	return &GameflowService{}
}

func (s *GameflowService) Build(ctx context.Context, gameID string, t source.Tables) (gameflow.Record, error) {
	_, span := startUsecaseSpan(ctx, "GameflowService.Build")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return gameflow.Record{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	_, homeLine, awayLine, err := gameSides(t.Scoreboard, gameID)
	if err != nil {
		return gameflow.Record{}, fmt.Errorf("resolve game sides: %w", err)
	}

	events := pbp.Dedupe(t.PlayByPlay)

	// Players keep first-appearance order: home roster first, then away,
	// each in rotation-table order.
	order := make([]int64, 0, len(t.Rotation.Home)+len(t.Rotation.Away))
	byPlayer := make(map[int64]*gameflow.PlayerFlow)

	appendRows := func(rows []source.RotationRow, tricode string, isHome bool) {
		for _, row := range rows {
			flow, ok := byPlayer[row.PersonID]
			if !ok {
				flow = &gameflow.PlayerFlow{
					PlayerID: strconv.FormatInt(row.PersonID, 10),
					Name:     strings.TrimSpace(row.FirstName + " " + row.LastName),
					Team:     tricode,
				}
				byPlayer[row.PersonID] = flow
				order = append(order, row.PersonID)
			}
			for _, w := range buildStintWindows(events, row, isHome) {
				flow.Stints = append(flow.Stints, gameflow.FlowStint{
					Period:    w.Segment.Period,
					InTime:    w.Segment.InClock,
					OutTime:   w.Segment.OutClock,
					Minutes:   w.Segment.Minutes,
					PlusMinus: w.PlusMinus,
					Stats:     w.Stats,
					Events:    flowEvents(w.Events),
				})
			}
		}
	}
	appendRows(t.Rotation.Home, homeLine.Tricode, true)
	appendRows(t.Rotation.Away, awayLine.Tricode, false)

	players := make([]gameflow.PlayerFlow, 0, len(order))
	for _, id := range order {
		players = append(players, *byPlayer[id])
	}

	return gameflow.Record{
		GameID:       gameID,
		HomeTeam:     game.TeamRef{Tricode: homeLine.Tricode, Name: homeLine.Name},
		AwayTeam:     game.TeamRef{Tricode: awayLine.Tricode, Name: awayLine.Name},
		Players:      players,
		ScoreChanges: pbp.ScoreChanges(events),
	}, nil
}

func flowEvents(windowed []pbp.WindowEvent) []gameflow.FlowEvent {
	out := make([]gameflow.FlowEvent, 0, len(windowed))
	for _, we := range windowed {
		out = append(out, gameflow.FlowEvent{
			Clock:       we.Clock,
			Type:        we.Classify().Kind,
			Description: we.Desc(),
		})
	}
	return out
}
