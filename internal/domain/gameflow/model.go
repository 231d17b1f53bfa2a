package gameflow

import (
	"github.com/hoopsight/stintline/internal/domain/game"
	"github.com/hoopsight/stintline/internal/domain/pbp"
	"github.com/hoopsight/stintline/internal/domain/stint"
)

// FlowEvent is one play inside a stint, reduced to what the timeline view
// renders.
type FlowEvent struct {
	Clock       string   `json:"clock"`
	Type        pbp.Kind `json:"type"`
	Description string   `json:"description"`
}

// FlowStint is one on-court segment with its aggregated stats and the plays
// that happened during it.
type FlowStint struct {
	Period    int            `json:"period"`
	InTime    string         `json:"inTime"`
	OutTime   string         `json:"outTime"`
	Minutes   float64        `json:"minutes"`
	PlusMinus int            `json:"plusMinus"`
	Stats     stint.StatLine `json:"stats"`
	Events    []FlowEvent    `json:"events"`
}

// PlayerFlow groups all of one player's stints, in chronological order,
// across the whole game.
type PlayerFlow struct {
	PlayerID string      `json:"playerId" validate:"required"`
	Name     string      `json:"name"`
	Team     string      `json:"team"`
	Stints   []FlowStint `json:"stints"`
}

// Record is the full game-flow document: the game identity without scores,
// every rostered player's timeline, and the running score-change curve.
type Record struct {
	GameID       string            `json:"gameId" validate:"required"`
	HomeTeam     game.TeamRef      `json:"homeTeam"`
	AwayTeam     game.TeamRef      `json:"awayTeam"`
	Players      []PlayerFlow      `json:"players" validate:"dive"`
	ScoreChanges []pbp.ScoreChange `json:"scoreChanges"`
}
