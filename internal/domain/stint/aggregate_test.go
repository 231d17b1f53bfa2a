package stint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoopsight/stintline/internal/domain/pbp"
)

func TestAggregateShootingLine(t *testing.T) {
	t.Parallel()

	events := []pbp.WindowEvent{
		{Event: pbp.Event{MsgType: 1, ActionType: 1, HomeDesc: "Smith Layup (2 PTS)"}},
		{Event: pbp.Event{MsgType: 1, ActionType: 2, HomeDesc: "Smith 25' 3PT Jumper (5 PTS)"}},
		{Event: pbp.Event{MsgType: 2, ActionType: 1, HomeDesc: "MISS Smith Jumper"}},
		{Event: pbp.Event{MsgType: 2, ActionType: 2, HomeDesc: "MISS Smith 27' 3PT Jumper"}},
	}

	got := Aggregate(events)
	assert.Equal(t, StatLine{FGM: 2, FGA: 4, FG3M: 1, FG3A: 2, PTS: 5}, got)
}

func TestAggregateFreeThrows(t *testing.T) {
	t.Parallel()

	events := []pbp.WindowEvent{
		{Event: pbp.Event{Action: "freethrow", ShotResult: "Made"}},
		{Event: pbp.Event{Action: "freethrow", ShotResult: "Missed"}},
		{Event: pbp.Event{MsgType: 3, HomeDesc: "Smith Free Throw 2 of 2 (7 PTS)"}},
		{Event: pbp.Event{MsgType: 3, HomeDesc: "MISS Smith Free Throw 1 of 2"}},
	}

	got := Aggregate(events)
	assert.Equal(t, StatLine{FTM: 2, FTA: 4, PTS: 2}, got)
}

func TestAggregateRebounds(t *testing.T) {
	t.Parallel()

	events := []pbp.WindowEvent{
		{Event: pbp.Event{MsgType: 4, HomeDesc: "Smith REBOUND (Off:1 Def:0)"}},
		{Event: pbp.Event{MsgType: 4, HomeDesc: "Smith REBOUND (Off:0 Def:1)"}},
		{Event: pbp.Event{MsgType: 4, NeutralDesc: "Team Rebound"}},
	}

	got := Aggregate(events)
	assert.Equal(t, 3, got.REB)
	assert.Equal(t, 1, got.OREB)
}

func TestAggregateAssistMatchShortCircuits(t *testing.T) {
	t.Parallel()

	// The underlying event is a made three, but it entered the window
	// through the assist chain; only the assist counts here.
	events := []pbp.WindowEvent{
		{Event: pbp.Event{MsgType: 1, ActionType: 2, SecondPersonID: 7}, ViaAssist: true},
	}

	got := Aggregate(events)
	assert.Equal(t, StatLine{AST: 1}, got)
}

func TestAggregateDefense(t *testing.T) {
	t.Parallel()

	events := []pbp.WindowEvent{
		{Event: pbp.Event{Action: "steal"}},
		{Event: pbp.Event{Action: "block"}},
		{Event: pbp.Event{MsgType: 5, HomeDesc: "Smith Bad Pass Turnover"}},
		{Event: pbp.Event{MsgType: 6, HomeDesc: "Smith P.FOUL (P1.T2)"}},
		{Event: pbp.Event{NeutralDesc: "Jump Ball Smith vs. Jones"}},
	}

	got := Aggregate(events)
	assert.Equal(t, StatLine{STL: 1, BLK: 1, TOV: 1, PF: 1}, got)
}

func TestAggregatePure(t *testing.T) {
	t.Parallel()

	events := []pbp.WindowEvent{
		{Event: pbp.Event{MsgType: 1, ActionType: 1}},
		{Event: pbp.Event{MsgType: 4, HomeDesc: "Smith REBOUND (Off:0 Def:1)"}},
	}
	assert.Equal(t, Aggregate(events), Aggregate(events))
}
