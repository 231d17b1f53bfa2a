package boxscore

import (
	"github.com/hoopsight/stintline/internal/domain/game"
	"github.com/hoopsight/stintline/internal/domain/stint"
)

// Totals is a player's full-game line, sourced from the box-score table
// rather than re-derived from play-by-play, plus the three derived metrics
// filled in by FillDerived.
type Totals struct {
	Min       float64 `json:"min"`
	FGM       int     `json:"fgm"`
	FGA       int     `json:"fga"`
	FG3M      int     `json:"fg3m"`
	FG3A      int     `json:"fg3a"`
	FTM       int     `json:"ftm"`
	FTA       int     `json:"fta"`
	OREB      int     `json:"oreb"`
	REB       int     `json:"reb"`
	AST       int     `json:"ast"`
	BLK       int     `json:"blk"`
	STL       int     `json:"stl"`
	TOV       int     `json:"tov"`
	PF        int     `json:"pf"`
	PTS       int     `json:"pts"`
	PlusMinus int     `json:"plusMinus"`
	HV        int     `json:"hv"`
	Prod      float64 `json:"prod"`
	Eff       int     `json:"eff"`
}

// PlayerEntry is one player's section of the box-score record: identity,
// role, full-game totals and the chronological stint lines.
type PlayerEntry struct {
	PlayerID string       `json:"playerId" validate:"required"`
	Name     string       `json:"name"`
	Team     string       `json:"team"`
	Position string       `json:"position,omitempty"`
	Starter  bool         `json:"starter"`
	Totals   Totals       `json:"totals"`
	Stints   []stint.Line `json:"stints"`
}

// SideTotals carries the two team aggregate lines.
type SideTotals struct {
	Home stint.StatLine `json:"home"`
	Away stint.StatLine `json:"away"`
}

// PeriodLine is one row of the period breakdown. The upstream box score has
// no per-period splits, so assemblers emit a single "Game" row per side.
type PeriodLine struct {
	Period string `json:"period"`
	FGM    int    `json:"fgm"`
	FGA    int    `json:"fga"`
	FG3M   int    `json:"fg3m"`
	FG3A   int    `json:"fg3a"`
	FTM    int    `json:"ftm"`
	FTA    int    `json:"fta"`
	PTS    int    `json:"pts"`
}

// SidePeriods carries the per-side period breakdowns.
type SidePeriods struct {
	Home []PeriodLine `json:"home"`
	Away []PeriodLine `json:"away"`
}

// Record is the full box-score document for one game.
type Record struct {
	GameID       string         `json:"gameId" validate:"required"`
	Date         string         `json:"date" validate:"required"`
	HomeTeam     game.TeamScore `json:"homeTeam"`
	AwayTeam     game.TeamScore `json:"awayTeam"`
	Players      []PlayerEntry  `json:"players" validate:"dive"`
	TeamTotals   SideTotals     `json:"teamTotals"`
	PeriodTotals SidePeriods    `json:"periodTotals"`
}
