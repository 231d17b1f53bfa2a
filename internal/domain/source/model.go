package source

import "github.com/hoopsight/stintline/internal/domain/pbp"

// The four input tables. They arrive fully materialized from the fetch
// collaborator; the transform core never does I/O of its own. Rotation
// timestamps are already normalized to ticks by the fetcher.

type GameHeaderRow struct {
	GameID        string
	HomeTeamID    int64
	VisitorTeamID int64
	StatusText    string
}

type LineScoreRow struct {
	GameID  string
	TeamID  int64
	Tricode string
	Name    string
	Points  int
}

type Scoreboard struct {
	Headers    []GameHeaderRow
	LineScores []LineScoreRow
}

// PlayerStatRow is one player's box-score line. Minutes stays a string
// because the upstream column is either numeric or "MM:SS".
type PlayerStatRow struct {
	PlayerID      int64
	Name          string
	Tricode       string
	StartPosition string
	Minutes       string

	FGM, FGA   int
	FG3M, FG3A int
	FTM, FTA   int
	OREB, REB  int
	AST        int
	STL        int
	BLK        int
	TOV        int
	PF         int
	PTS        int
	PlusMinus  int
}

type TeamStatRow struct {
	Tricode string
	Name    string

	FGM, FGA   int
	FG3M, FG3A int
	FTM, FTA   int
	OREB, REB  int
	AST        int
	STL        int
	BLK        int
	TOV        int
	PF         int
	PTS        int
}

type Boxscore struct {
	PlayerStats []PlayerStatRow
	TeamStats   []TeamStatRow
}

// RotationRow is one continuous on-court interval, in ticks.
type RotationRow struct {
	PersonID  int64
	FirstName string
	LastName  string
	InTick    int64
	OutTick   int64
	PointDiff int
}

type Rotation struct {
	Home []RotationRow
	Away []RotationRow
}

// Tables bundles everything the per-game transform consumes.
type Tables struct {
	GameID     string
	Scoreboard Scoreboard
	Boxscore   Boxscore
	Rotation   Rotation
	PlayByPlay []pbp.Event
}
