package usecase

import (
	"github.com/hoopsight/stintline/internal/domain/pbp"
	"github.com/hoopsight/stintline/internal/domain/source"
)

const (
	fixtureGameID = "0022300001"
	fixtureDate   = "2024-01-15"
)

// fixtureTables builds a small but complete game: one home player with a
// plain stint and a period-crossing stint, one away iron man, one DNP.
func fixtureTables() source.Tables {
	return source.Tables{
		GameID: fixtureGameID,
		Scoreboard: source.Scoreboard{
			Headers: []source.GameHeaderRow{
				{GameID: fixtureGameID, HomeTeamID: 1, VisitorTeamID: 2, StatusText: "Final"},
			},
			LineScores: []source.LineScoreRow{
				{GameID: fixtureGameID, TeamID: 1, Tricode: "BOS", Name: "Celtics", Points: 112},
				{GameID: fixtureGameID, TeamID: 2, Tricode: "NYK", Name: "Knicks", Points: 105},
			},
		},
		Boxscore: source.Boxscore{
			PlayerStats: []source.PlayerStatRow{
				{
					PlayerID: 7, Name: "Jayson Smith", Tricode: "BOS", StartPosition: "F", Minutes: "34:30",
					FGM: 10, FGA: 20, FG3M: 2, FG3A: 6, FTM: 5, FTA: 6,
					OREB: 2, REB: 8, AST: 6, STL: 2, BLK: 1, TOV: 3, PF: 2, PTS: 27, PlusMinus: 7,
				},
				{
					PlayerID: 9, Name: "Tom Jones", Tricode: "NYK", Minutes: "36",
					FGM: 8, FGA: 17, FG3M: 3, FG3A: 8, FTM: 2, FTA: 2,
					OREB: 1, REB: 5, AST: 4, STL: 1, BLK: 0, TOV: 2, PF: 3, PTS: 21, PlusMinus: -3,
				},
				{PlayerID: 11, Name: "Bench Warmer", Tricode: "BOS", Minutes: ""},
			},
			TeamStats: []source.TeamStatRow{
				{Tricode: "BOS", Name: "Celtics", FGM: 42, FGA: 88, FG3M: 12, FG3A: 34, FTM: 16, FTA: 20, OREB: 10, REB: 44, AST: 26, STL: 7, BLK: 5, TOV: 12, PF: 18, PTS: 112},
				{Tricode: "NYK", Name: "Knicks", FGM: 39, FGA: 90, FG3M: 11, FG3A: 36, FTM: 16, FTA: 19, OREB: 12, REB: 41, AST: 22, STL: 6, BLK: 3, TOV: 14, PF: 20, PTS: 105},
			},
		},
		Rotation: source.Rotation{
			Home: []source.RotationRow{
				{PersonID: 7, FirstName: "Jayson", LastName: "Smith", InTick: 0, OutTick: 6060, PointDiff: 5},
				{PersonID: 7, FirstName: "Jayson", LastName: "Smith", InTick: 7100, OutTick: 7300, PointDiff: 2},
			},
			Away: []source.RotationRow{
				{PersonID: 9, FirstName: "Tom", LastName: "Jones", InTick: 0, OutTick: 7200, PointDiff: -3},
			},
		},
		PlayByPlay: fixtureEvents(),
	}
}

func fixtureEvents() []pbp.Event {
	return []pbp.Event{
		{EventNum: 1, Period: 1, Clock: "11:00", PersonID: 7, MsgType: 1, ActionType: 1, HomeDesc: "Smith Layup (2 PTS)", ScoreText: "0 - 2"},
		{EventNum: 2, Period: 1, Clock: "10:30", PersonID: 9, MsgType: 1, ActionType: 2, VisitorDesc: "Jones 25' 3PT Jumper (3 PTS) (Brown 2 AST)", ScoreText: "3 - 2"},
		{EventNum: 3, Period: 1, Clock: "5:00", PersonID: 7, MsgType: 4, HomeDesc: "Smith REBOUND (Off:1 Def:0)"},
		{EventNum: 4, Period: 1, Clock: "0:05", PersonID: 7, MsgType: 2, ActionType: 1, HomeDesc: "MISS Smith Jumper"},
		{EventNum: 5, Period: 1, Clock: "0:02", ScoreText: "3 - 6"},
		{EventNum: 6, Period: 2, Clock: "11:55", PersonID: 7, MsgType: 6, HomeDesc: "Smith P.FOUL (P1.T2)"},
		{EventNum: 7, Period: 2, Clock: "11:52", ScoreText: "5 - 6"},
	}
}
