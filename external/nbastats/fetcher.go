package nbastats

import (
	"context"
	"fmt"
	"strings"

	"github.com/hoopsight/stintline/internal/domain/clock"
	"github.com/hoopsight/stintline/internal/domain/pbp"
	"github.com/hoopsight/stintline/internal/domain/source"
)

// Scoreboard fetches scoreboardv2 for a date and maps the GameHeader and
// LineScore result sets.
func (c *Client) Scoreboard(ctx context.Context, date string) (source.Scoreboard, error) {
	env, err := c.doJSON(ctx, "scoreboardv2", map[string]string{
		"GameDate":  date,
		"DayOffset": "0",
		"LeagueID":  "00",
	})
	if err != nil {
		return source.Scoreboard{}, fmt.Errorf("fetch scoreboard date=%s: %w", date, err)
	}

	headerTable, err := env.table("GameHeader")
	if err != nil {
		return source.Scoreboard{}, fmt.Errorf("scoreboard game header: %w", err)
	}
	lineTable, err := env.table("LineScore")
	if err != nil {
		return source.Scoreboard{}, fmt.Errorf("scoreboard line score: %w", err)
	}

	sb := source.Scoreboard{
		Headers:    make([]source.GameHeaderRow, 0, len(headerTable.rows)),
		LineScores: make([]source.LineScoreRow, 0, len(lineTable.rows)),
	}
	for _, row := range headerTable.rows {
		sb.Headers = append(sb.Headers, source.GameHeaderRow{
			GameID:        headerTable.str(row, "GAME_ID"),
			HomeTeamID:    headerTable.i64(row, "HOME_TEAM_ID"),
			VisitorTeamID: headerTable.i64(row, "VISITOR_TEAM_ID"),
			StatusText:    headerTable.str(row, "GAME_STATUS_TEXT"),
		})
	}
	for _, row := range lineTable.rows {
		sb.LineScores = append(sb.LineScores, source.LineScoreRow{
			GameID:  lineTable.str(row, "GAME_ID"),
			TeamID:  lineTable.i64(row, "TEAM_ID"),
			Tricode: lineTable.str(row, "TEAM_ABBREVIATION"),
			Name:    lineTable.str(row, "TEAM_NAME"),
			Points:  lineTable.num(row, "PTS"),
		})
	}
	return sb, nil
}

// Boxscore fetches boxscoretraditionalv2 and maps the player and team stat
// result sets.
func (c *Client) Boxscore(ctx context.Context, gameID string) (source.Boxscore, error) {
	env, err := c.doJSON(ctx, "boxscoretraditionalv2", map[string]string{
		"GameID":      gameID,
		"StartPeriod": "1",
		"EndPeriod":   "10",
		"StartRange":  "0",
		"EndRange":    "0",
		"RangeType":   "0",
	})
	if err != nil {
		return source.Boxscore{}, fmt.Errorf("fetch boxscore game=%s: %w", gameID, err)
	}

	playerTable, err := env.table("PlayerStats")
	if err != nil {
		return source.Boxscore{}, fmt.Errorf("boxscore player stats: %w", err)
	}
	teamTable, err := env.table("TeamStats")
	if err != nil {
		return source.Boxscore{}, fmt.Errorf("boxscore team stats: %w", err)
	}

	box := source.Boxscore{
		PlayerStats: make([]source.PlayerStatRow, 0, len(playerTable.rows)),
		TeamStats:   make([]source.TeamStatRow, 0, len(teamTable.rows)),
	}
	for _, row := range playerTable.rows {
		box.PlayerStats = append(box.PlayerStats, source.PlayerStatRow{
			PlayerID:      playerTable.i64(row, "PLAYER_ID"),
			Name:          playerTable.str(row, "PLAYER_NAME"),
			Tricode:       playerTable.str(row, "TEAM_ABBREVIATION"),
			StartPosition: playerTable.str(row, "START_POSITION"),
			Minutes:       playerTable.str(row, "MIN"),
			FGM:           playerTable.num(row, "FGM"),
			FGA:           playerTable.num(row, "FGA"),
			FG3M:          playerTable.num(row, "FG3M"),
			FG3A:          playerTable.num(row, "FG3A"),
			FTM:           playerTable.num(row, "FTM"),
			FTA:           playerTable.num(row, "FTA"),
			OREB:          playerTable.num(row, "OREB"),
			REB:           playerTable.num(row, "REB"),
			AST:           playerTable.num(row, "AST"),
			STL:           playerTable.num(row, "STL"),
			BLK:           playerTable.num(row, "BLK"),
			TOV:           playerTable.num(row, "TO"),
			PF:            playerTable.num(row, "PF"),
			PTS:           playerTable.num(row, "PTS"),
			PlusMinus:     playerTable.num(row, "PLUS_MINUS"),
		})
	}
	for _, row := range teamTable.rows {
		box.TeamStats = append(box.TeamStats, source.TeamStatRow{
			Tricode: teamTable.str(row, "TEAM_ABBREVIATION"),
			Name:    teamTable.str(row, "TEAM_NAME"),
			FGM:     teamTable.num(row, "FGM"),
			FGA:     teamTable.num(row, "FGA"),
			FG3M:    teamTable.num(row, "FG3M"),
			FG3A:    teamTable.num(row, "FG3A"),
			FTM:     teamTable.num(row, "FTM"),
			FTA:     teamTable.num(row, "FTA"),
			OREB:    teamTable.num(row, "OREB"),
			REB:     teamTable.num(row, "REB"),
			AST:     teamTable.num(row, "AST"),
			STL:     teamTable.num(row, "STL"),
			BLK:     teamTable.num(row, "BLK"),
			TOV:     teamTable.num(row, "TO"),
			PF:      teamTable.num(row, "PF"),
			PTS:     teamTable.num(row, "PTS"),
		})
	}
	return box, nil
}

// Rotation fetches gamerotation and maps both sides. The feed's timestamps
// are milliseconds from the opening tip; rows are normalized to ticks here
// so the core never sees the source unit.
func (c *Client) Rotation(ctx context.Context, gameID string) (source.Rotation, error) {
	env, err := c.doJSON(ctx, "gamerotation", map[string]string{
		"GameID":   gameID,
		"LeagueID": "00",
	})
	if err != nil {
		return source.Rotation{}, fmt.Errorf("fetch rotation game=%s: %w", gameID, err)
	}

	awayTable, err := env.table("AwayTeam")
	if err != nil {
		return source.Rotation{}, fmt.Errorf("rotation away team: %w", err)
	}
	homeTable, err := env.table("HomeTeam")
	if err != nil {
		return source.Rotation{}, fmt.Errorf("rotation home team: %w", err)
	}

	return source.Rotation{
		Home: rotationRows(homeTable),
		Away: rotationRows(awayTable),
	}, nil
}

func rotationRows(t table) []source.RotationRow {
	rows := make([]source.RotationRow, 0, len(t.rows))
	for _, row := range t.rows {
		rows = append(rows, source.RotationRow{
			PersonID:  t.i64(row, "PERSON_ID"),
			FirstName: t.str(row, "PLAYER_FIRST"),
			LastName:  t.str(row, "PLAYER_LAST"),
			InTick:    clock.FromMillis(t.i64(row, "IN_TIME_REAL")),
			OutTick:   clock.FromMillis(t.i64(row, "OUT_TIME_REAL")),
			PointDiff: t.num(row, "PT_DIFF"),
		})
	}
	return rows
}

// PlayByPlay fetches playbyplayv2 and falls back to the v3 endpoint when the
// older one is missing for a game. Both schemas land in the same Event
// union; the classifier sorts out which generation each row came from.
func (c *Client) PlayByPlay(ctx context.Context, gameID string) ([]pbp.Event, error) {
	env, err := c.doJSON(ctx, "playbyplayv2", map[string]string{
		"GameID":      gameID,
		"StartPeriod": "1",
		"EndPeriod":   "10",
	})
	if err == nil {
		if t, tErr := env.table("PlayByPlay"); tErr == nil && len(t.rows) > 0 {
			return legacyEvents(t), nil
		}
	}

	events, v3Err := c.playByPlayV3(ctx, gameID)
	if v3Err != nil {
		if err != nil {
			return nil, fmt.Errorf("fetch play-by-play game=%s: %w", gameID, err)
		}
		return nil, fmt.Errorf("fetch play-by-play game=%s: %w", gameID, v3Err)
	}
	return events, nil
}

func legacyEvents(t table) []pbp.Event {
	events := make([]pbp.Event, 0, len(t.rows))
	for _, row := range t.rows {
		events = append(events, pbp.Event{
			EventNum:       t.i64(row, "EVENTNUM"),
			Period:         t.num(row, "PERIOD"),
			Clock:          t.str(row, "PCTIMESTRING"),
			MsgType:        t.num(row, "EVENTMSGTYPE"),
			ActionType:     t.num(row, "EVENTMSGACTIONTYPE"),
			HomeDesc:       t.str(row, "HOMEDESCRIPTION"),
			VisitorDesc:    t.str(row, "VISITORDESCRIPTION"),
			NeutralDesc:    t.str(row, "NEUTRALDESCRIPTION"),
			ScoreText:      t.str(row, "SCORE"),
			PersonID:       t.i64(row, "PLAYER1_ID"),
			SecondPersonID: t.i64(row, "PLAYER2_ID"),
		})
	}
	return events
}

type pbpV3Action struct {
	ActionNumber   int64  `json:"actionNumber"`
	Period         int    `json:"period"`
	Clock          string `json:"clock"`
	ActionType     string `json:"actionType"`
	SubType        string `json:"subType"`
	ShotResult     string `json:"shotResult"`
	ShotValue      int    `json:"shotValue"`
	ScoreHome      string `json:"scoreHome"`
	ScoreAway      string `json:"scoreAway"`
	PersonID       int64  `json:"personId"`
	AssistPersonID int64  `json:"assistPersonId"`
	Description    string `json:"description"`
}

type pbpV3Envelope struct {
	Game struct {
		Actions []pbpV3Action `json:"actions"`
	} `json:"game"`
}

func (c *Client) playByPlayV3(ctx context.Context, gameID string) ([]pbp.Event, error) {
	var env pbpV3Envelope
	if err := c.getJSON(ctx, "playbyplayv3", map[string]string{
		"GameID":      gameID,
		"StartPeriod": "1",
		"EndPeriod":   "10",
	}, &env); err != nil {
		return nil, err
	}

	events := make([]pbp.Event, 0, len(env.Game.Actions))
	for _, a := range env.Game.Actions {
		events = append(events, pbp.Event{
			EventNum:       a.ActionNumber,
			Period:         a.Period,
			Clock:          parseISOClock(a.Clock),
			Action:         a.ActionType,
			SubAction:      a.SubType,
			ShotResult:     a.ShotResult,
			ShotValue:      a.ShotValue,
			ScoreHome:      a.ScoreHome,
			ScoreAway:      a.ScoreAway,
			PersonID:       a.PersonID,
			AssistPersonID: a.AssistPersonID,
			Description:    a.Description,
		})
	}
	return events, nil
}

// parseISOClock converts the v3 "PT11M30.00S" clock into the countdown
// string the rest of the system speaks. Unparseable clocks pass through
// untouched and resolve to 0:00 downstream.
func parseISOClock(iso string) string {
	s := strings.TrimSpace(iso)
	if !strings.HasPrefix(s, "PT") || !strings.HasSuffix(s, "S") {
		return iso
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "PT"), "S")
	mIdx := strings.IndexByte(s, 'M')
	if mIdx < 0 {
		return iso
	}
	minutes := s[:mIdx]
	seconds := s[mIdx+1:]
	if dot := strings.IndexByte(seconds, '.'); dot >= 0 {
		seconds = seconds[:dot]
	}
	if minutes == "" || seconds == "" {
		return iso
	}
	minutes = strings.TrimLeft(minutes, "0")
	if minutes == "" {
		minutes = "0"
	}
	return minutes + ":" + seconds
}
