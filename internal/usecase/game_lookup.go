package usecase

import (
	"fmt"

	"github.com/hoopsight/stintline/internal/domain/game"
	"github.com/hoopsight/stintline/internal/domain/source"
)

// gameSides resolves one game's header and home/away line-score rows out of
// the scoreboard. Both assemblers start here; a game that cannot be resolved
// produces no record at all.
func gameSides(sb source.Scoreboard, gameID string) (header source.GameHeaderRow, home, away source.LineScoreRow, err error) {
	if len(sb.Headers) == 0 {
		return header, home, away, fmt.Errorf("%w: game header is empty for game %s", ErrMissingTable, gameID)
	}
	if len(sb.LineScores) == 0 {
		return header, home, away, fmt.Errorf("%w: line score is empty for game %s", ErrMissingTable, gameID)
	}

	found := false
	for _, h := range sb.Headers {
		if h.GameID == gameID {
			header = h
			found = true
			break
		}
	}
	if !found {
		return header, home, away, fmt.Errorf("%w: game info not found for game %s", ErrMissingTable, gameID)
	}

	haveHome, haveAway := false, false
	for _, ls := range sb.LineScores {
		if ls.GameID != gameID {
			continue
		}
		if ls.TeamID == header.HomeTeamID {
			home = ls
			haveHome = true
		} else if !haveAway {
			away = ls
			haveAway = true
		}
	}
	if !haveHome || !haveAway {
		return header, home, away, fmt.Errorf("%w: home or away line score not found for game %s", ErrMissingTable, gameID)
	}
	return header, home, away, nil
}

func teamScore(ls source.LineScoreRow) game.TeamScore {
	return game.TeamScore{
		TeamRef: game.TeamRef{Tricode: ls.Tricode, Name: ls.Name},
		Score:   ls.Points,
	}
}
