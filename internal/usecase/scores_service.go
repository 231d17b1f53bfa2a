package usecase

import (
	"fmt"
	"strings"

	"github.com/hoopsight/stintline/internal/domain/game"
	"github.com/hoopsight/stintline/internal/domain/source"
)

// ScoresService turns a daily scoreboard into the scores document: one
// summary per game, home and away paired through the header's team ids.
type ScoresService struct{}

func NewScoresService() *ScoresService {
	return &ScoresService{}
}

// Build returns the summaries for every resolvable game on the scoreboard.
// Games with an incomplete line score are skipped, not fatal; an empty
// scoreboard yields an empty slice.
func (s *ScoresService) Build(date string, sb source.Scoreboard) ([]game.Summary, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	summaries := make([]game.Summary, 0, len(sb.Headers))
	for _, h := range sb.Headers {
		_, home, away, err := gameSides(sb, h.GameID)
		if err != nil {
			continue
		}

		status := h.StatusText
		if status == "" {
			status = "Final"
		}
		summaries = append(summaries, game.Summary{
			GameID:   h.GameID,
			Date:     date,
			HomeTeam: teamScore(home),
			AwayTeam: teamScore(away),
			Status:   status,
		})
	}
	return summaries, nil
}
