package usecase

import (
	"errors"
	"testing"

	"github.com/hoopsight/stintline/internal/domain/source"
)

func TestScoresService_Build(t *testing.T) {
	svc := NewScoresService()

	summaries, err := svc.Build(fixtureDate, fixtureTables().Scoreboard)
	if err != nil {
		t.Fatalf("build scores failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("unexpected summary count: %d", len(summaries))
	}

	got := summaries[0]
	if got.GameID != fixtureGameID || got.Date != fixtureDate {
		t.Fatalf("unexpected identity: %+v", got)
	}
	if got.HomeTeam.Tricode != "BOS" || got.HomeTeam.Score != 112 {
		t.Fatalf("unexpected home side: %+v", got.HomeTeam)
	}
	if got.AwayTeam.Tricode != "NYK" || got.AwayTeam.Score != 105 {
		t.Fatalf("unexpected away side: %+v", got.AwayTeam)
	}
	if got.Status != "Final" {
		t.Fatalf("unexpected status: %s", got.Status)
	}
}

func TestScoresService_Build_SkipsIncompleteGames(t *testing.T) {
	sb := fixtureTables().Scoreboard
	sb.Headers = append(sb.Headers, source.GameHeaderRow{GameID: "0022300002", HomeTeamID: 3, VisitorTeamID: 4})

	summaries, err := NewScoresService().Build(fixtureDate, sb)
	if err != nil {
		t.Fatalf("build scores failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("incomplete game should be skipped, got %d summaries", len(summaries))
	}
}

func TestScoresService_Build_RequiresDate(t *testing.T) {
	_, err := NewScoresService().Build("  ", fixtureTables().Scoreboard)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestScoresService_Build_EmptyScoreboard(t *testing.T) {
	summaries, err := NewScoresService().Build(fixtureDate, source.Scoreboard{})
	if err != nil {
		t.Fatalf("build scores failed: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("expected no summaries, got %d", len(summaries))
	}
}
