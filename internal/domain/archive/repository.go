package archive

import (
	"context"

	"github.com/hoopsight/stintline/internal/domain/boxscore"
	"github.com/hoopsight/stintline/internal/domain/game"
	"github.com/hoopsight/stintline/internal/domain/gameflow"
)

// Store persists and serves the transformed documents. The write side is
// used by the pipeline, the read side by the API.
type Store interface {
	WriteScores(ctx context.Context, date string, scores []game.Summary) error
	WriteGame(ctx context.Context, gameID string, box boxscore.Record, flow gameflow.Record) error
	MergeIndex(ctx context.Context, entries []IndexEntry) error
	Cleanup(ctx context.Context, referenceDate string) ([]string, error)

	Index(ctx context.Context) (Index, error)
	Scores(ctx context.Context, date string) ([]game.Summary, error)
	Boxscore(ctx context.Context, gameID string) (boxscore.Record, error)
	Gameflow(ctx context.Context, gameID string) (gameflow.Record, error)
}
