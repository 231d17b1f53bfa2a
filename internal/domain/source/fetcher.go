package source

import (
	"context"

	"github.com/hoopsight/stintline/internal/domain/pbp"
)

// Fetcher supplies the four input tables. Retries, rate limiting and
// timeouts live behind this interface, never in the transform core.
type Fetcher interface {
	Scoreboard(ctx context.Context, date string) (Scoreboard, error)
	Boxscore(ctx context.Context, gameID string) (Boxscore, error)
	Rotation(ctx context.Context, gameID string) (Rotation, error)
	PlayByPlay(ctx context.Context, gameID string) ([]pbp.Event, error)
}
