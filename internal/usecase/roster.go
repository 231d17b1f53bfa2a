package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hoopsight/stintline/internal/domain/source"
	"github.com/hoopsight/stintline/internal/platform/cache"
)

// RosterCache remembers the listed position of every player seen during a
// run. Bench rows carry no start position, so a player's position comes
// from whichever earlier box score listed one for them.
type RosterCache struct {
	store *cache.Store
}

func NewRosterCache(ttl time.Duration) *RosterCache {
	return &RosterCache{store: cache.NewStore(ttl)}
}

// Remember records the start position of every starter in the box score.
func (r *RosterCache) Remember(ctx context.Context, box source.Boxscore) {
	for _, row := range box.PlayerStats {
		if row.StartPosition == "" {
			continue
		}
		r.store.Set(ctx, rosterPositionKey(row.PlayerID), row.StartPosition)
	}
}

// Position returns the remembered position for a player, or "" when the
// player has not started any processed game. Satisfies PositionResolver.
func (r *RosterCache) Position(playerID int64) string {
	value, ok := r.store.Get(context.Background(), rosterPositionKey(playerID))
	if !ok {
		return ""
	}
	position, _ := value.(string)
	return position
}

func rosterPositionKey(playerID int64) string {
	return fmt.Sprintf("roster:position:%d", playerID)
}
