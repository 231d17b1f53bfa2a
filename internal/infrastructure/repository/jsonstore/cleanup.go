package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/hoopsight/stintline/internal/domain/archive"
	"github.com/hoopsight/stintline/internal/domain/boxscore"
)

// Cleanup removes everything from months before the reference date's month:
// old score files, game directories whose boxscore date is stale, and their
// index entries. Returns the deleted paths for logging. Games with an
// unreadable boxscore are left in place.
func (s *Store) Cleanup(ctx context.Context, referenceDate string) ([]string, error) {
	if len(referenceDate) < 7 {
		return nil, nil
	}
	currentMonth := referenceDate[:7]
	deleted := make([]string, 0, 16)

	scoresDir := filepath.Join(s.dir, "scores")
	if files, err := os.ReadDir(scoresDir); err == nil {
		for _, f := range files {
			name := f.Name()
			if !strings.HasSuffix(name, ".json") || len(name) < 7 {
				continue
			}
			fileMonth := strings.TrimSuffix(name, ".json")
			if len(fileMonth) >= 7 {
				fileMonth = fileMonth[:7]
			}
			if fileMonth < currentMonth {
				path := filepath.Join(scoresDir, name)
				if err := os.Remove(path); err == nil {
					deleted = append(deleted, path)
				}
			}
		}
	}

	gamesDir := filepath.Join(s.dir, "games")
	if dirs, err := os.ReadDir(gamesDir); err == nil {
		for _, d := range dirs {
			if !d.IsDir() {
				continue
			}
			gameDir := filepath.Join(gamesDir, d.Name())
			raw, err := os.ReadFile(filepath.Join(gameDir, "boxscore.json"))
			if err != nil {
				continue
			}
			var rec boxscore.Record
			if err := sonic.Unmarshal(raw, &rec); err != nil || len(rec.Date) < 7 {
				continue
			}
			if rec.Date[:7] < currentMonth {
				if err := os.RemoveAll(gameDir); err == nil {
					deleted = append(deleted, gameDir)
				}
			}
		}
	}

	if err := s.pruneIndex(ctx, currentMonth); err != nil {
		s.logger.WarnContext(ctx, "could not update index during cleanup", "error", err)
	}
	return deleted, nil
}

func (s *Store) pruneIndex(ctx context.Context, currentMonth string) error {
	idx, err := s.Index(ctx)
	if err != nil {
		return err
	}
	if len(idx.Dates) == 0 {
		return nil
	}

	kept := make([]archive.IndexEntry, 0, len(idx.Dates))
	for _, e := range idx.Dates {
		if e.Date >= currentMonth {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(idx.Dates) {
		return nil
	}
	return writeJSONAtomic(s.indexPath(), archive.Index{Dates: kept})
}
