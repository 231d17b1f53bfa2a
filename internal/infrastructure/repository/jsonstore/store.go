package jsonstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/hoopsight/stintline/internal/domain/archive"
	"github.com/hoopsight/stintline/internal/domain/boxscore"
	"github.com/hoopsight/stintline/internal/domain/game"
	"github.com/hoopsight/stintline/internal/domain/gameflow"
	"github.com/hoopsight/stintline/internal/platform/logging"
)

// Store keeps the transformed documents as a JSON tree:
//
//	<dir>/index.json
//	<dir>/scores/<date>.json
//	<dir>/games/<gameId>/boxscore.json
//	<dir>/games/<gameId>/gameflow.json
//
// Every write is atomic (temp file + rename) so readers never observe a
// half-written document.
type Store struct {
	dir      string
	logger   *logging.Logger
	validate *validator.Validate
}

var _ archive.Store = (*Store)(nil)

func NewStore(dir string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		dir:      dir,
		logger:   logger,
		validate: validator.New(),
	}
}

func (s *Store) indexPath() string {
	return filepath.Join(s.dir, "index.json")
}

func (s *Store) scoresPath(date string) string {
	return filepath.Join(s.dir, "scores", date+".json")
}

func (s *Store) gameDir(gameID string) string {
	return filepath.Join(s.dir, "games", gameID)
}

func (s *Store) WriteScores(ctx context.Context, date string, scores []game.Summary) error {
	for i := range scores {
		if err := s.validate.StructCtx(ctx, scores[i]); err != nil {
			return fmt.Errorf("validate score summary %s: %w", scores[i].GameID, err)
		}
	}
	if err := writeJSONAtomic(s.scoresPath(date), scores); err != nil {
		return fmt.Errorf("write scores %s: %w", date, err)
	}
	return nil
}

func (s *Store) WriteGame(ctx context.Context, gameID string, box boxscore.Record, flow gameflow.Record) error {
	if err := s.validate.StructCtx(ctx, box); err != nil {
		return fmt.Errorf("validate boxscore %s: %w", gameID, err)
	}
	if err := s.validate.StructCtx(ctx, flow); err != nil {
		return fmt.Errorf("validate gameflow %s: %w", gameID, err)
	}

	dir := s.gameDir(gameID)
	if err := writeJSONAtomic(filepath.Join(dir, "boxscore.json"), box); err != nil {
		return fmt.Errorf("write boxscore %s: %w", gameID, err)
	}
	if err := writeJSONAtomic(filepath.Join(dir, "gameflow.json"), flow); err != nil {
		return fmt.Errorf("write gameflow %s: %w", gameID, err)
	}
	return nil
}

// MergeIndex folds new date entries into the existing index, replacing
// entries for the same date, and keeps dates sorted most recent first.
func (s *Store) MergeIndex(ctx context.Context, entries []archive.IndexEntry) error {
	existing, err := s.Index(ctx)
	if err != nil {
		return err
	}

	byDate := make(map[string]archive.IndexEntry, len(existing.Dates)+len(entries))
	for _, e := range existing.Dates {
		byDate[e.Date] = e
	}
	for _, e := range entries {
		byDate[e.Date] = e
	}

	merged := make([]archive.IndexEntry, 0, len(byDate))
	for _, e := range byDate {
		merged = append(merged, e)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Date > merged[j].Date })

	if err := writeJSONAtomic(s.indexPath(), archive.Index{Dates: merged}); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

func (s *Store) Index(_ context.Context) (archive.Index, error) {
	var idx archive.Index
	raw, err := os.ReadFile(s.indexPath())
	if os.IsNotExist(err) {
		return archive.Index{}, nil
	}
	if err != nil {
		return archive.Index{}, fmt.Errorf("read index: %w", err)
	}
	if err := sonic.Unmarshal(raw, &idx); err != nil {
		return archive.Index{}, fmt.Errorf("decode index: %w", err)
	}
	return idx, nil
}

func (s *Store) Scores(_ context.Context, date string) ([]game.Summary, error) {
	var scores []game.Summary
	if err := s.readDocument(s.scoresPath(date), &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func (s *Store) Boxscore(_ context.Context, gameID string) (boxscore.Record, error) {
	var rec boxscore.Record
	if err := s.readDocument(filepath.Join(s.gameDir(gameID), "boxscore.json"), &rec); err != nil {
		return boxscore.Record{}, err
	}
	return rec, nil
}

func (s *Store) Gameflow(_ context.Context, gameID string) (gameflow.Record, error) {
	var rec gameflow.Record
	if err := s.readDocument(filepath.Join(s.gameDir(gameID), "gameflow.json"), &rec); err != nil {
		return gameflow.Record{}, err
	}
	return rec, nil
}

func (s *Store) readDocument(path string, target any) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", archive.ErrNotFound, filepath.Base(path))
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
