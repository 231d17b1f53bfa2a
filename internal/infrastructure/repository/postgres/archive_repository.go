package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/hoopsight/stintline/internal/domain/archive"
	"github.com/hoopsight/stintline/internal/domain/boxscore"
	"github.com/hoopsight/stintline/internal/domain/game"
	"github.com/hoopsight/stintline/internal/domain/gameflow"
	qb "github.com/hoopsight/stintline/internal/platform/querybuilder"
)

const (
	docTypeScores   = "scores"
	docTypeBoxscore = "boxscore"
	docTypeGameflow = "gameflow"
	docTypeIndex    = "index"

	indexDocKey = "catalog"
)

// ArchiveRepository mirrors the document archive into Postgres, one JSONB
// row per document keyed by (doc_type, doc_key). It serves deployments that
// keep the archive queryable next to the rest of the warehouse instead of
// on disk.
type ArchiveRepository struct {
	db *sqlx.DB
}

var _ archive.Store = (*ArchiveRepository)(nil)

func NewArchiveRepository(db *sqlx.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

type archiveDocumentInsertModel struct {
	DocType  string `db:"doc_type"`
	DocKey   string `db:"doc_key"`
	GameDate string `db:"game_date"`
	Payload  string `db:"payload"`
}

func (r *ArchiveRepository) WriteScores(ctx context.Context, date string, scores []game.Summary) error {
	if err := upsertArchiveDocument(ctx, r.db, docTypeScores, date, date, scores); err != nil {
		return fmt.Errorf("write scores date=%s: %w", date, err)
	}
	return nil
}

func (r *ArchiveRepository) WriteGame(ctx context.Context, gameID string, box boxscore.Record, flow gameflow.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx write game: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := upsertArchiveDocument(ctx, tx, docTypeBoxscore, gameID, box.Date, box); err != nil {
		return fmt.Errorf("write boxscore game=%s: %w", gameID, err)
	}
	if err := upsertArchiveDocument(ctx, tx, docTypeGameflow, gameID, box.Date, flow); err != nil {
		return fmt.Errorf("write gameflow game=%s: %w", gameID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit write game tx: %w", err)
	}
	return nil
}

// MergeIndex folds new date entries into the catalog row, replacing entries
// for the same date, and keeps dates sorted most recent first.
func (r *ArchiveRepository) MergeIndex(ctx context.Context, entries []archive.IndexEntry) error {
	existing, err := r.Index(ctx)
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

	if err := upsertArchiveDocument(ctx, r.db, docTypeIndex, indexDocKey, "", archive.Index{Dates: merged}); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// Cleanup deletes every document from months before the reference date's
// month and prunes the same dates out of the catalog.
func (r *ArchiveRepository) Cleanup(ctx context.Context, referenceDate string) ([]string, error) {
	if len(referenceDate) < 7 {
		return nil, nil
	}
	currentMonth := referenceDate[:7]

	const deleteStaleQuery = `
DELETE FROM archive_documents
WHERE doc_type <> 'index'
  AND game_date <> ''
  AND left(game_date, 7) < $1
RETURNING doc_type || '/' || doc_key`

	var deleted []string
	if err := r.db.SelectContext(ctx, &deleted, deleteStaleQuery, currentMonth); err != nil {
		return nil, fmt.Errorf("delete stale documents: %w", err)
	}

	idx, err := r.Index(ctx)
	if err != nil {
		return deleted, err
	}
	kept := make([]archive.IndexEntry, 0, len(idx.Dates))
	for _, e := range idx.Dates {
		if e.Date >= currentMonth {
			kept = append(kept, e)
		}
	}
	if len(kept) != len(idx.Dates) {
		if err := upsertArchiveDocument(ctx, r.db, docTypeIndex, indexDocKey, "", archive.Index{Dates: kept}); err != nil {
			return deleted, fmt.Errorf("prune index: %w", err)
		}
	}

	return deleted, nil
}

func (r *ArchiveRepository) Index(ctx context.Context) (archive.Index, error) {
	var idx archive.Index
	err := r.readDocument(ctx, docTypeIndex, indexDocKey, &idx)
	if err == nil {
		return idx, nil
	}
	if errors.Is(err, archive.ErrNotFound) {
		return archive.Index{}, nil
	}
	return archive.Index{}, err
}

func (r *ArchiveRepository) Scores(ctx context.Context, date string) ([]game.Summary, error) {
	var scores []game.Summary
	if err := r.readDocument(ctx, docTypeScores, date, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *ArchiveRepository) Boxscore(ctx context.Context, gameID string) (boxscore.Record, error) {
	var rec boxscore.Record
	if err := r.readDocument(ctx, docTypeBoxscore, gameID, &rec); err != nil {
		return boxscore.Record{}, err
	}
	return rec, nil
}

func (r *ArchiveRepository) Gameflow(ctx context.Context, gameID string) (gameflow.Record, error) {
	var rec gameflow.Record
	if err := r.readDocument(ctx, docTypeGameflow, gameID, &rec); err != nil {
		return gameflow.Record{}, err
	}
	return rec, nil
}

func (r *ArchiveRepository) readDocument(ctx context.Context, docType, docKey string, target any) error {
	query, args, err := qb.Select("payload").From("archive_documents").
		Where(
			qb.Eq("doc_type", docType),
			qb.Eq("doc_key", docKey),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build select document query: %w", err)
	}

	var raw []byte
	if err := r.db.GetContext(ctx, &raw, query, args...); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %s/%s", archive.ErrNotFound, docType, docKey)
		}
		return fmt.Errorf("get document %s/%s: %w", docType, docKey, err)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode document %s/%s: %w", docType, docKey, err)
	}
	return nil
}

func upsertArchiveDocument(ctx context.Context, execer sqlx.ExtContext, docType, docKey, gameDate string, payload any) error {
	raw, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode document %s/%s: %w", docType, docKey, err)
	}

	insertModel := archiveDocumentInsertModel{
		DocType:  docType,
		DocKey:   docKey,
		GameDate: gameDate,
		Payload:  string(raw),
	}
	query, args, err := qb.InsertModel("archive_documents", insertModel, `ON CONFLICT (doc_type, doc_key)
DO UPDATE SET
    game_date = EXCLUDED.game_date,
    payload = EXCLUDED.payload,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert document query: %w", err)
	}
	if _, err := execer.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert document %s/%s: %w", docType, docKey, err)
	}
	return nil
}
