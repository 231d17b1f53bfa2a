package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/hoopsight/stintline/internal/domain/archive"
	"github.com/hoopsight/stintline/internal/domain/game"
	"github.com/hoopsight/stintline/internal/domain/source"
	idgen "github.com/hoopsight/stintline/internal/platform/id"
	"github.com/hoopsight/stintline/internal/platform/logging"
)

type PipelineInput struct {
	// Date is the slate to process, YYYY-MM-DD. Empty means yesterday.
	Date       string
	MaxWorkers int
	// SkipCleanup leaves prior months' documents in place.
	SkipCleanup bool
}

type PipelineResult struct {
	RunID        string               `json:"run_id"`
	Date         string               `json:"date"`
	GameCount    int                  `json:"game_count"`
	SuccessCount int                  `json:"success_count"`
	FailedCount  int                  `json:"failed_count"`
	WorkerCount  int                  `json:"worker_count"`
	Games        []PipelineGameResult `json:"games"`
	CleanedPaths []string             `json:"cleaned_paths,omitempty"`
}

type PipelineGameResult struct {
	GameID     string `json:"game_id"`
	Matchup    string `json:"matchup"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

const (
	pipelineStatusSuccess = "success"
	pipelineStatusFailed  = "failed"
)

// PipelineService runs one slate end to end: scoreboard to scores document,
// then every game's box score and game flow, then the index merge and the
// monthly cleanup. A failed game is reported, never fatal to the run.
type PipelineService struct {
	fetcher source.Fetcher
	store   archive.Store
	scores  *ScoresService
	box     *BoxscoreService
	flow    *GameflowService
	rosters *RosterCache
	ids     idgen.Generator
	logger  *logging.Logger
}

func NewPipelineService(fetcher source.Fetcher, store archive.Store, logger *logging.Logger) *PipelineService {
	if logger == nil {
		logger = logging.Default()
	}
	rosters := NewRosterCache(24 * time.Hour)
	return &PipelineService{
		fetcher: fetcher,
		store:   store,
		scores:  NewScoresService(),
		box:     NewBoxscoreService(rosters.Position),
		flow:    NewGameflowService(),
		rosters: rosters,
		ids:     idgen.NewRandomGenerator(),
		logger:  logger,
	}
}

func (s *PipelineService) Run(ctx context.Context, input PipelineInput) (PipelineResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.Run")
	defer span.End()

	if s.fetcher == nil || s.store == nil {
		return PipelineResult{}, fmt.Errorf("%w: pipeline is not fully configured", ErrDependencyUnavailable)
	}

	date, err := normalizePipelineDate(input.Date)
	if err != nil {
		return PipelineResult{}, err
	}

	runID, err := s.ids.NewID()
	if err != nil {
		return PipelineResult{}, fmt.Errorf("generate run id: %w", err)
	}
	logger := s.logger.With("run_id", runID, "date", date)

	sb, err := s.fetcher.Scoreboard(ctx, date)
	if err != nil {
		return PipelineResult{}, fmt.Errorf("fetch scoreboard date=%s: %w", date, err)
	}
	summaries, err := s.scores.Build(date, sb)
	if err != nil {
		return PipelineResult{}, err
	}
	if err := s.store.WriteScores(ctx, date, summaries); err != nil {
		return PipelineResult{}, fmt.Errorf("write scores date=%s: %w", date, err)
	}

	workerCount := normalizePipelineWorkerCount(input.MaxWorkers, len(summaries))
	result := PipelineResult{
		RunID:       runID,
		Date:        date,
		GameCount:   len(summaries),
		WorkerCount: workerCount,
		Games:       make([]PipelineGameResult, 0, len(summaries)),
	}

	if len(summaries) > 0 {
		rows := make(chan PipelineGameResult, len(summaries))

		var successCount atomic.Int32
		var failedCount atomic.Int32

		pool, err := ants.NewPool(workerCount)
		if err != nil {
			return PipelineResult{}, fmt.Errorf("create worker pool: %w", err)
		}
		defer pool.Release()

		var workers sync.WaitGroup
		for _, summary := range summaries {
			summary := summary
			workers.Add(1)
			if err := pool.Submit(func() {
				defer workers.Done()

				start := time.Now()
				row := PipelineGameResult{
					GameID:  summary.GameID,
					Matchup: summary.AwayTeam.Tricode + " @ " + summary.HomeTeam.Tricode,
				}

				if err := s.processGame(ctx, date, sb, summary); err != nil {
					row.Status = pipelineStatusFailed
					row.Message = err.Error()
					failedCount.Add(1)
					logger.WarnContext(ctx, "game transform failed", "game_id", summary.GameID, "error", err)
				} else {
					row.Status = pipelineStatusSuccess
					successCount.Add(1)
				}
				row.DurationMs = time.Since(start).Milliseconds()

				rows <- row
			}); err != nil {
				workers.Done()
				return PipelineResult{}, fmt.Errorf("submit game to worker pool: %w", err)
			}
		}

		workers.Wait()
		close(rows)

		for row := range rows {
			result.Games = append(result.Games, row)
		}
		sort.SliceStable(result.Games, func(i, j int) bool {
			return result.Games[i].GameID < result.Games[j].GameID
		})

		result.SuccessCount = int(successCount.Load())
		result.FailedCount = int(failedCount.Load())
	}

	// The index reflects the scores document, not per-game transform success,
	// so a partially failed run still lists the slate.
	if err := s.store.MergeIndex(ctx, []archive.IndexEntry{pipelineIndexEntry(date, summaries)}); err != nil {
		return result, fmt.Errorf("merge index date=%s: %w", date, err)
	}

	if !input.SkipCleanup {
		deleted, err := s.store.Cleanup(ctx, date)
		if err != nil {
			logger.WarnContext(ctx, "cleanup failed", "error", err)
		} else {
			result.CleanedPaths = deleted
		}
	}

	logger.InfoContext(ctx, "pipeline run finished",
		"games", result.GameCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

func (s *PipelineService) processGame(ctx context.Context, date string, sb source.Scoreboard, summary game.Summary) error {
	box, err := s.fetcher.Boxscore(ctx, summary.GameID)
	if err != nil {
		return fmt.Errorf("fetch boxscore game=%s: %w", summary.GameID, err)
	}
	rot, err := s.fetcher.Rotation(ctx, summary.GameID)
	if err != nil {
		return fmt.Errorf("fetch rotation game=%s: %w", summary.GameID, err)
	}
	plays, err := s.fetcher.PlayByPlay(ctx, summary.GameID)
	if err != nil {
		return fmt.Errorf("fetch play-by-play game=%s: %w", summary.GameID, err)
	}

	s.rosters.Remember(ctx, box)

	tables := source.Tables{
		GameID:     summary.GameID,
		Scoreboard: sb,
		Boxscore:   box,
		Rotation:   rot,
		PlayByPlay: plays,
	}

	boxRecord, err := s.box.Build(ctx, summary.GameID, date, tables)
	if err != nil {
		return fmt.Errorf("build boxscore game=%s: %w", summary.GameID, err)
	}
	flowRecord, err := s.flow.Build(ctx, summary.GameID, tables)
	if err != nil {
		return fmt.Errorf("build gameflow game=%s: %w", summary.GameID, err)
	}

	if err := s.store.WriteGame(ctx, summary.GameID, boxRecord, flowRecord); err != nil {
		return fmt.Errorf("write game=%s: %w", summary.GameID, err)
	}
	return nil
}

func pipelineIndexEntry(date string, summaries []game.Summary) archive.IndexEntry {
	games := make([]archive.IndexGame, 0, len(summaries))
	for _, summary := range summaries {
		games = append(games, archive.IndexGame{
			GameID:    summary.GameID,
			Home:      summary.HomeTeam.Tricode,
			Away:      summary.AwayTeam.Tricode,
			HomeScore: summary.HomeTeam.Score,
			AwayScore: summary.AwayTeam.Score,
		})
	}
	return archive.IndexEntry{Date: date, Games: games}
}

func normalizePipelineDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().AddDate(0, 0, -1).Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidInput, raw)
	}
	return raw, nil
}

func normalizePipelineWorkerCount(value int, gameCount int) int {
	if gameCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 4
	}
	if value > gameCount {
		value = gameCount
	}
	return value
}
