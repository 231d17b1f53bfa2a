package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/hoopsight/stintline/internal/domain/archive"
	"github.com/hoopsight/stintline/internal/platform/logging"
	"github.com/hoopsight/stintline/internal/usecase"
)

// Handler serves the archived documents read-only, plus the internal
// pipeline trigger. Documents go out exactly as stored; the handlers never
// recompute anything.
type Handler struct {
	store     archive.Store
	pipeline  *usecase.PipelineService
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(store archive.Store, pipeline *usecase.PipelineService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		store:     store,
		pipeline:  pipeline,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetIndex(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetIndex")
	defer span.End()

	idx, err := h.store.Index(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get index failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, idx)
}

func (h *Handler) GetScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScores")
	defer span.End()

	date := strings.TrimSpace(r.PathValue("date"))
	if err := h.validateRequest(ctx, getScoresRequest{Date: date}); err != nil {
		writeError(ctx, w, err)
		return
	}

	scores, err := h.store.Scores(ctx, date)
	if err != nil {
		if !errors.Is(err, archive.ErrNotFound) {
			h.logger.WarnContext(ctx, "get scores failed", "date", date, "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scores)
}

func (h *Handler) GetBoxscore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBoxscore")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	if gameID == "" {
		writeError(ctx, w, fmt.Errorf("%w: game id is required", usecase.ErrInvalidInput))
		return
	}

	rec, err := h.store.Boxscore(ctx, gameID)
	if err != nil {
		if !errors.Is(err, archive.ErrNotFound) {
			h.logger.WarnContext(ctx, "get boxscore failed", "game_id", gameID, "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rec)
}

func (h *Handler) GetGameflow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameflow")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	if gameID == "" {
		writeError(ctx, w, fmt.Errorf("%w: game id is required", usecase.ErrInvalidInput))
		return
	}

	rec, err := h.store.Gameflow(ctx, gameID)
	if err != nil {
		if !errors.Is(err, archive.ErrNotFound) {
			h.logger.WarnContext(ctx, "get gameflow failed", "game_id", gameID, "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rec)
}

func (h *Handler) RunPipelineJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunPipelineJob")
	defer span.End()

	if h.pipeline == nil {
		writeError(ctx, w, fmt.Errorf("%w: pipeline is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req runPipelineRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.pipeline.Run(ctx, usecase.PipelineInput{
		Date:        req.Date,
		MaxWorkers:  req.MaxWorkers,
		SkipCleanup: req.SkipCleanup,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "pipeline job failed", "date", req.Date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type getScoresRequest struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

type runPipelineRequest struct {
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	MaxWorkers  int    `json:"max_workers" validate:"omitempty,min=1,max=16"`
	SkipCleanup bool   `json:"skip_cleanup"`
}
