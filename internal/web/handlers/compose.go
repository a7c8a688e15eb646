package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/kozaktomas/photo-printer/internal/compose"
	"github.com/kozaktomas/photo-printer/internal/config"
	"github.com/kozaktomas/photo-printer/internal/layout"
	"github.com/kozaktomas/photo-printer/internal/render"
	"github.com/kozaktomas/photo-printer/internal/source"
)

// ComposeHandler handles compose-related endpoints.
type ComposeHandler struct {
	config     *config.Config
	jobManager *JobManager
}

// NewComposeHandler creates a new compose handler.
func NewComposeHandler(cfg *config.Config, jm *JobManager) *ComposeHandler {
	return &ComposeHandler{
		config:     cfg,
		jobManager: jm,
	}
}

// ComposeRequest represents a compose start request.
type ComposeRequest struct {
	SourceDir   string               `json:"source_dir"`
	Output      string               `json:"output"`
	Layout      string               `json:"layout"`
	Paper       string               `json:"paper"`
	Margins     *layout.MarginConfig `json:"margins,omitempty"`
	Mode        string               `json:"mode,omitempty"`
	DPI         float64              `json:"dpi,omitempty"`
	Concurrency int                  `json:"concurrency,omitempty"`
}

// Start starts a new compose job.
func (h *ComposeHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req ComposeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	if req.SourceDir == "" {
		respondError(w, http.StatusBadRequest, "source_dir is required")
		return
	}
	if req.Output == "" {
		respondError(w, http.StatusBadRequest, "output is required")
		return
	}

	lt := layout.LayoutType(req.Layout)
	if req.Layout == "" {
		lt = layout.FourPerPage
	}
	if !lt.Valid() {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown layout: %q", req.Layout))
		return
	}

	paperName := req.Paper
	if paperName == "" {
		paperName = "A4"
	}
	paper, ok := layout.PaperByName(paperName)
	if !ok {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown paper size: %q", paperName))
		return
	}

	margins := layout.MarginsInstantCamera
	if req.Margins != nil {
		margins = *req.Margins
	}

	dpi := req.DPI
	if dpi <= 0 {
		dpi = h.config.Output.DPI
	}
	concurrency := req.Concurrency
	if concurrency <= 0 {
		concurrency = h.config.Output.Concurrency
	}

	photos, err := source.ListPhotos(req.SourceDir)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := compose.Options{
		Layout:      lt,
		Paper:       paper,
		Margins:     margins,
		Mode:        layout.IncompletePageMode(req.Mode),
		DPI:         dpi,
		JPEGQuality: h.config.Output.JPEGQuality,
		Concurrency: concurrency,
	}

	ctx, cancel := context.WithCancel(context.Background())
	job := h.jobManager.Create(cancel)
	opts.OnProgress = job.UpdateProgress

	go h.runComposeJob(ctx, job, photos, req.Output, opts)

	respondJSON(w, http.StatusAccepted, map[string]string{
		"job_id": job.ID,
		"status": string(JobStatusPending),
	})
}

// runComposeJob runs the compose pipeline in the background.
func (h *ComposeHandler) runComposeJob(ctx context.Context, job *ComposeJob, photos []layout.Photo, output string, opts compose.Options) {
	defer job.Cancel()

	h.jobManager.MarkRunning(job)
	log.Info().
		Str("job_id", job.ID).
		Int("photos", len(photos)).
		Str("layout", string(opts.Layout)).
		Str("output", output).
		Msg("compose job started")

	composer := compose.New(&render.FileDecoder{})
	report, err := composer.Compose(ctx, photos, output, opts)
	job.Finish(report, err)

	if err != nil {
		log.Error().Err(err).Str("job_id", job.ID).Msg("compose job failed")
		return
	}
	log.Info().
		Str("job_id", job.ID).
		Int("pages", report.PageCount).
		Int("skipped", report.Skipped).
		Msg("compose job completed")
}

// Status returns the status of a compose job.
func (h *ComposeHandler) Status(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobId")
	if jobID == "" {
		respondError(w, http.StatusBadRequest, "missing job ID")
		return
	}

	job := h.jobManager.Get(jobID)
	if job == nil {
		respondError(w, http.StatusNotFound, "job not found")
		return
	}

	respondJSON(w, http.StatusOK, job.Snapshot())
}

// Cancel cancels a running compose job.
func (h *ComposeHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobId")
	if jobID == "" {
		respondError(w, http.StatusBadRequest, "missing job ID")
		return
	}

	job := h.jobManager.Get(jobID)
	if job == nil {
		respondError(w, http.StatusNotFound, "job not found")
		return
	}

	job.Cancel()
	respondJSON(w, http.StatusOK, job.Snapshot())
}
