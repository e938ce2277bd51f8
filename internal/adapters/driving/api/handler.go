package api

import (
	"net/http"

	"github.com/custodia-labs/distil/internal/adapters/driving/api/httputils"
	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driving"
	"github.com/custodia-labs/distil/internal/logger"
)

// Handler serves the analysis endpoints.
type Handler struct {
	analysis driving.AnalysisService
	defaults domain.AnalyzeOptions
	version  string
}

// NewHandler creates a handler. Counts missing from a request fall back
// to defaults.
func NewHandler(analysis driving.AnalysisService, defaults domain.AnalyzeOptions, version string) *Handler {
	return &Handler{
		analysis: analysis,
		defaults: defaults,
		version:  version,
	}
}

// HandleKeywords extracts keywords.
func (h *Handler) HandleKeywords(w http.ResponseWriter, r *http.Request) {
	reqID := RequestID(r.Context())

	var req KeywordsRequest
	if err := httputils.DecodeJSON(r, &req); err != nil {
		h.fail(w, reqID, err)
		return
	}
	text, err := httputils.TextField(req.Text)
	if err != nil {
		h.fail(w, reqID, err)
		return
	}

	terms, err := h.analysis.Keywords(r.Context(), text, valueOr(req.Count, h.defaults.KeywordCount))
	if err != nil {
		h.fail(w, reqID, err)
		return
	}
	if terms == nil {
		terms = []domain.ScoredTerm{}
	}

	h.respond(w, reqID, KeywordsResponse{Keywords: terms})
}

// HandleSummarize summarizes text.
func (h *Handler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	reqID := RequestID(r.Context())

	var req SummarizeRequest
	if err := httputils.DecodeJSON(r, &req); err != nil {
		h.fail(w, reqID, err)
		return
	}
	text, err := httputils.TextField(req.Text)
	if err != nil {
		h.fail(w, reqID, err)
		return
	}

	summary, err := h.analysis.Summarize(r.Context(), text, valueOr(req.Sentences, h.defaults.SummarySentences))
	if err != nil {
		h.fail(w, reqID, err)
		return
	}

	h.respond(w, reqID, summary)
}

// HandleStats reports text statistics.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	reqID := RequestID(r.Context())

	var req TextRequest
	if err := httputils.DecodeJSON(r, &req); err != nil {
		h.fail(w, reqID, err)
		return
	}
	text, err := httputils.TextField(req.Text)
	if err != nil {
		h.fail(w, reqID, err)
		return
	}

	stats, err := h.analysis.Stats(r.Context(), text)
	if err != nil {
		h.fail(w, reqID, err)
		return
	}

	h.respond(w, reqID, stats)
}

// HandleAnalyze runs every analysis in one request.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqID := RequestID(r.Context())

	var req AnalyzeRequest
	if err := httputils.DecodeJSON(r, &req); err != nil {
		h.fail(w, reqID, err)
		return
	}
	text, err := httputils.TextField(req.Text)
	if err != nil {
		h.fail(w, reqID, err)
		return
	}

	opts := domain.AnalyzeOptions{
		KeywordCount:     valueOr(req.Count, h.defaults.KeywordCount),
		SummarySentences: valueOr(req.Sentences, h.defaults.SummarySentences),
	}
	report, err := h.analysis.Analyze(r.Context(), text, opts)
	if err != nil {
		h.fail(w, reqID, err)
		return
	}
	if report.Keywords == nil {
		report.Keywords = []domain.ScoredTerm{}
	}

	h.respond(w, reqID, report)
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httputils.JSONResponse(w, http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}

func (h *Handler) respond(w http.ResponseWriter, reqID string, data any) {
	if err := httputils.JSONResponse(w, http.StatusOK, data); err != nil {
		logger.Warn("[%s] Error sending response: %v", reqID, err)
	}
}

func (h *Handler) fail(w http.ResponseWriter, reqID string, err error) {
	logger.Debug("[%s] Request failed: %v", reqID, err)
	httputils.HandleError(w, err)
}

// valueOr falls back only for a missing field; an explicit zero is
// passed on and rejected by validation.
func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
