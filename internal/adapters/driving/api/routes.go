package api

import "net/http"

// RegisterRoutes adds the API endpoints to mux.
func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", handler.HandleHealth)
	mux.HandleFunc("POST /keywords", handler.HandleKeywords)
	mux.HandleFunc("POST /summarize", handler.HandleSummarize)
	mux.HandleFunc("POST /stats", handler.HandleStats)
	mux.HandleFunc("POST /analyze", handler.HandleAnalyze)
}
