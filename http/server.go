package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
	"github.com/Bhaskar-Gayen/Shopify-store-analyzer/prometheus"
)

// ShutdownTimeout is the time to give for graceful server shutdown.
const ShutdownTimeout = 5 * time.Second

// Server is the public API layer. It validates requests, invokes the
// extraction pipeline, optionally archives reports, and maps outcomes to
// HTTP status codes.
type Server struct {
	server *http.Server
	router chi.Router

	Insights storeinsights.InsightsService
	Analyses storeinsights.AnalysisService
	Metrics  *prometheus.Metrics
	Logger   *slog.Logger

	Addr string
}

// NewServer creates a Server with its routes configured.
func NewServer() *Server {
	s := &Server{
		router: chi.NewRouter(),
		Logger: slog.Default(),
	}

	s.router.Use(middleware.Recoverer)

	s.router.Post("/analyze-store", s.handleAnalyzeStore)
	s.router.Get("/analyses", s.handleListAnalyses)
	s.router.Get("/analyses/{id}", s.handleGetAnalysis)
	s.router.Delete("/analyses/{id}", s.handleDeleteAnalysis)
	s.router.Get("/health", s.handleHealth)

	return s
}

// Open begins listening on the configured address. It blocks until the
// server stops.
func (s *Server) Open() error {
	handler := http.Handler(s.router)
	if s.Metrics != nil {
		mux := chi.NewRouter()
		mux.Handle("/metrics", s.Metrics.Handler())
		mux.Mount("/", s.Metrics.Middleware(s.router))
		handler = mux
	}

	s.server = &http.Server{Addr: s.Addr, Handler: handler}
	s.Logger.Info("api server listening", "addr", s.Addr)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// analyzeStoreRequest is the body of POST /analyze-store.
type analyzeStoreRequest struct {
	WebsiteURL string `json:"website_url"`
}

// successResponse is the envelope for successful analyses.
type successResponse struct {
	Success    bool                          `json:"success"`
	Data       *storeinsights.InsightsReport `json:"data"`
	AnalysisID string                        `json:"analysisId,omitempty"`
	Message    string                        `json:"message"`
}

// errorResponse is the envelope for failures.
type errorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleAnalyzeStore(w http.ResponseWriter, r *http.Request) {
	var req analyzeStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, storeinsights.Errorf(storeinsights.EINVALID, "invalid request body: %v", err))
		return
	}

	// Reject malformed URLs before the pipeline is invoked.
	if _, err := storeinsights.NewTarget(req.WebsiteURL); err != nil {
		s.writeError(w, err)
		return
	}

	begin := time.Now()
	report, err := s.Insights.AnalyzeStore(r.Context(), req.WebsiteURL)
	if s.Metrics != nil {
		s.Metrics.ObserveAnalysis(report, time.Since(begin), err)
	}
	if err != nil {
		s.Logger.Error("analysis failed", "url", req.WebsiteURL, "err", err)
		s.writeError(w, err)
		return
	}

	// A fatal detection failure maps to a not-found style response; every
	// other outcome is a normal success carrying the report's error list.
	if !report.ExtractionSuccess {
		s.writeError(w, storeinsights.Errorf(storeinsights.ENOTFOUND,
			"%s does not appear to be a Shopify storefront", req.WebsiteURL))
		return
	}

	resp := successResponse{
		Success: true,
		Data:    report,
		Message: "Store insights extracted successfully",
	}

	if s.Analyses != nil && r.URL.Query().Get("save") != "false" {
		analysis := &storeinsights.Analysis{
			Target:        report.Target,
			BrandName:     report.BrandName,
			TotalProducts: report.TotalProducts,
			ContentHash:   report.ContentHash,
			Report:        report,
		}
		if err := s.Analyses.SaveAnalysis(r.Context(), analysis); err != nil {
			// Archiving failure never fails the request.
			s.Logger.Error("failed to archive analysis", "target", report.Target, "err", err)
		} else {
			resp.AnalysisID = analysis.ID
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.Analyses == nil {
		s.writeError(w, storeinsights.Errorf(storeinsights.EUNAVAILABLE, "analysis archive not configured"))
		return
	}

	analysis, err := s.Analyses.FindAnalysisByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.Analyses == nil {
		s.writeError(w, storeinsights.Errorf(storeinsights.EUNAVAILABLE, "analysis archive not configured"))
		return
	}

	filter := storeinsights.AnalysisFilter{Limit: 20}
	if target := r.URL.Query().Get("target"); target != "" {
		filter.Target = &target
	}

	analyses, err := s.Analyses.FindAnalyses(r.Context(), filter)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, analyses)
}

func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.Analyses == nil {
		s.writeError(w, storeinsights.Errorf(storeinsights.EUNAVAILABLE, "analysis archive not configured"))
		return
	}

	if err := s.Analyses.DeleteAnalysis(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON serializes v with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("failed to encode response", "err", err)
	}
}

// writeError maps a domain error to an HTTP response. Internal errors are
// reported opaquely.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := storeinsights.ErrorCode(err)
	s.writeJSON(w, statusFromCode(code), errorResponse{
		Error:     code,
		Message:   storeinsights.ErrorMessage(err),
		Timestamp: time.Now().UTC(),
	})
}

// statusFromCode translates domain error codes to HTTP status codes.
func statusFromCode(code string) int {
	switch code {
	case storeinsights.EINVALID:
		return http.StatusBadRequest
	case storeinsights.ENOTFOUND:
		return http.StatusNotFound
	case storeinsights.ECONFLICT:
		return http.StatusConflict
	case storeinsights.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
