package handler

import (
	"encoding/json"
	"net/http"

	"portfolio-analyzer/internal/cache"
	"portfolio-analyzer/internal/model"
	"portfolio-analyzer/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// PortfolioHandler handles portfolio analysis endpoints
type PortfolioHandler struct {
	portfolioSvc  *service.PortfolioService
	analysisCache cache.AnalysisCache
	logger        *zap.Logger
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(portfolioSvc *service.PortfolioService, analysisCache cache.AnalysisCache, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioSvc:  portfolioSvc,
		analysisCache: analysisCache,
		logger:        logger,
	}
}

// Analyze handles POST /portfolio/analyze
func (h *PortfolioHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req model.PortfolioAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	analysis, err := h.portfolioSvc.Analyze(&req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if req.StudentProfile != nil && req.StudentProfile.StudentID != "" {
		if err := h.analysisCache.SetLatest(r.Context(), req.StudentProfile.StudentID, analysis); err != nil {
			h.logger.Warn("failed to cache portfolio analysis", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, analysis)
}

// Latest handles GET /portfolio/analyze/latest/{studentId}
func (h *PortfolioHandler) Latest(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["studentId"]

	analysis, err := h.analysisCache.GetLatest(r.Context(), studentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if analysis == nil {
		writeError(w, http.StatusNotFound, "no cached analysis for student")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// RegenerateTasks handles POST /portfolio/regenerate-tasks
func (h *PortfolioHandler) RegenerateTasks(w http.ResponseWriter, r *http.Request) {
	var req model.RegenerateTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.portfolioSvc.RegenerateTasksForSection(&req.OriginalRequest, req.SectionType, req.SectionIdentifier, req.ExcludeTaskTitles)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
