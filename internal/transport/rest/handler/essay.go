package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio-analyzer/internal/model"
	"portfolio-analyzer/internal/service"

	"github.com/gorilla/mux"
)

// EssayHandler handles essay analysis endpoints
type EssayHandler struct {
	analyzer *service.EssayAnalyzerService
}

// NewEssayHandler creates a new essay handler
func NewEssayHandler(analyzer *service.EssayAnalyzerService) *EssayHandler {
	return &EssayHandler{analyzer: analyzer}
}

// AnalyzeText handles POST /essays/analyze-text (draft analysis)
func (h *EssayHandler) AnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeEssayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	analysis, err := h.analyzer.AnalyzeEssay(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// Analyze handles POST /essays/{essayId}/analyze
func (h *EssayHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	essayID := mux.Vars(r)["essayId"]

	var req model.AnalyzeEssayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.EssayID = essayID

	analysis, err := h.analyzer.AnalyzeEssay(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps validation errors to 422 and everything else to 500
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusUnprocessableEntity, validationErr.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
