package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-analyzer/internal/config"
	"portfolio-analyzer/internal/model"
	"portfolio-analyzer/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler() *EssayHandler {
	// No API key: the analyzer runs in degraded mode with local metrics
	// plus placeholder AI fields, which is all the handler tests need.
	cfg := &config.AIConfig{
		BaseURL:   "http://localhost:0",
		TimeoutMS: 1000,
	}
	return NewEssayHandler(service.NewEssayAnalyzerService(cfg, zap.NewNop()))
}

func newTestRouter(h *EssayHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/essays/analyze-text", h.AnalyzeText).Methods(http.MethodPost)
	r.HandleFunc("/essays/{essayId}/analyze", h.Analyze).Methods(http.MethodPost)
	return r
}

func TestAnalyzeText_InvalidBody(t *testing.T) {
	r := newTestRouter(newTestHandler())

	req := httptest.NewRequest(http.MethodPost, "/essays/analyze-text", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeText_EmptyEssay(t *testing.T) {
	r := newTestRouter(newTestHandler())

	body, _ := json.Marshal(model.AnalyzeEssayRequest{EssayText: "   "})
	req := httptest.NewRequest(http.MethodPost, "/essays/analyze-text", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "essay_text")
}

func TestAnalyzeText_Success(t *testing.T) {
	r := newTestRouter(newTestHandler())

	body, _ := json.Marshal(model.AnalyzeEssayRequest{
		EssayText: "I grew up fixing bicycles with my grandfather every summer.",
	})
	req := httptest.NewRequest(http.MethodPost, "/essays/analyze-text", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var analysis model.EssayAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, "unknown", analysis.EssayID)
	assert.Equal(t, 10, analysis.WordCount)
	assert.NotEmpty(t, analysis.Suggestions)
}

func TestAnalyze_PathEssayIDWins(t *testing.T) {
	r := newTestRouter(newTestHandler())

	body, _ := json.Marshal(model.AnalyzeEssayRequest{
		EssayText: "I grew up fixing bicycles with my grandfather every summer.",
		EssayID:   "from-body",
	})
	req := httptest.NewRequest(http.MethodPost, "/essays/essay-42/analyze", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var analysis model.EssayAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, "essay-42", analysis.EssayID)
}
