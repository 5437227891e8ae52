package handler

import (
	"encoding/json"
	"net/http"

	"portfolio-analyzer/internal/model"
	"portfolio-analyzer/internal/service"
)

// TestsHandler handles test planning and eligibility endpoints
type TestsHandler struct {
	testPlanSvc *service.TestPlanService
}

// NewTestsHandler creates a new tests handler
func NewTestsHandler(testPlanSvc *service.TestPlanService) *TestsHandler {
	return &TestsHandler{testPlanSvc: testPlanSvc}
}

// Plan handles POST /tests/plan
func (h *TestsHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req model.TestPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := h.testPlanSvc.PlanTests(&req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// CheckEligibility handles POST /eligibility/check
func (h *TestsHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	var req model.EligibilityCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.testPlanSvc.CheckEligibility(&req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
