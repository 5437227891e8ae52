package handler

import (
	"encoding/json"
	"net/http"

	"portfolio-analyzer/internal/model"
	"portfolio-analyzer/internal/service"

	"github.com/gorilla/mux"
)

// ProfileHandler handles student profile and activity CRUD endpoints
type ProfileHandler struct {
	profileSvc *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileSvc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// Get handles GET /profile/{studentId}
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["studentId"]

	profile, activities, err := h.profileSvc.GetProfile(r.Context(), studentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil && len(activities) == 0 {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profile":    profile,
		"activities": activities,
	})
}

// Update handles POST /profile/{studentId}
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["studentId"]

	var profile model.StudentProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.profileSvc.UpdateProfile(r.Context(), studentID, &profile); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Profile updated",
		"profile": profile,
	})
}

// ListActivities handles GET /profile/{studentId}/activities
func (h *ProfileHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["studentId"]

	activities, err := h.profileSvc.GetActivities(r.Context(), studentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, activities)
}

// AddActivity handles POST /profile/{studentId}/activities
func (h *ProfileHandler) AddActivity(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["studentId"]

	var activity model.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.profileSvc.AddActivity(r.Context(), studentID, &activity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateActivity handles PUT /profile/{studentId}/activities/{activityId}
func (h *ProfileHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	studentID := vars["studentId"]
	activityID := vars["activityId"]

	var activity model.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	found, err := h.profileSvc.UpdateActivity(r.Context(), studentID, activityID, &activity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "activity not found")
		return
	}

	writeJSON(w, http.StatusOK, activity)
}

// DeleteActivity handles DELETE /profile/{studentId}/activities/{activityId}
func (h *ProfileHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	studentID := vars["studentId"]
	activityID := vars["activityId"]

	found, err := h.profileSvc.DeleteActivity(r.Context(), studentID, activityID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "activity not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Activity deleted"})
}
