package service

import (
	"context"
	"fmt"

	"portfolio-analyzer/internal/model"
	"portfolio-analyzer/internal/repository"

	"github.com/google/uuid"
)

// ProfileService handles student profile and activity CRUD
type ProfileService struct {
	repo repository.ProfileRepo
}

// NewProfileService creates a new profile service
func NewProfileService(repo repository.ProfileRepo) *ProfileService {
	return &ProfileService{repo: repo}
}

// GetProfile returns the profile (nil when absent) and all activities
func (s *ProfileService) GetProfile(ctx context.Context, studentID string) (*model.StudentProfile, []model.Activity, error) {
	profile, err := s.repo.GetProfile(ctx, studentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get profile: %w", err)
	}
	activities, err := s.repo.GetActivities(ctx, studentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get activities: %w", err)
	}
	return profile, activities, nil
}

// UpdateProfile creates or replaces the student's profile
func (s *ProfileService) UpdateProfile(ctx context.Context, studentID string, profile *model.StudentProfile) error {
	profile.StudentID = studentID
	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetActivities returns all portfolio activities for a student
func (s *ProfileService) GetActivities(ctx context.Context, studentID string) ([]model.Activity, error) {
	activities, err := s.repo.GetActivities(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}
	return activities, nil
}

// AddActivity stores a new activity, assigning an id when absent
func (s *ProfileService) AddActivity(ctx context.Context, studentID string, activity *model.Activity) (*model.Activity, error) {
	if activity.Title == "" {
		return nil, model.NewValidationError("activity title must not be empty")
	}
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if err := s.repo.AddActivity(ctx, studentID, activity); err != nil {
		return nil, fmt.Errorf("failed to add activity: %w", err)
	}
	return activity, nil
}

// UpdateActivity replaces an existing activity; false when not found
func (s *ProfileService) UpdateActivity(ctx context.Context, studentID, activityID string, activity *model.Activity) (bool, error) {
	if activity.Title == "" {
		return false, model.NewValidationError("activity title must not be empty")
	}
	activity.ID = activityID
	found, err := s.repo.UpdateActivity(ctx, studentID, activity)
	if err != nil {
		return false, fmt.Errorf("failed to update activity: %w", err)
	}
	return found, nil
}

// DeleteActivity removes an activity; false when not found
func (s *ProfileService) DeleteActivity(ctx context.Context, studentID, activityID string) (bool, error) {
	found, err := s.repo.DeleteActivity(ctx, studentID, activityID)
	if err != nil {
		return false, fmt.Errorf("failed to delete activity: %w", err)
	}
	return found, nil
}
