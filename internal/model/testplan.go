package model

// TestPlanRequest asks for a standardized-test preparation plan
type TestPlanRequest struct {
	StudentProfile *StudentProfile   `json:"student_profile"`
	Schools        []string          `json:"schools"`
	Deadlines      map[string]string `json:"deadlines,omitempty"`
	WeeklyHours    float64           `json:"weekly_hours,omitempty"`
}

// PrepPhase is one block of a test preparation plan
type PrepPhase struct {
	Name         string   `json:"name"`
	Weeks        int      `json:"weeks"`
	HoursPerWeek float64  `json:"hours_per_week"`
	Focus        []string `json:"focus"`
}

// SchoolTestRecommendation is the per-school testing verdict
type SchoolTestRecommendation struct {
	SchoolName     string `json:"school_name"`
	TestPolicy     string `json:"test_policy"`
	Recommendation string `json:"recommendation"` // "keep_score", "retake", "take_test", "not_required"
	Rationale      string `json:"rationale"`
}

// TestPlanResponse is the full test preparation plan
type TestPlanResponse struct {
	RecommendedTest string                     `json:"recommended_test"` // "sat" or "act"
	Schools         []SchoolTestRecommendation `json:"schools"`
	PrepPhases      []PrepPhase                `json:"prep_phases"`
	TotalPrepHours  float64                    `json:"total_prep_hours"`
}

// EligibilityCheckRequest asks whether a student meets school requirements
type EligibilityCheckRequest struct {
	StudentProfile *StudentProfile `json:"student_profile"`
	Schools        []string        `json:"schools"`
}

// SchoolEligibility is the per-school eligibility verdict
type SchoolEligibility struct {
	SchoolName          string   `json:"school_name"`
	Eligible            bool     `json:"eligible"`
	MissingRequirements []string `json:"missing_requirements"`
	Notes               string   `json:"notes,omitempty"`
}

// EligibilityCheckResponse is the full eligibility report
type EligibilityCheckResponse struct {
	Schools []SchoolEligibility `json:"schools"`
}
