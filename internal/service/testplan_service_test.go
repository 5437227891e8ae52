package service

import (
	"testing"

	"portfolio-analyzer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func profileWithSAT(score int) *model.StudentProfile {
	return &model.StudentProfile{
		StudentID:     "student-1",
		CurrentGrade:  "11",
		GPAUnweighted: 3.7,
		Tests: &model.StudentTests{
			SAT: &model.TestScore{Score: score, Date: "2026-03-14"},
		},
	}
}

func TestPlanTests_Validation(t *testing.T) {
	svc := NewTestPlanService(zap.NewNop())

	_, err := svc.PlanTests(&model.TestPlanRequest{Schools: []string{"MIT"}})
	var validationErr *model.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.PlanTests(&model.TestPlanRequest{StudentProfile: profileWithSAT(1400)})
	assert.ErrorAs(t, err, &validationErr)
}

func TestPlanTests_RetakeBelowRange(t *testing.T) {
	svc := NewTestPlanService(zap.NewNop())

	plan, err := svc.PlanTests(&model.TestPlanRequest{
		StudentProfile: profileWithSAT(1300),
		Schools:        []string{"MIT"},
	})
	require.NoError(t, err)

	require.Len(t, plan.Schools, 1)
	assert.Equal(t, "retake", plan.Schools[0].Recommendation)
	assert.NotEmpty(t, plan.PrepPhases)
	assert.Greater(t, plan.TotalPrepHours, 0.0)
}

func TestPlanTests_KeepScoreAtCeiling(t *testing.T) {
	svc := NewTestPlanService(zap.NewNop())

	plan, err := svc.PlanTests(&model.TestPlanRequest{
		StudentProfile: profileWithSAT(1580),
		Schools:        []string{"MIT"},
	})
	require.NoError(t, err)

	assert.Equal(t, "keep_score", plan.Schools[0].Recommendation)
	assert.Empty(t, plan.PrepPhases)
	assert.Equal(t, 0.0, plan.TotalPrepHours)
}

func TestPlanTests_BlindSchool(t *testing.T) {
	svc := NewTestPlanService(zap.NewNop())

	plan, err := svc.PlanTests(&model.TestPlanRequest{
		StudentProfile: profileWithSAT(1200),
		Schools:        []string{"UC Berkeley"},
	})
	require.NoError(t, err)

	assert.Equal(t, "not_required", plan.Schools[0].Recommendation)
	assert.Equal(t, "blind", plan.Schools[0].TestPolicy)
}

func TestPlanTests_RecommendsACTWhenOnlyACTOnFile(t *testing.T) {
	svc := NewTestPlanService(zap.NewNop())

	plan, err := svc.PlanTests(&model.TestPlanRequest{
		StudentProfile: &model.StudentProfile{
			StudentID: "student-2",
			Tests:     &model.StudentTests{ACT: &model.TestScore{Score: 32}},
		},
		Schools: []string{"Purdue"},
	})
	require.NoError(t, err)

	assert.Equal(t, "act", plan.RecommendedTest)
}

func TestCheckEligibility_MissingRequirements(t *testing.T) {
	svc := NewTestPlanService(zap.NewNop())

	result, err := svc.CheckEligibility(&model.EligibilityCheckRequest{
		StudentProfile: &model.StudentProfile{
			StudentID:     "student-3",
			GPAUnweighted: 3.0, // below MIT's floor, no test score
		},
		Schools: []string{"MIT"},
	})
	require.NoError(t, err)

	require.Len(t, result.Schools, 1)
	school := result.Schools[0]
	assert.False(t, school.Eligible)
	assert.Len(t, school.MissingRequirements, 2)
	assert.NotEmpty(t, school.Notes)
}

func TestCheckEligibility_EligibleStudent(t *testing.T) {
	svc := NewTestPlanService(zap.NewNop())

	result, err := svc.CheckEligibility(&model.EligibilityCheckRequest{
		StudentProfile: profileWithSAT(1450),
		Schools:        []string{"Ohio State"},
	})
	require.NoError(t, err)

	assert.True(t, result.Schools[0].Eligible)
	assert.Empty(t, result.Schools[0].MissingRequirements)
}

func TestAnalyzeTestsForSchool_UnknownSchoolUsesDefaults(t *testing.T) {
	analysis := analyzeTestsForSchool("Some Regional College", profileWithSAT(1400))

	assert.Equal(t, "optional", analysis.TestPolicy)
	assert.Equal(t, "keep_score", analysis.Recommendation)
}
