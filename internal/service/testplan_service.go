package service

import (
	"fmt"
	"strings"

	"portfolio-analyzer/internal/model"

	"go.uber.org/zap"
)

// schoolPolicy captures the admissions facts the rule engine needs per
// school. Unknown schools fall back to defaultPolicy.
type schoolPolicy struct {
	TestPolicy string // "required", "optional", "blind"
	Mid50      [2]int // SAT mid-50% admitted range
	GPAFloor   float64
	Selective  bool
}

var schoolPolicies = map[string]schoolPolicy{
	"mit":           {TestPolicy: "required", Mid50: [2]int{1520, 1580}, GPAFloor: 3.8, Selective: true},
	"harvard":       {TestPolicy: "required", Mid50: [2]int{1490, 1580}, GPAFloor: 3.8, Selective: true},
	"stanford":      {TestPolicy: "optional", Mid50: [2]int{1500, 1570}, GPAFloor: 3.8, Selective: true},
	"princeton":     {TestPolicy: "optional", Mid50: [2]int{1490, 1580}, GPAFloor: 3.8, Selective: true},
	"uc berkeley":   {TestPolicy: "blind", GPAFloor: 3.4, Selective: true},
	"ucla":          {TestPolicy: "blind", GPAFloor: 3.4, Selective: true},
	"uc san diego":  {TestPolicy: "blind", GPAFloor: 3.2, Selective: true},
	"georgia tech":  {TestPolicy: "required", Mid50: [2]int{1370, 1530}, GPAFloor: 3.5, Selective: true},
	"purdue":        {TestPolicy: "required", Mid50: [2]int{1210, 1450}, GPAFloor: 3.2},
	"ohio state":    {TestPolicy: "optional", Mid50: [2]int{1260, 1440}, GPAFloor: 3.0},
	"penn state":    {TestPolicy: "optional", Mid50: [2]int{1160, 1370}, GPAFloor: 3.0},
	"arizona state": {TestPolicy: "optional", Mid50: [2]int{1130, 1360}, GPAFloor: 2.5},
}

var defaultPolicy = schoolPolicy{TestPolicy: "optional", Mid50: [2]int{1150, 1350}, GPAFloor: 2.5}

func lookupSchool(name string) schoolPolicy {
	if p, ok := schoolPolicies[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return defaultPolicy
}

func selective(name string) bool {
	return lookupSchool(name).Selective
}

// analyzeTestsForSchool decides the testing strategy for one school from
// its policy and the student's current score.
func analyzeTestsForSchool(school string, profile *model.StudentProfile) model.TestAnalysis {
	policy := lookupSchool(school)

	analysis := model.TestAnalysis{
		SchoolName: school,
		TestPolicy: policy.TestPolicy,
		Tasks:      []model.PortfolioTask{},
	}

	if policy.TestPolicy == "blind" {
		analysis.Recommendation = "not_required"
		analysis.Rationale = "This school does not consider standardized test scores."
		return analysis
	}

	analysis.TestType = "sat"
	analysis.Mid50Scores = []int{policy.Mid50[0], policy.Mid50[1]}

	var score int
	if profile != nil && profile.Tests != nil && profile.Tests.SAT != nil {
		score = profile.Tests.SAT.Score
	}

	if score == 0 {
		if policy.TestPolicy == "required" {
			analysis.Recommendation = "take_test"
			analysis.Rationale = "Testing is required and no score is on file."
		} else {
			analysis.Recommendation = "consider_test"
			analysis.Rationale = "Testing is optional; a strong score would add evidence but is not required."
		}
		analysis.Tasks = append(analysis.Tasks, satPrepTask())
		return analysis
	}

	analysis.CurrentScore = score
	switch {
	case score >= policy.Mid50[1]:
		analysis.Competitiveness = "likely"
		analysis.Recommendation = "keep_score"
		analysis.Rationale = fmt.Sprintf("Score %d is at or above the admitted mid-50%% ceiling (%d).", score, policy.Mid50[1])
	case score < policy.Mid50[0]:
		analysis.Competitiveness = "reach"
		analysis.Recommendation = "retake"
		analysis.Rationale = fmt.Sprintf("Score %d is below the admitted mid-50%% floor (%d).", score, policy.Mid50[0])
		analysis.Tasks = append(analysis.Tasks, satPrepTask())
	default:
		analysis.Competitiveness = "target"
		analysis.Recommendation = "consider_retake"
		analysis.Rationale = fmt.Sprintf("Score %d is inside the admitted mid-50%% range (%d-%d).", score, policy.Mid50[0], policy.Mid50[1])
	}
	return analysis
}

func satPrepTask() model.PortfolioTask {
	return model.PortfolioTask{
		Title:            "Structured SAT preparation block",
		Track:            "testing",
		EstimatedHours:   60,
		DefinitionOfDone: []string{"Diagnostic completed", "Two full practice tests", "Target score reached on practice"},
		MicroCoaching:    "Practice tests under timed conditions matter more than content drills.",
		QuickLinks:       []string{"https://www.khanacademy.org/sat"},
	}
}

// TestPlanService builds test prep plans and runs eligibility checks
type TestPlanService struct {
	logger *zap.Logger
}

// NewTestPlanService creates a new test plan service
func NewTestPlanService(logger *zap.Logger) *TestPlanService {
	return &TestPlanService{logger: logger}
}

// PlanTests produces a per-school testing verdict and a phased prep plan
func (s *TestPlanService) PlanTests(req *model.TestPlanRequest) (*model.TestPlanResponse, error) {
	if req.StudentProfile == nil {
		return nil, model.NewValidationError("student_profile is required")
	}
	if len(req.Schools) == 0 {
		return nil, model.NewValidationError("at least one school is required")
	}

	recommendedTest := "sat"
	tests := req.StudentProfile.Tests
	if tests != nil && tests.ACT != nil && tests.SAT == nil {
		recommendedTest = "act"
	}

	schools := make([]model.SchoolTestRecommendation, 0, len(req.Schools))
	needsPrep := false
	for _, school := range req.Schools {
		analysis := analyzeTestsForSchool(school, req.StudentProfile)
		if analysis.Recommendation == "retake" || analysis.Recommendation == "take_test" {
			needsPrep = true
		}
		schools = append(schools, model.SchoolTestRecommendation{
			SchoolName:     school,
			TestPolicy:     analysis.TestPolicy,
			Recommendation: analysis.Recommendation,
			Rationale:      analysis.Rationale,
		})
	}

	resp := &model.TestPlanResponse{
		RecommendedTest: recommendedTest,
		Schools:         schools,
		PrepPhases:      []model.PrepPhase{},
	}

	if needsPrep {
		weeklyHours := req.WeeklyHours
		if weeklyHours == 0 {
			weeklyHours = req.StudentProfile.WeeklyHoursCap
		}
		if weeklyHours == 0 {
			weeklyHours = 6
		}
		if weeklyHours > 10 {
			weeklyHours = 10 // test prep should not crowd out the portfolio
		}

		resp.PrepPhases = []model.PrepPhase{
			{Name: "Diagnostic", Weeks: 1, HoursPerWeek: weeklyHours, Focus: []string{"Full-length timed diagnostic", "Section-level error analysis"}},
			{Name: "Content review", Weeks: 6, HoursPerWeek: weeklyHours, Focus: []string{"Weakest sections first", "Targeted drills"}},
			{Name: "Practice tests", Weeks: 4, HoursPerWeek: weeklyHours, Focus: []string{"Weekly full-length timed tests", "Review every miss"}},
		}
		for _, phase := range resp.PrepPhases {
			resp.TotalPrepHours += float64(phase.Weeks) * phase.HoursPerWeek
		}
	}

	s.logger.Info("test plan built",
		zap.String("recommended_test", recommendedTest),
		zap.Int("schools", len(schools)),
		zap.Bool("needs_prep", needsPrep))

	return resp, nil
}

// CheckEligibility verifies the profile against each school's baseline
// requirements. Rule evaluation only; no AI involved.
func (s *TestPlanService) CheckEligibility(req *model.EligibilityCheckRequest) (*model.EligibilityCheckResponse, error) {
	if req.StudentProfile == nil {
		return nil, model.NewValidationError("student_profile is required")
	}
	if len(req.Schools) == 0 {
		return nil, model.NewValidationError("at least one school is required")
	}

	profile := req.StudentProfile
	schools := make([]model.SchoolEligibility, 0, len(req.Schools))

	for _, school := range req.Schools {
		policy := lookupSchool(school)
		missing := []string{}

		if profile.GPAUnweighted > 0 && profile.GPAUnweighted < policy.GPAFloor {
			missing = append(missing, fmt.Sprintf("GPA %.2f is below the typical admitted floor of %.1f", profile.GPAUnweighted, policy.GPAFloor))
		}
		if profile.GPAUnweighted == 0 {
			missing = append(missing, "No unweighted GPA on file")
		}
		if policy.TestPolicy == "required" {
			hasScore := profile.Tests != nil && ((profile.Tests.SAT != nil && profile.Tests.SAT.Score > 0) || (profile.Tests.ACT != nil && profile.Tests.ACT.Score > 0))
			if !hasScore {
				missing = append(missing, "Standardized test score required but none on file")
			}
		}

		eligibility := model.SchoolEligibility{
			SchoolName:          school,
			Eligible:            len(missing) == 0,
			MissingRequirements: missing,
		}
		if policy.Selective {
			eligibility.Notes = "Highly selective: meeting baselines does not imply likely admission."
		}
		schools = append(schools, eligibility)
	}

	return &model.EligibilityCheckResponse{Schools: schools}, nil
}
