package model

import "time"

// Award is a recognition attached to an activity
type Award struct {
	Level string `json:"level" bson:"level"` // "school", "regional", "national", "international"
}

// Activity is a single piece of portfolio evidence (club, project, award, job)
type Activity struct {
	ID             string   `json:"id" bson:"id"`
	Title          string   `json:"title" bson:"title"`
	Lens           string   `json:"lens" bson:"lens"` // which lens this evidence supports
	Type           string   `json:"type" bson:"type"`
	AreaOfActivity string   `json:"area_of_activity,omitempty" bson:"areaOfActivity,omitempty"`
	RoleLevel      string   `json:"role_level" bson:"roleLevel"` // "member", "contributor", "leader", "founder"
	StartDate      string   `json:"start_date,omitempty" bson:"startDate,omitempty"`
	EndDate        string   `json:"end_date,omitempty" bson:"endDate,omitempty"`
	HoursPerWeek   float64  `json:"hours_per_week,omitempty" bson:"hoursPerWeek,omitempty"`
	HoursTotal     float64  `json:"hours_total,omitempty" bson:"hoursTotal,omitempty"`
	TeamSize       int      `json:"team_size,omitempty" bson:"teamSize,omitempty"`
	Awards         []Award  `json:"awards,omitempty" bson:"awards,omitempty"`
	ThemeTags      []string `json:"theme_tags,omitempty" bson:"themeTags,omitempty"`
	PeopleImpacted int      `json:"people_impacted,omitempty" bson:"peopleImpacted,omitempty"`
	ArtifactLinks  []string `json:"artifact_links,omitempty" bson:"artifactLinks,omitempty"`
	DescriptionRaw string   `json:"description_raw,omitempty" bson:"descriptionRaw,omitempty"`
}

// TestScore is a recorded standardized test result
type TestScore struct {
	Score int    `json:"score,omitempty" bson:"score,omitempty"`
	Date  string `json:"date,omitempty" bson:"date,omitempty"`
}

// StudentTests groups the standardized tests a student has taken
type StudentTests struct {
	SAT *TestScore `json:"sat,omitempty" bson:"sat,omitempty"`
	ACT *TestScore `json:"act,omitempty" bson:"act,omitempty"`
}

// StudentProfile is the academic profile behind a portfolio
type StudentProfile struct {
	StudentID       string            `json:"student_id" bson:"studentId"`
	CurrentGrade    string            `json:"current_grade" bson:"currentGrade"`
	IntendedMajor   string            `json:"intended_major,omitempty" bson:"intendedMajor,omitempty"`
	GPAUnweighted   float64           `json:"gpa_unweighted,omitempty" bson:"gpaUnweighted,omitempty"`
	GPAWeighted     float64           `json:"gpa_weighted,omitempty" bson:"gpaWeighted,omitempty"`
	Curriculum      string            `json:"curriculum,omitempty" bson:"curriculum,omitempty"`
	WeeklyHoursCap  float64           `json:"weekly_hours_cap,omitempty" bson:"weeklyHoursCap,omitempty"`
	GradesBySubject map[string]string `json:"grades_by_subject,omitempty" bson:"gradesBySubject,omitempty"`
	Tests           *StudentTests     `json:"tests,omitempty" bson:"tests,omitempty"`
	Constraints     []string          `json:"constraints,omitempty" bson:"constraints,omitempty"`
	UpdatedAt       time.Time         `json:"updated_at,omitempty" bson:"updatedAt,omitempty"`
}

// PortfolioAnalyzeRequest is the request body for portfolio analysis
type PortfolioAnalyzeRequest struct {
	CountryTracks  []string          `json:"country_tracks,omitempty"`
	Schools        []string          `json:"schools"`
	Deadlines      map[string]string `json:"deadlines,omitempty"`
	WeeklyHoursCap float64           `json:"weekly_hours_cap,omitempty"`
	StudentProfile *StudentProfile   `json:"student_profile,omitempty"`
	Portfolio      []Activity        `json:"portfolio"`
}

// SpikeInfo describes a dominant portfolio theme
type SpikeInfo struct {
	Theme string  `json:"theme"`
	Share float64 `json:"share"`
}

// PortfolioScores is the numeric summary of a portfolio
type PortfolioScores struct {
	ImpactTotal float64            `json:"impact_total"`
	LensScores  map[string]float64 `json:"lens_scores"`
	Coverage    float64            `json:"coverage"`
	Spike       *SpikeInfo         `json:"spike,omitempty"`
}

// PortfolioGap is a detected weakness in the portfolio
type PortfolioGap struct {
	Type     string `json:"type"` // "missing_lens", "weak_lens", "no_spike"
	Lens     string `json:"lens,omitempty"`
	Severity int    `json:"severity"` // 1 (minor) to 5 (critical)
}

// PortfolioTask is a concrete recommended action
type PortfolioTask struct {
	Title            string   `json:"title"`
	Track            string   `json:"track"`
	EstimatedHours   float64  `json:"estimated_hours"`
	DefinitionOfDone []string `json:"definition_of_done"`
	MicroCoaching    string   `json:"micro_coaching"`
	QuickLinks       []string `json:"quick_links"`
}

// CriticalImprovement groups tasks addressing one high-severity gap
type CriticalImprovement struct {
	GapType        string          `json:"gap_type"`
	GapDescription string          `json:"gap_description"`
	Severity       int             `json:"severity"`
	Tasks          []PortfolioTask `json:"tasks"`
}

// LensImprovement groups tasks that raise one lens score
type LensImprovement struct {
	Lens                   string          `json:"lens"`
	CurrentScore           float64         `json:"current_score"`
	ImprovementOpportunity string          `json:"improvement_opportunity"`
	Tasks                  []PortfolioTask `json:"tasks"`
}

// DiversitySpike reports on theme concentration vs. breadth
type DiversitySpike struct {
	HasSpike         bool            `json:"has_spike"`
	SpikeTheme       string          `json:"spike_theme,omitempty"`
	SpikeShare       float64         `json:"spike_share,omitempty"`
	CoverageIndex    float64         `json:"coverage_index"`
	NeedsImprovement bool            `json:"needs_improvement"`
	Tasks            []PortfolioTask `json:"tasks"`
}

// AlignmentPriority ranks how well the portfolio fits one target school
type AlignmentPriority struct {
	SchoolName      string   `json:"school_name"`
	AlignmentScore  float64  `json:"alignment_score"`
	IsHighAlignment bool     `json:"is_high_alignment"`
	PriorityTasks   []string `json:"priority_tasks"`
	AlignmentNotes  string   `json:"alignment_notes"`
}

// TestAnalysis summarizes standardized testing strategy for one school
type TestAnalysis struct {
	SchoolName      string          `json:"school_name"`
	TestPolicy      string          `json:"test_policy"` // "required", "optional", "blind"
	TestType        string          `json:"test_type,omitempty"`
	CurrentScore    int             `json:"current_score,omitempty"`
	Mid50Scores     []int           `json:"mid50_scores,omitempty"`
	Competitiveness string          `json:"competitiveness,omitempty"`
	Recommendation  string          `json:"recommendation"`
	Rationale       string          `json:"rationale"`
	Tasks           []PortfolioTask `json:"tasks"`
}

// PortfolioAnalyzeResponse is the full portfolio analysis report
type PortfolioAnalyzeResponse struct {
	Scores               PortfolioScores       `json:"scores"`
	Gaps                 []PortfolioGap        `json:"gaps"`
	CriticalImprovements []CriticalImprovement `json:"critical_improvements"`
	LensImprovements     []LensImprovement     `json:"lens_improvements"`
	DiversitySpike       *DiversitySpike       `json:"diversity_spike,omitempty"`
	AlignmentPriorities  []AlignmentPriority   `json:"alignment_priorities"`
	StandardizedTests    []TestAnalysis        `json:"standardized_tests"`
}

// RegenerateTasksRequest asks for fresh tasks for one report section
type RegenerateTasksRequest struct {
	OriginalRequest   PortfolioAnalyzeRequest `json:"original_request"`
	SectionType       string                  `json:"section_type"` // "critical", "lens", "diversity"
	SectionIdentifier string                  `json:"section_identifier"`
	ExcludeTaskTitles []string                `json:"exclude_task_titles,omitempty"`
}

// RegenerateTasksResponse carries the regenerated tasks
type RegenerateTasksResponse struct {
	SectionType       string          `json:"section_type"`
	SectionIdentifier string          `json:"section_identifier"`
	Tasks             []PortfolioTask `json:"tasks"`
}
