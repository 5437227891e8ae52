package service

import (
	"fmt"
	"sort"
	"strings"

	"portfolio-analyzer/internal/model"

	"go.uber.org/zap"
)

// Lenses every portfolio is scored against
var portfolioLenses = []string{"Curiosity", "Growth", "Community", "Creativity", "Leadership", "Achievements"}

var rolePoints = map[string]float64{
	"member":      1.0,
	"contributor": 2.0,
	"leader":      3.0,
	"founder":     4.0,
}

var awardPoints = map[string]float64{
	"school":        1.0,
	"regional":      2.0,
	"national":      3.0,
	"international": 4.0,
}

const (
	spikeShareThreshold  = 0.4
	highAlignmentCutoff  = 7.0
	weakLensCutoff       = 3.0
	improvableLensCutoff = 7.0
)

// PortfolioService evaluates portfolios against the lens rubric and
// produces the improvement report consumed by the dashboard.
type PortfolioService struct {
	logger *zap.Logger
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(logger *zap.Logger) *PortfolioService {
	return &PortfolioService{logger: logger}
}

// Analyze scores the portfolio, detects gaps and builds recommendations
func (s *PortfolioService) Analyze(req *model.PortfolioAnalyzeRequest) (*model.PortfolioAnalyzeResponse, error) {
	if len(req.Portfolio) == 0 {
		return nil, model.NewValidationError("portfolio must contain at least one activity")
	}

	scores := s.computeScores(req.Portfolio)
	gaps := s.detectGaps(scores)

	resp := &model.PortfolioAnalyzeResponse{
		Scores:               scores,
		Gaps:                 gaps,
		CriticalImprovements: s.buildCriticalImprovements(gaps, nil),
		LensImprovements:     s.buildLensImprovements(scores),
		DiversitySpike:       s.buildDiversitySpike(scores),
		AlignmentPriorities:  s.buildAlignmentPriorities(req.Schools, scores),
		StandardizedTests:    s.buildTestAnalyses(req.Schools, req.StudentProfile),
	}

	s.logger.Info("portfolio analyzed",
		zap.Int("activities", len(req.Portfolio)),
		zap.Int("schools", len(req.Schools)),
		zap.Float64("impact_total", scores.ImpactTotal),
		zap.Int("gaps", len(gaps)))

	return resp, nil
}

// RegenerateTasksForSection produces fresh tasks for one report section,
// excluding task titles the student has already seen or rejected.
func (s *PortfolioService) RegenerateTasksForSection(req *model.PortfolioAnalyzeRequest, sectionType, sectionIdentifier string, excludeTitles []string) (*model.RegenerateTasksResponse, error) {
	if len(req.Portfolio) == 0 {
		return nil, model.NewValidationError("portfolio must contain at least one activity")
	}

	var tasks []model.PortfolioTask
	switch sectionType {
	case "critical", "lens":
		tasks = tasksForLens(sectionIdentifier, excludeTitles, 3)
		if len(tasks) == 0 {
			return nil, model.NewValidationError(fmt.Sprintf("unknown lens %q", sectionIdentifier))
		}
	case "diversity":
		tasks = filterTasks(diversityTasks, excludeTitles, 3)
	default:
		return nil, model.NewValidationError(fmt.Sprintf("unknown section type %q", sectionType))
	}

	return &model.RegenerateTasksResponse{
		SectionType:       sectionType,
		SectionIdentifier: sectionIdentifier,
		Tasks:             tasks,
	}, nil
}

// activityImpact rates one activity by role, sustained hours, recognition
// and reach. Deterministic; no AI involved.
func activityImpact(a model.Activity) float64 {
	impact, ok := rolePoints[strings.ToLower(a.RoleLevel)]
	if !ok {
		impact = 1.0
	}

	hours := a.HoursTotal
	if hours == 0 && a.HoursPerWeek > 0 {
		hours = a.HoursPerWeek * 40 // assume one school year
	}
	hoursFactor := hours / 50.0
	if hoursFactor > 3.0 {
		hoursFactor = 3.0
	}
	impact += hoursFactor

	awards := 0.0
	for _, award := range a.Awards {
		awards += awardPoints[strings.ToLower(award.Level)]
	}
	if awards > 4.0 {
		awards = 4.0
	}
	impact += awards

	reach := float64(a.PeopleImpacted) / 100.0
	if reach > 2.0 {
		reach = 2.0
	}
	impact += reach

	return impact
}

func (s *PortfolioService) computeScores(portfolio []model.Activity) model.PortfolioScores {
	lensScores := make(map[string]float64, len(portfolioLenses))
	for _, lens := range portfolioLenses {
		lensScores[lens] = 0
	}

	impactTotal := 0.0
	themeCounts := map[string]int{}
	totalTags := 0

	for _, activity := range portfolio {
		impact := activityImpact(activity)
		impactTotal += impact

		if _, known := lensScores[activity.Lens]; known {
			lensScores[activity.Lens] += impact
		}
		for _, tag := range activity.ThemeTags {
			themeCounts[strings.ToLower(tag)]++
			totalTags++
		}
	}

	covered := 0
	for lens, score := range lensScores {
		if score > 10 {
			lensScores[lens] = 10
		}
		if score > 0 {
			covered++
		}
	}
	coverage := float64(covered) / float64(len(portfolioLenses))

	var spike *model.SpikeInfo
	if totalTags >= 3 {
		topTheme, topCount := "", 0
		for theme, count := range themeCounts {
			if count > topCount || (count == topCount && theme < topTheme) {
				topTheme, topCount = theme, count
			}
		}
		share := float64(topCount) / float64(totalTags)
		if share >= spikeShareThreshold {
			spike = &model.SpikeInfo{Theme: topTheme, Share: share}
		}
	}

	return model.PortfolioScores{
		ImpactTotal: impactTotal,
		LensScores:  lensScores,
		Coverage:    coverage,
		Spike:       spike,
	}
}

func (s *PortfolioService) detectGaps(scores model.PortfolioScores) []model.PortfolioGap {
	var gaps []model.PortfolioGap
	for _, lens := range portfolioLenses {
		score := scores.LensScores[lens]
		if score == 0 {
			gaps = append(gaps, model.PortfolioGap{Type: "missing_lens", Lens: lens, Severity: 4})
		} else if score < weakLensCutoff {
			gaps = append(gaps, model.PortfolioGap{Type: "weak_lens", Lens: lens, Severity: 2})
		}
	}
	if scores.Spike == nil {
		gaps = append(gaps, model.PortfolioGap{Type: "no_spike", Severity: 3})
	}
	return gaps
}

func (s *PortfolioService) buildCriticalImprovements(gaps []model.PortfolioGap, excludeTitles []string) []model.CriticalImprovement {
	improvements := make([]model.CriticalImprovement, 0)
	for _, gap := range gaps {
		if gap.Severity < 3 {
			continue
		}

		var description string
		var tasks []model.PortfolioTask
		switch gap.Type {
		case "missing_lens":
			description = fmt.Sprintf("No evidence for the %s lens. Admissions readers expect at least one sustained activity here.", gap.Lens)
			tasks = tasksForLens(gap.Lens, excludeTitles, 3)
		case "no_spike":
			description = "The portfolio has breadth but no dominant theme. A recognizable spike makes the application memorable."
			tasks = filterTasks(diversityTasks, excludeTitles, 3)
		default:
			continue
		}

		improvements = append(improvements, model.CriticalImprovement{
			GapType:        gap.Type,
			GapDescription: description,
			Severity:       gap.Severity,
			Tasks:          tasks,
		})
	}
	return improvements
}

func (s *PortfolioService) buildLensImprovements(scores model.PortfolioScores) []model.LensImprovement {
	improvements := make([]model.LensImprovement, 0)
	for _, lens := range portfolioLenses {
		score := scores.LensScores[lens]
		if score <= 0 || score >= improvableLensCutoff {
			continue
		}
		improvements = append(improvements, model.LensImprovement{
			Lens:                   lens,
			CurrentScore:           score,
			ImprovementOpportunity: fmt.Sprintf("%s is present but underdeveloped (%.1f/10). Deepen an existing activity rather than adding a new one.", lens, score),
			Tasks:                  tasksForLens(lens, nil, 2),
		})
	}
	return improvements
}

func (s *PortfolioService) buildDiversitySpike(scores model.PortfolioScores) *model.DiversitySpike {
	spike := &model.DiversitySpike{
		CoverageIndex: scores.Coverage,
	}
	if scores.Spike != nil {
		spike.HasSpike = true
		spike.SpikeTheme = scores.Spike.Theme
		spike.SpikeShare = scores.Spike.Share
		spike.Tasks = []model.PortfolioTask{}
	} else {
		spike.NeedsImprovement = true
		spike.Tasks = filterTasks(diversityTasks, nil, 2)
	}
	return spike
}

func (s *PortfolioService) buildAlignmentPriorities(schools []string, scores model.PortfolioScores) []model.AlignmentPriority {
	priorities := make([]model.AlignmentPriority, 0, len(schools))

	avgLens := 0.0
	for _, lens := range portfolioLenses {
		avgLens += scores.LensScores[lens]
	}
	avgLens /= float64(len(portfolioLenses))

	for _, school := range schools {
		score := scores.Coverage*3 + avgLens*0.5
		if scores.Spike != nil {
			score += 2
		}
		if selective(school) {
			score -= 1 // selective schools expect more from every lens
		}
		score = clampScore(score)

		priority := model.AlignmentPriority{
			SchoolName:      school,
			AlignmentScore:  score,
			IsHighAlignment: score >= highAlignmentCutoff,
			PriorityTasks:   []string{},
		}
		if priority.IsHighAlignment {
			priority.AlignmentNotes = "Portfolio profile fits this school. Focus remaining time on essays and recommendations."
		} else {
			priority.AlignmentNotes = "Portfolio needs strengthening before this school is a realistic target."
			for _, lens := range portfolioLenses {
				if scores.LensScores[lens] < weakLensCutoff {
					priority.PriorityTasks = append(priority.PriorityTasks, fmt.Sprintf("Strengthen %s evidence", lens))
				}
			}
		}
		priorities = append(priorities, priority)
	}

	sort.SliceStable(priorities, func(i, j int) bool {
		return priorities[i].AlignmentScore > priorities[j].AlignmentScore
	})
	return priorities
}

func (s *PortfolioService) buildTestAnalyses(schools []string, profile *model.StudentProfile) []model.TestAnalysis {
	analyses := make([]model.TestAnalysis, 0, len(schools))
	for _, school := range schools {
		analyses = append(analyses, analyzeTestsForSchool(school, profile))
	}
	return analyses
}

// tasksForLens returns up to limit catalog tasks for a lens, skipping
// excluded titles. Returns nil for an unknown lens.
func tasksForLens(lens string, excludeTitles []string, limit int) []model.PortfolioTask {
	catalog, ok := lensTaskCatalog[lens]
	if !ok {
		return nil
	}
	return filterTasks(catalog, excludeTitles, limit)
}

func filterTasks(catalog []model.PortfolioTask, excludeTitles []string, limit int) []model.PortfolioTask {
	excluded := make(map[string]bool, len(excludeTitles))
	for _, title := range excludeTitles {
		excluded[title] = true
	}

	tasks := make([]model.PortfolioTask, 0, limit)
	for _, task := range catalog {
		if excluded[task.Title] {
			continue
		}
		tasks = append(tasks, task)
		if len(tasks) == limit {
			break
		}
	}
	return tasks
}
