package service

import (
	"testing"

	"portfolio-analyzer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func roboticsActivity() model.Activity {
	return model.Activity{
		ID:         "act-1",
		Title:      "Robotics team captain",
		Lens:       "Leadership",
		RoleLevel:  "leader",
		HoursTotal: 150,
		Awards:     []model.Award{{Level: "regional"}},
		ThemeTags:  []string{"robotics", "engineering"},
	}
}

func TestAnalyze_EmptyPortfolio(t *testing.T) {
	svc := NewPortfolioService(zap.NewNop())

	_, err := svc.Analyze(&model.PortfolioAnalyzeRequest{Schools: []string{"MIT"}})
	var validationErr *model.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestAnalyze_ScoresAndGaps(t *testing.T) {
	svc := NewPortfolioService(zap.NewNop())

	resp, err := svc.Analyze(&model.PortfolioAnalyzeRequest{
		Schools:   []string{"Purdue"},
		Portfolio: []model.Activity{roboticsActivity()},
	})
	require.NoError(t, err)

	// One Leadership activity: only that lens is covered
	assert.Greater(t, resp.Scores.LensScores["Leadership"], 0.0)
	assert.Equal(t, 0.0, resp.Scores.LensScores["Curiosity"])
	assert.InDelta(t, 1.0/6.0, resp.Scores.Coverage, 0.001)
	assert.Greater(t, resp.Scores.ImpactTotal, 0.0)

	// Five missing lenses produce five missing_lens gaps
	missing := 0
	for _, gap := range resp.Gaps {
		if gap.Type == "missing_lens" {
			missing++
			assert.Equal(t, 4, gap.Severity)
		}
	}
	assert.Equal(t, 5, missing)

	// Missing lenses are critical improvements with tasks attached
	require.NotEmpty(t, resp.CriticalImprovements)
	for _, imp := range resp.CriticalImprovements {
		assert.GreaterOrEqual(t, imp.Severity, 3)
		assert.NotEmpty(t, imp.Tasks)
	}
}

func TestAnalyze_SpikeDetection(t *testing.T) {
	svc := NewPortfolioService(zap.NewNop())

	activities := []model.Activity{
		{ID: "a1", Title: "Robotics club", Lens: "Curiosity", RoleLevel: "member", ThemeTags: []string{"robotics", "robotics"}},
		{ID: "a2", Title: "Robotics competition", Lens: "Achievements", RoleLevel: "contributor", ThemeTags: []string{"robotics", "music"}},
	}

	resp, err := svc.Analyze(&model.PortfolioAnalyzeRequest{Portfolio: activities})
	require.NoError(t, err)

	require.NotNil(t, resp.Scores.Spike)
	assert.Equal(t, "robotics", resp.Scores.Spike.Theme)
	assert.InDelta(t, 0.75, resp.Scores.Spike.Share, 0.001)

	require.NotNil(t, resp.DiversitySpike)
	assert.True(t, resp.DiversitySpike.HasSpike)
	assert.False(t, resp.DiversitySpike.NeedsImprovement)
}

func TestAnalyze_NoSpikeGap(t *testing.T) {
	svc := NewPortfolioService(zap.NewNop())

	activities := []model.Activity{
		{ID: "a1", Title: "Debate", Lens: "Leadership", RoleLevel: "member", ThemeTags: []string{"debate"}},
		{ID: "a2", Title: "Choir", Lens: "Creativity", RoleLevel: "member", ThemeTags: []string{"music"}},
		{ID: "a3", Title: "Tutoring", Lens: "Community", RoleLevel: "member", ThemeTags: []string{"education"}},
	}

	resp, err := svc.Analyze(&model.PortfolioAnalyzeRequest{Portfolio: activities})
	require.NoError(t, err)

	assert.Nil(t, resp.Scores.Spike)
	require.NotNil(t, resp.DiversitySpike)
	assert.True(t, resp.DiversitySpike.NeedsImprovement)
	assert.NotEmpty(t, resp.DiversitySpike.Tasks)

	hasNoSpikeGap := false
	for _, gap := range resp.Gaps {
		if gap.Type == "no_spike" {
			hasNoSpikeGap = true
		}
	}
	assert.True(t, hasNoSpikeGap)
}

func TestActivityImpact_RewardsDepth(t *testing.T) {
	shallow := model.Activity{RoleLevel: "member"}
	deep := model.Activity{
		RoleLevel:      "founder",
		HoursTotal:     200,
		Awards:         []model.Award{{Level: "national"}},
		PeopleImpacted: 500,
	}
	assert.Greater(t, activityImpact(deep), activityImpact(shallow))
}

func TestRegenerateTasksForSection_ExcludesTitles(t *testing.T) {
	svc := NewPortfolioService(zap.NewNop())
	req := &model.PortfolioAnalyzeRequest{Portfolio: []model.Activity{roboticsActivity()}}

	first, err := svc.RegenerateTasksForSection(req, "lens", "Curiosity", nil)
	require.NoError(t, err)
	require.NotEmpty(t, first.Tasks)

	exclude := []string{first.Tasks[0].Title}
	second, err := svc.RegenerateTasksForSection(req, "lens", "Curiosity", exclude)
	require.NoError(t, err)

	for _, task := range second.Tasks {
		assert.NotEqual(t, exclude[0], task.Title)
	}
}

func TestRegenerateTasksForSection_UnknownSection(t *testing.T) {
	svc := NewPortfolioService(zap.NewNop())
	req := &model.PortfolioAnalyzeRequest{Portfolio: []model.Activity{roboticsActivity()}}

	var validationErr *model.ValidationError

	_, err := svc.RegenerateTasksForSection(req, "bogus", "Curiosity", nil)
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.RegenerateTasksForSection(req, "lens", "NotALens", nil)
	assert.ErrorAs(t, err, &validationErr)
}
