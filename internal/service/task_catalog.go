package service

import "portfolio-analyzer/internal/model"

// Static task templates keyed by lens. Regeneration walks further down the
// same list, so each lens carries more templates than one report shows.
var lensTaskCatalog = map[string][]model.PortfolioTask{
	"Curiosity": {
		{
			Title:            "Start an independent research question",
			Track:            "academic",
			EstimatedHours:   20,
			DefinitionOfDone: []string{"Written research question", "Annotated bibliography of 5 sources", "One-page findings summary"},
			MicroCoaching:    "Pick something you already wonder about. Depth beats novelty.",
			QuickLinks:       []string{"https://www.jstor.org", "https://scholar.google.com"},
		},
		{
			Title:            "Complete an online course beyond the school curriculum",
			Track:            "academic",
			EstimatedHours:   30,
			DefinitionOfDone: []string{"Course certificate", "Capstone artifact linked in portfolio"},
			MicroCoaching:    "Choose a course that feeds an existing interest, not a resume line.",
			QuickLinks:       []string{"https://www.coursera.org", "https://www.edx.org"},
		},
		{
			Title:            "Interview three professionals in your intended field",
			Track:            "exploration",
			EstimatedHours:   8,
			DefinitionOfDone: []string{"Three completed interviews", "Published write-up or blog post"},
			MicroCoaching:    "Cold emails work better than you expect when they are short and specific.",
			QuickLinks:       []string{},
		},
	},
	"Growth": {
		{
			Title:            "Document a skill progression over one semester",
			Track:            "personal",
			EstimatedHours:   15,
			DefinitionOfDone: []string{"Baseline recording or sample", "Weekly practice log", "End-of-semester comparison"},
			MicroCoaching:    "The before/after contrast is the evidence. Keep the log honest.",
			QuickLinks:       []string{},
		},
		{
			Title:            "Take on a stretch role in an existing activity",
			Track:            "personal",
			EstimatedHours:   25,
			DefinitionOfDone: []string{"New responsibility confirmed by advisor", "Reflection on what changed"},
			MicroCoaching:    "Growth reads best when the starting point was genuinely uncomfortable.",
			QuickLinks:       []string{},
		},
	},
	"Community": {
		{
			Title:            "Organize a recurring volunteer effort",
			Track:            "service",
			EstimatedHours:   40,
			DefinitionOfDone: []string{"At least 6 sessions held", "Partner organization letter", "Participation count"},
			MicroCoaching:    "Recurring beats one-off. Admissions readers discount single-day service.",
			QuickLinks:       []string{"https://www.volunteermatch.org"},
		},
		{
			Title:            "Launch a peer tutoring program at school",
			Track:            "service",
			EstimatedHours:   30,
			DefinitionOfDone: []string{"Faculty sponsor", "5+ tutor/tutee pairs matched", "One semester of sessions"},
			MicroCoaching:    "Track outcomes, not hours. A grade improvement story is the artifact.",
			QuickLinks:       []string{},
		},
	},
	"Creativity": {
		{
			Title:            "Ship a creative project end to end",
			Track:            "creative",
			EstimatedHours:   35,
			DefinitionOfDone: []string{"Finished piece published or performed", "Process documentation"},
			MicroCoaching:    "Finished and public beats polished and private.",
			QuickLinks:       []string{},
		},
		{
			Title:            "Enter two juried competitions or showcases",
			Track:            "creative",
			EstimatedHours:   20,
			DefinitionOfDone: []string{"Two submissions with confirmation", "Feedback collected"},
			MicroCoaching:    "Submitting is the win. Placement is a bonus.",
			QuickLinks:       []string{},
		},
	},
	"Leadership": {
		{
			Title:            "Found or re-launch a student organization",
			Track:            "leadership",
			EstimatedHours:   50,
			DefinitionOfDone: []string{"Charter and faculty sponsor", "10+ members", "Two events held"},
			MicroCoaching:    "A revived dead club counts as founding. Inherited titles count less.",
			QuickLinks:       []string{},
		},
		{
			Title:            "Run a project with a team of 4+ peers",
			Track:            "leadership",
			EstimatedHours:   30,
			DefinitionOfDone: []string{"Project plan with owners", "Delivered outcome", "Retrospective notes"},
			MicroCoaching:    "Delegation is the skill being evidenced, not doing everything yourself.",
			QuickLinks:       []string{},
		},
	},
	"Achievements": {
		{
			Title:            "Compete in a regional or national competition",
			Track:            "achievement",
			EstimatedHours:   40,
			DefinitionOfDone: []string{"Registration and participation", "Result documented"},
			MicroCoaching:    "Pick the competition that matches your spike theme.",
			QuickLinks:       []string{},
		},
		{
			Title:            "Earn a recognized certification in your field",
			Track:            "achievement",
			EstimatedHours:   25,
			DefinitionOfDone: []string{"Certification exam passed", "Credential linked in portfolio"},
			MicroCoaching:    "Certifications are strongest when they unlock a concrete next project.",
			QuickLinks:       []string{},
		},
	},
}

// Tasks for portfolios with breadth but no dominant theme
var diversityTasks = []model.PortfolioTask{
	{
		Title:            "Pick a spike theme and connect two existing activities to it",
		Track:            "strategy",
		EstimatedHours:   5,
		DefinitionOfDone: []string{"Theme chosen", "Activity descriptions rewritten around the theme"},
		MicroCoaching:    "You usually already have a spike. Naming it is the work.",
		QuickLinks:       []string{},
	},
	{
		Title:            "Add one flagship project inside the spike theme",
		Track:            "strategy",
		EstimatedHours:   40,
		DefinitionOfDone: []string{"Project scoped and completed", "Public artifact"},
		MicroCoaching:    "One deep project does more than three shallow ones.",
		QuickLinks:       []string{},
	},
	{
		Title:            "Drop or de-emphasize activities outside the theme",
		Track:            "strategy",
		EstimatedHours:   2,
		DefinitionOfDone: []string{"Portfolio reordered with spike activities first"},
		MicroCoaching:    "Cutting is uncomfortable and effective.",
		QuickLinks:       []string{},
	},
}
