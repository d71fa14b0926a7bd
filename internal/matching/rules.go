package matching

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"idea-match-workers/internal/models"
)

// rule maps one predicate to a point delta. Impact follows the sign of points.
type rule struct {
	id          string
	label       string
	description string
	points      int
	when        func(p models.FounderProfile, idea models.IdeaTemplate) bool
}

// ruleGroup emits at most one factor: the first rule whose predicate holds.
// A group holding a single rule is an independent check.
type ruleGroup struct {
	category models.FactorCategory
	values   func(p models.FounderProfile, idea models.IdeaTemplate) (profileValue, ideaValue string)
	rules    []rule
}

func always(models.FounderProfile, models.IdeaTemplate) bool { return true }

// scoringRules is the one rule table behind both Breakdown and PickBestIdea.
// Group order is evaluation order.
var scoringRules = []ruleGroup{
	{
		category: models.FactorTime,
		values: func(p models.FounderProfile, idea models.IdeaTemplate) (string, string) {
			return fmt.Sprintf("%d hours/week", p.HoursPerWeek), string(idea.ExecutionComplexity) + " execution"
		},
		rules: []rule{
			{
				id:          "time-fit-simple",
				label:       "Fits your limited time",
				description: "A simple build suits the few hours you have each week.",
				points:      15,
				when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
					return p.HoursPerWeek < 10 && idea.ExecutionComplexity == models.ComplexitySimple
				},
			},
			{
				id:          "time-fit-build",
				label:       "Room for a bigger build",
				description: "Your weekly hours can carry a build of this size.",
				points:      10,
				when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
					return p.HoursPerWeek >= 20 && idea.ExecutionComplexity != models.ComplexitySimple
				},
			},
			{
				id:          "time-short",
				label:       "Tight on time",
				description: "This build needs more hours than you have available.",
				points:      -5,
				when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
					return p.HoursPerWeek < 10 && idea.ExecutionComplexity != models.ComplexitySimple
				},
			},
			{
				id:          "time-neutral",
				label:       "Workable time fit",
				description: "Your available hours neither help nor hurt this idea.",
				points:      0,
				when:        always,
			},
		},
	},
	{
		category: models.FactorCapital,
		values: func(p models.FounderProfile, idea models.IdeaTemplate) (string, string) {
			return string(p.CapitalAvailable), idea.CapitalNeeded
		},
		rules: []rule{
			{
				id:          "capital-bootstrap",
				label:       "Bootstrap friendly",
				description: "Startup costs fit within the capital you have.",
				points:      15,
				when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
					return p.HasLowCapital() && mentionsAny(idea.CapitalNeeded, "$0", "$100")
				},
			},
			{
				id:          "capital-cushion",
				label:       "Capital cushion",
				description: "You have enough capital to cover the startup costs.",
				points:      5,
				when: func(p models.FounderProfile, _ models.IdeaTemplate) bool {
					return !p.HasLowCapital()
				},
			},
			{
				id:          "capital-stretch",
				label:       "Capital stretch",
				description: "Startup costs run above the capital you listed.",
				points:      0,
				when:        always,
			},
		},
	},
	{
		category: models.FactorRisk,
		values: func(p models.FounderProfile, idea models.IdeaTemplate) (string, string) {
			return fmt.Sprintf("%d/10 tolerance", p.RiskTolerance), string(idea.RiskLevel) + " risk"
		},
		rules: []rule{
			{
				id:          "risk-appetite",
				label:       "Matches your risk appetite",
				description: "You are comfortable with the uncertainty this idea carries.",
				points:      10,
				when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
					return p.RiskTolerance >= 7 && idea.RiskLevel == models.RiskHigh
				},
			},
			{
				id:          "risk-safe",
				label:       "Low-risk fit",
				description: "A low-risk idea suits your preference for stability.",
				points:      15,
				when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
					return p.RiskTolerance <= 3 && idea.RiskLevel == models.RiskLow
				},
			},
			{
				id:          "risk-mismatch",
				label:       "Too risky for you",
				description: "This idea carries more risk than you said you can handle.",
				points:      -10,
				when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
					return p.RiskTolerance <= 3 && idea.RiskLevel == models.RiskHigh
				},
			},
			{
				id:          "risk-neutral",
				label:       "Acceptable risk",
				description: "The risk level is within your comfort range.",
				points:      0,
				when:        always,
			},
		},
	},
	{
		category: models.FactorSkills,
		values: func(p models.FounderProfile, idea models.IdeaTemplate) (string, string) {
			return string(p.TechnicalAbility), fmt.Sprintf("%s, %s", idea.Category, idea.ExecutionComplexity)
		},
		rules: []rule{
			{
				id:          "skills-developer",
				label:       "Technical advantage",
				description: "You can build the product yourself.",
				points:      15,
				when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
					return p.TechnicalAbility == models.TechDeveloper && idea.Category == models.CategorySaaS
				},
			},
			{
				id:          "skills-no-code-needed",
				label:       "No code required",
				description: "Nothing here needs technical skills to launch.",
				points:      10,
				when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
					return p.TechnicalAbility == models.TechNone && idea.ExecutionComplexity == models.ComplexitySimple
				},
			},
			{
				id:          "skills-no-code-build",
				label:       "No-code buildable",
				description: "Your no-code tools are enough to ship a first version.",
				points:      10,
				when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
					return p.TechnicalAbility == models.TechNoCode && idea.Category == models.CategorySaaS
				},
			},
			{
				id:          "skills-technical-neutral",
				label:       "Technical fit",
				description: "Your technical ability neither helps nor hurts here.",
				points:      0,
				when:        always,
			},
		},
	},
	{
		category: models.FactorSkills,
		values: func(p models.FounderProfile, idea models.IdeaTemplate) (string, string) {
			return fmt.Sprintf("%d/10 marketing comfort", p.MarketingComfort), idea.Category
		},
		rules: []rule{
			{
				id:          "skills-marketing-content",
				label:       "Marketing strength",
				description: "Content businesses reward founders who enjoy promotion.",
				points:      15,
				when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
					return p.MarketingComfort >= 7 && idea.Category == models.CategoryContent
				},
			},
			{
				id:          "skills-marketing-community",
				label:       "Community builder",
				description: "Your comfort with marketing helps grow a community.",
				points:      10,
				when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
					return p.MarketingComfort >= 7 && idea.Category == models.CategoryCommunity
				},
			},
			{
				id:          "skills-marketing-low",
				label:       "Limited marketing comfort",
				description: "Promotion will take deliberate effort for you.",
				points:      0,
				when: func(p models.FounderProfile, _ models.IdeaTemplate) bool {
					return p.MarketingComfort <= 3
				},
			},
		},
	},
	{
		category: models.FactorSkills,
		values: func(_ models.FounderProfile, idea models.IdeaTemplate) (string, string) {
			return "Writing skills", strings.Join(idea.RequiredSkills, ", ")
		},
		rules: []rule{{
			id:          "skills-writing",
			label:       "Writing skills",
			description: "Writing is the core asset this business needs.",
			points:      15,
			when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
				return p.HasWritingSkills && idea.RequiresSkill("Writing")
			},
		}},
	},
	{
		category: models.FactorSkills,
		values: func(_ models.FounderProfile, idea models.IdeaTemplate) (string, string) {
			return "Sales experience", idea.Category
		},
		rules: []rule{{
			id:          "skills-sales",
			label:       "Sales experience",
			description: "You can close service clients without a long ramp-up.",
			points:      15,
			when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
				return p.HasSalesExperience && idea.Category == models.CategoryService
			},
		}},
	},
	{
		category: models.FactorSkills,
		values: func(p models.FounderProfile, idea models.IdeaTemplate) (string, string) {
			return audienceLabel(p.ExistingAudience), idea.Category
		},
		rules: []rule{
			{
				id:          "skills-audience-content",
				label:       "Built-in audience",
				description: "Your audience gives this content instant distribution.",
				points:      20,
				when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
					return p.ExistingAudience.HasAudience && idea.Category == models.CategoryContent
				},
			},
			{
				id:          "skills-audience-community",
				label:       "Audience to seed a community",
				description: "Your followers can become the first members.",
				points:      15,
				when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
					return p.ExistingAudience.HasAudience && idea.Category == models.CategoryCommunity
				},
			},
		},
	},
	{
		category: models.FactorPreferences,
		values: func(p models.FounderProfile, idea models.IdeaTemplate) (string, string) {
			return string(p.TimeHorizon), idea.TimeToFirstRevenue
		},
		rules: []rule{{
			id:          "preferences-quick-cash",
			label:       "Fast first revenue",
			description: "Revenue can arrive within weeks, as you wanted.",
			points:      15,
			when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
				return p.TimeHorizon == models.HorizonQuickCash && strings.Contains(idea.TimeToFirstRevenue, "week")
			},
		}},
	},
	{
		category: models.FactorPreferences,
		values: func(p models.FounderProfile, idea models.IdeaTemplate) (string, string) {
			return string(p.PreferredBusinessType), idea.Category
		},
		rules: []rule{{
			id:          "preferences-b2b",
			label:       "B2B preference",
			description: "You prefer selling to businesses, and this idea does.",
			points:      10,
			when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
				return p.PreferredBusinessType == models.BusinessB2B && idea.Category == models.CategoryService
			},
		}},
	},
	{
		category: models.FactorPreferences,
		values: func(p models.FounderProfile, idea models.IdeaTemplate) (string, string) {
			return string(p.TeamPreference), string(idea.ExecutionComplexity) + " execution"
		},
		rules: []rule{{
			id:          "preferences-solo",
			label:       "Solo-friendly",
			description: "You can run this without hiring or a co-founder.",
			points:      10,
			when: func(p models.FounderProfile, idea models.IdeaTemplate) bool {
				return p.TeamPreference == models.TeamSolo && idea.ExecutionComplexity != models.ComplexityComplex
			},
		}},
	},
}

// evaluate applies every group and returns the fired factors in rule order.
func evaluate(p models.FounderProfile, idea models.IdeaTemplate) []models.MatchFactor {
	factors := make([]models.MatchFactor, 0, len(scoringRules))
	for _, g := range scoringRules {
		for _, r := range g.rules {
			if !r.when(p, idea) {
				continue
			}
			profileValue, ideaValue := g.values(p, idea)
			factors = append(factors, models.MatchFactor{
				ID:           r.id,
				Category:     g.category,
				Label:        r.label,
				Description:  r.description,
				Impact:       impactOf(r.points),
				Points:       r.points,
				ProfileValue: profileValue,
				IdeaValue:    ideaValue,
			})
			break
		}
	}
	return factors
}

func impactOf(points int) models.Impact {
	switch {
	case points > 0:
		return models.ImpactPositive
	case points < 0:
		return models.ImpactNegative
	default:
		return models.ImpactNeutral
	}
}

func mentionsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func audienceLabel(a models.ExistingAudience) string {
	if !a.HasAudience {
		return "No audience"
	}
	if a.Size > 0 {
		return humanize.Comma(int64(a.Size)) + " followers"
	}
	return "followers"
}
