// Package matching scores founder profiles against the idea catalog.
//
// Everything in this package is pure: no I/O, no shared mutable state. Workers
// call it after loading a profile and persist whatever it returns.
package matching

import (
	"math"
	"strings"

	"idea-match-workers/internal/models"
)

const (
	maxStrengths     = 4
	maxBlindSpots    = 3
	maxIdealModels   = 4
	maxAntiPatterns  = 3
	maxCapacityScore = 10.0
)

// summaryBuilder collects tags in rule order.
type summaryBuilder struct {
	strengths    []string
	blindSpots   []string
	idealModels  []string
	antiPatterns []string
}

func (b *summaryBuilder) strength(s string) { b.strengths = append(b.strengths, s) }
func (b *summaryBuilder) blindSpot(s string) { b.blindSpots = append(b.blindSpots, s) }
func (b *summaryBuilder) model(s ...string) { b.idealModels = append(b.idealModels, s...) }
func (b *summaryBuilder) antiPattern(s string) { b.antiPatterns = append(b.antiPatterns, s) }

// Summarize derives the qualitative founder summary from a profile.
func Summarize(p models.FounderProfile) models.FounderProfileSummary {
	var b summaryBuilder

	switch p.TechnicalAbility {
	case models.TechDeveloper:
		b.strength("Technical execution")
		b.model("SaaS", "Developer tools")
	case models.TechNoCode:
		b.strength("No-code tool proficiency")
		b.model("Micro-SaaS", "Automation services")
	default:
		b.blindSpot("Technical execution")
		b.antiPattern("Code-heavy products")
	}

	if p.MarketingComfort >= 7 {
		b.strength("Marketing & distribution")
		b.model("Content business", "Audience-first products")
	}
	if p.MarketingComfort >= 7 {
		b.model("Community-based business")
	}
	if p.MarketingComfort <= 3 {
		b.blindSpot("Marketing & promotion")
		b.antiPattern("Consumer products requiring viral growth")
	}

	if p.HasSalesExperience {
		b.strength("Sales & closing")
		b.model("Service business", "B2B sales")
	}

	if p.ExistingAudience.HasAudience && p.ExistingAudience.Size > 1000 {
		b.strength("Existing distribution")
		b.model("Info products", "Community-based business")
	}

	if p.RiskTolerance >= 7 {
		b.strength("Risk-taking ability")
	}
	if p.RiskTolerance <= 3 {
		b.antiPattern("High-burn ventures")
		b.model("Low-risk service business")
	}

	if p.HoursPerWeek < 10 {
		b.antiPattern("Time-intensive operations")
		b.model("Passive income products", "Automated systems")
	}
	if p.HoursPerWeek >= 30 {
		b.model("Full-time venture")
	}

	if p.HasLowCapital() {
		b.antiPattern("Capital-intensive businesses")
		b.model("Service-first model", "Bootstrap-friendly")
	}

	if p.PersonalityType.BuilderVsOptimizer <= 4 {
		b.strength("Building from scratch")
	} else {
		b.strength("Optimizing existing systems")
	}

	if p.PersonalityType.StructureVsAmbiguity <= 4 {
		b.antiPattern("Highly ambiguous markets")
	}

	return models.FounderProfileSummary{
		FounderType:         founderType(p),
		ExecutionStrengths:  truncate(b.strengths, maxStrengths),
		BlindSpots:          truncate(b.blindSpots, maxBlindSpots),
		IdealBusinessModels: truncate(dedupe(b.idealModels), maxIdealModels),
		AntiPatterns:        truncate(dedupe(b.antiPatterns), maxAntiPatterns),
		WeeklyCapacityScore: WeeklyCapacityScore(p),
	}
}

// WeeklyCapacityScore weighs hours (max 5), stress tolerance (max 3) and
// flexibility (2) into a 0-10 score. The sum is capped before rounding.
func WeeklyCapacityScore(p models.FounderProfile) int {
	raw := float64(p.HoursPerWeek)/40*5 + float64(p.StressTolerance)/10*3
	if !p.NeedsPredictability {
		raw += 2
	}
	return int(math.Round(math.Min(maxCapacityScore, raw)))
}

func founderType(p models.FounderProfile) string {
	parts := make([]string, 0, 3)

	switch p.CapitalAvailable {
	case models.CapitalZero, models.CapitalUnder1k:
		parts = append(parts, "Bootstrap")
	case models.CapitalOver5k:
		parts = append(parts, "Funded")
	}

	switch p.TechnicalAbility {
	case models.TechDeveloper:
		parts = append(parts, "Technical")
	case models.TechNoCode:
		parts = append(parts, "No-Code")
	default:
		parts = append(parts, "Non-Technical")
	}

	if p.PersonalityType.BuilderVsOptimizer <= 4 {
		parts = append(parts, "Builder")
	} else {
		parts = append(parts, "Operator")
	}

	return strings.Join(parts, " ")
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func truncate(in []string, n int) []string {
	if in == nil {
		return []string{}
	}
	if len(in) > n {
		return in[:n]
	}
	return in
}
