package matching

import (
	"slices"

	"idea-match-workers/internal/models"
)

const (
	// BaseScore is the score of an idea before any rule fires.
	BaseScore = 50
	minScore  = 0
	maxScore  = 100
)

// MatchBreakdown explains how a single idea scored against a profile.
type MatchBreakdown struct {
	IdeaID     string               `json:"ideaId"`
	Factors    []models.MatchFactor `json:"factors"`
	TotalScore int                  `json:"totalScore"`
	// RawScore is BaseScore plus every factor's points, before clamping.
	RawScore int `json:"rawScore"`
}

// Breakdown scores idea against p and lists the factors behind the score,
// positive first, then neutral, then negative.
func Breakdown(p models.FounderProfile, idea models.IdeaTemplate) MatchBreakdown {
	factors := evaluate(p, idea)

	raw := BaseScore
	for _, f := range factors {
		raw += f.Points
	}

	slices.SortStableFunc(factors, func(a, b models.MatchFactor) int {
		return impactRank(a.Impact) - impactRank(b.Impact)
	})

	return MatchBreakdown{
		IdeaID:     idea.ID,
		Factors:    factors,
		TotalScore: clampScore(raw),
		RawScore:   raw,
	}
}

func impactRank(i models.Impact) int {
	switch i {
	case models.ImpactPositive:
		return 0
	case models.ImpactNeutral:
		return 1
	default:
		return 2
	}
}

func clampScore(raw int) int {
	return min(max(raw, minScore), maxScore)
}
