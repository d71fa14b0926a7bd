package matching

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	"idea-match-workers/internal/models"
)

const maxReasons = 3

// Matcher picks ideas from a catalog.
type Matcher struct {
	catalog *Catalog
}

func NewMatcher(c *Catalog) *Matcher {
	return &Matcher{catalog: c}
}

// DefaultMatcher matches against the built-in catalog.
func DefaultMatcher() *Matcher {
	return NewMatcher(DefaultCatalog())
}

func (m *Matcher) Catalog() *Catalog {
	return m.catalog
}

// ScoredIdea pairs a catalog template with its breakdown.
type ScoredIdea struct {
	Idea      models.IdeaTemplate
	Breakdown MatchBreakdown
}

// Rank scores every idea not in excluded and orders them best first.
// Ideas with equal raw scores keep catalog order.
func (m *Matcher) Rank(p models.FounderProfile, excluded map[string]bool) []ScoredIdea {
	ranked := make([]ScoredIdea, 0, m.catalog.Len())
	for _, idea := range m.catalog.All() {
		if excluded[idea.ID] {
			continue
		}
		ranked = append(ranked, ScoredIdea{Idea: idea, Breakdown: Breakdown(p, idea)})
	}
	slices.SortStableFunc(ranked, func(a, b ScoredIdea) int {
		return b.Breakdown.RawScore - a.Breakdown.RawScore
	})
	return ranked
}

// PickBestIdea returns the highest scoring idea not in excluded. ok is false
// when every catalog idea is excluded.
//
// The summary is accepted so callers can pass what they already computed; the
// score depends on the profile alone.
func (m *Matcher) PickBestIdea(p models.FounderProfile, _ models.FounderProfileSummary, excluded map[string]bool) (models.BusinessIdea, bool) {
	ranked := m.Rank(p, excluded)
	if len(ranked) == 0 {
		return models.BusinessIdea{}, false
	}
	best := ranked[0]
	return models.BusinessIdea{
		IdeaTemplate: best.Idea,
		MatchScore:   best.Breakdown.TotalScore,
		WhyYou:       WhyYou(p, best.Idea),
	}, true
}

// PickBestIdea matches against the built-in catalog.
func PickBestIdea(p models.FounderProfile, summary models.FounderProfileSummary, excluded map[string]bool) (models.BusinessIdea, bool) {
	return DefaultMatcher().PickBestIdea(p, summary, excluded)
}

// ExcludeSet turns a list of idea ids into a lookup set.
func ExcludeSet(lists ...[]string) map[string]bool {
	set := make(map[string]bool)
	for _, ids := range lists {
		for _, id := range ids {
			set[id] = true
		}
	}
	return set
}

// WhyYou writes up to three sentences on why idea suits the founder.
func WhyYou(p models.FounderProfile, idea models.IdeaTemplate) string {
	reasons := make([]string, 0, 6)

	if p.HoursPerWeek < 15 {
		reasons = append(reasons, fmt.Sprintf(
			"With %d hours/week available, this %s execution model fits your schedule.",
			p.HoursPerWeek, idea.ExecutionComplexity))
	} else {
		reasons = append(reasons, fmt.Sprintf(
			"Your %d hours/week gives you enough runway to build this properly.", p.HoursPerWeek))
	}
	if strings.Contains(idea.CapitalNeeded, "$0") {
		reasons = append(reasons, "Zero upfront investment means you can start today.")
	}
	if p.HasWritingSkills && idea.RequiresSkill("Writing") {
		reasons = append(reasons, "Your writing skills are the core asset this business needs.")
	}
	if p.HasSalesExperience && idea.Category == models.CategoryService {
		reasons = append(reasons, "Your sales experience will help you close clients quickly.")
	}
	if p.ExistingAudience.HasAudience {
		size := "followers"
		if p.ExistingAudience.Size > 0 {
			size = humanize.Comma(int64(p.ExistingAudience.Size))
		}
		reasons = append(reasons, fmt.Sprintf("Your existing audience of %s gives you instant distribution.", size))
	}
	if p.RiskTolerance <= 4 && idea.RiskLevel == models.RiskLow {
		reasons = append(reasons, "The low-risk nature matches your preference for stability.")
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return strings.Join(reasons, " ")
}
