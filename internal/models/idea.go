// internal/models/idea.go
package models

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type ExecutionComplexity string

const (
	ComplexitySimple   ExecutionComplexity = "simple"
	ComplexityModerate ExecutionComplexity = "moderate"
	ComplexityComplex  ExecutionComplexity = "complex"
)

// Idea categories used by the scoring rules.
const (
	CategorySaaS           = "SaaS"
	CategoryContent        = "Content"
	CategoryCommunity      = "Community"
	CategoryService        = "Service"
	CategoryDigitalProduct = "Digital Product"
)

// IdeaTemplate is a catalog entry. Templates are fixed data and never mutated.
type IdeaTemplate struct {
	ID                      string              `json:"id"`
	Title                   string              `json:"title"`
	Tagline                 string              `json:"tagline"`
	Category                string              `json:"category"`
	Problem                 string              `json:"problem"`
	Solution                string              `json:"solution"`
	RequiredSkills          []string            `json:"requiredSkills"`
	CapitalNeeded           string              `json:"capitalNeeded"`
	TimeToFirstRevenue      string              `json:"timeToFirstRevenue"`
	RiskLevel               RiskLevel           `json:"riskLevel"`
	ExecutionComplexity     ExecutionComplexity `json:"executionComplexity"`
	RevenueModel            string              `json:"revenueModel"`
	PotentialMonthlyRevenue string              `json:"potentialMonthlyRevenue"`
	MVPScope                []string            `json:"mvpScope"`
	GoToMarketWedge         string              `json:"goToMarketWedge"`
	SevenDayPlan            []string            `json:"sevenDayPlan"`
	KillCriteria            []string            `json:"killCriteria"`
	WhyNow                  string              `json:"whyNow"`
}

// RequiresSkill reports whether skill is listed in RequiredSkills.
func (t IdeaTemplate) RequiresSkill(skill string) bool {
	for _, s := range t.RequiredSkills {
		if s == skill {
			return true
		}
	}
	return false
}

// BusinessIdea is a template annotated for one founder.
type BusinessIdea struct {
	IdeaTemplate
	MatchScore int    `json:"matchScore"`
	WhyYou     string `json:"whyYou"`
}

type FactorCategory string

const (
	FactorTime        FactorCategory = "time"
	FactorCapital     FactorCategory = "capital"
	FactorSkills      FactorCategory = "skills"
	FactorRisk        FactorCategory = "risk"
	FactorPreferences FactorCategory = "preferences"
)

type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNeutral  Impact = "neutral"
	ImpactNegative Impact = "negative"
)

// MatchFactor is one scoring rule that fired for a (profile, idea) pair.
type MatchFactor struct {
	ID           string         `json:"id"`
	Category     FactorCategory `json:"category"`
	Label        string         `json:"label"`
	Description  string         `json:"description"`
	Impact       Impact         `json:"impact"`
	Points       int            `json:"points"`
	ProfileValue string         `json:"profileValue"`
	IdeaValue    string         `json:"ideaValue"`
}
