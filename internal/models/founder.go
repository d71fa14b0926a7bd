// internal/models/founder.go
package models

type EmploymentStatus string

const (
	EmploymentEmployed     EmploymentStatus = "employed"
	EmploymentSelfEmployed EmploymentStatus = "self-employed"
	EmploymentUnemployed   EmploymentStatus = "unemployed"
	EmploymentStudent      EmploymentStatus = "student"
	EmploymentRetired      EmploymentStatus = "retired"
)

// CapitalBucket is an ordered bucket of cash the founder can put in.
type CapitalBucket string

const (
	CapitalZero    CapitalBucket = "$0"
	CapitalUnder1k CapitalBucket = "<$1k"
	Capital1kTo5k  CapitalBucket = "$1k-$5k"
	CapitalOver5k  CapitalBucket = "$5k+"
)

type TechnicalAbility string

const (
	TechNone      TechnicalAbility = "none"
	TechNoCode    TechnicalAbility = "no-code"
	TechSomeCode  TechnicalAbility = "some-code"
	TechDeveloper TechnicalAbility = "developer"
)

type BusinessType string

const (
	BusinessB2B  BusinessType = "b2b"
	BusinessB2C  BusinessType = "b2c"
	BusinessBoth BusinessType = "both"
)

type BusinessModel string

const (
	ModelSaaS        BusinessModel = "saas"
	ModelService     BusinessModel = "service"
	ModelContent     BusinessModel = "content"
	ModelMarketplace BusinessModel = "marketplace"
	ModelProduct     BusinessModel = "product"
)

type TimeHorizon string

const (
	HorizonQuickCash TimeHorizon = "quick-cash"
	HorizonLongTerm  TimeHorizon = "long-term"
	HorizonFlexible  TimeHorizon = "flexible"
)

type TeamPreference string

const (
	TeamSolo   TeamPreference = "solo"
	TeamTeam   TeamPreference = "team"
	TeamEither TeamPreference = "either"
)

type RolePreference string

const (
	RoleBuilder  RolePreference = "builder"
	RoleOperator RolePreference = "operator"
	RoleBoth     RolePreference = "both"
)

type ExistingAudience struct {
	HasAudience bool   `json:"hasAudience"`
	Size        int    `json:"size,omitempty"`
	Platform    string `json:"platform,omitempty"`
}

// PersonalityType holds three 1-10 sliders from the questionnaire.
type PersonalityType struct {
	BuilderVsOptimizer   int `json:"builderVsOptimizer"`
	VisionaryVsExecutor  int `json:"visionaryVsExecutor"`
	StructureVsAmbiguity int `json:"structureVsAmbiguity"`
}

// FounderProfile is the questionnaire result for one user. IndustryExperience,
// the obligation flags and RolePreference are stored but not scored.
type FounderProfile struct {
	EmploymentStatus      EmploymentStatus `json:"employmentStatus"`
	HoursPerWeek          int              `json:"hoursPerWeek"`
	MonthlyIncomeGoal     int              `json:"monthlyIncomeGoal"`
	RiskTolerance         int              `json:"riskTolerance"`
	CapitalAvailable      CapitalBucket    `json:"capitalAvailable"`
	TechnicalAbility      TechnicalAbility `json:"technicalAbility"`
	MarketingComfort      int              `json:"marketingComfort"`
	HasWritingSkills      bool             `json:"hasWritingSkills"`
	HasVideoSkills        bool             `json:"hasVideoSkills"`
	HasSalesExperience    bool             `json:"hasSalesExperience"`
	ExistingAudience      ExistingAudience `json:"existingAudience"`
	IndustryExperience    []string         `json:"industryExperience,omitempty"`
	HasFamilyObligations  bool             `json:"hasFamilyObligations"`
	GeographicLimits      bool             `json:"geographicLimits"`
	HasLegalRestrictions  bool             `json:"hasLegalRestrictions"`
	StressTolerance       int              `json:"stressTolerance"`
	NeedsPredictability   bool             `json:"needsPredictability"`
	PreferredBusinessType BusinessType     `json:"preferredBusinessType"`
	PreferredModel        []BusinessModel  `json:"preferredModel,omitempty"`
	TimeHorizon           TimeHorizon      `json:"timeHorizon"`
	TeamPreference        TeamPreference   `json:"teamPreference"`
	RolePreference        RolePreference   `json:"rolePreference"`
	PersonalityType       PersonalityType  `json:"personalityType"`
}

// HasLowCapital reports whether the founder has less than $1k to invest.
func (p FounderProfile) HasLowCapital() bool {
	return p.CapitalAvailable == CapitalZero || p.CapitalAvailable == CapitalUnder1k
}

type FounderProfileSummary struct {
	FounderType         string   `json:"founderType"`
	ExecutionStrengths  []string `json:"executionStrengths"`
	BlindSpots          []string `json:"blindSpots"`
	IdealBusinessModels []string `json:"idealBusinessModels"`
	AntiPatterns        []string `json:"antiPatterns"`
	WeeklyCapacityScore int      `json:"weeklyCapacityScore"`
}
