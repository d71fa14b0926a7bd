// Package profilestest holds founder profiles shared by worker tests.
package profilestest

import (
	"encoding/json"
	"testing"

	"idea-match-workers/internal/models"
)

// LowResourceWriter is a part-time, risk-averse writer with no capital.
// The niche newsletter is its best match.
func LowResourceWriter() models.FounderProfile {
	return models.FounderProfile{
		EmploymentStatus:      models.EmploymentEmployed,
		HoursPerWeek:          5,
		RiskTolerance:         2,
		CapitalAvailable:      models.CapitalZero,
		TechnicalAbility:      models.TechNone,
		MarketingComfort:      2,
		HasWritingSkills:      true,
		StressTolerance:       4,
		NeedsPredictability:   true,
		PreferredBusinessType: models.BusinessBoth,
		TimeHorizon:           models.HorizonFlexible,
		TeamPreference:        models.TeamSolo,
		RolePreference:        models.RoleBuilder,
		PersonalityType: models.PersonalityType{
			BuilderVsOptimizer:   3,
			VisionaryVsExecutor:  5,
			StructureVsAmbiguity: 2,
		},
	}
}

// FundedDeveloper is a full-time developer with capital and an audience.
func FundedDeveloper() models.FounderProfile {
	return models.FounderProfile{
		EmploymentStatus:   models.EmploymentSelfEmployed,
		HoursPerWeek:       35,
		RiskTolerance:      8,
		CapitalAvailable:   models.CapitalOver5k,
		TechnicalAbility:   models.TechDeveloper,
		MarketingComfort:   8,
		HasSalesExperience: true,
		ExistingAudience: models.ExistingAudience{
			HasAudience: true,
			Size:        5000,
			Platform:    "LinkedIn",
		},
		StressTolerance:       8,
		PreferredBusinessType: models.BusinessB2B,
		TimeHorizon:           models.HorizonQuickCash,
		TeamPreference:        models.TeamEither,
		RolePreference:        models.RoleBoth,
		PersonalityType: models.PersonalityType{
			BuilderVsOptimizer:   7,
			VisionaryVsExecutor:  5,
			StructureVsAmbiguity: 7,
		},
	}
}

// JSON marshals p or fails the test.
func JSON(t testing.TB, p models.FounderProfile) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal profile: %v", err)
	}
	return data
}
