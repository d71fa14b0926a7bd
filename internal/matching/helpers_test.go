package matching

import "idea-match-workers/internal/models"

// lowResourceWriter is the part-time, risk-averse writer used across tests.
func lowResourceWriter() models.FounderProfile {
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
		PersonalityType: models.PersonalityType{
			BuilderVsOptimizer:   3,
			VisionaryVsExecutor:  5,
			StructureVsAmbiguity: 2,
		},
	}
}

// fundedDeveloper fires most positive summary rules at once.
func fundedDeveloper() models.FounderProfile {
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
		PersonalityType: models.PersonalityType{
			BuilderVsOptimizer:   7,
			VisionaryVsExecutor:  5,
			StructureVsAmbiguity: 7,
		},
	}
}

func mustLookup(id string) models.IdeaTemplate {
	idea, ok := DefaultCatalog().Lookup(id)
	if !ok {
		panic("unknown idea " + id)
	}
	return idea
}

func factorIDs(factors []models.MatchFactor) []string {
	ids := make([]string, len(factors))
	for i, f := range factors {
		ids[i] = f.ID
	}
	return ids
}
