package matching

import "idea-match-workers/internal/models"

func builtinIdeas() []models.IdeaTemplate {
	return []models.IdeaTemplate{
		{
			ID:                      "niche-newsletter",
			Title:                   "Niche Newsletter Business",
			Tagline:                 "Own a small, loyal inbox audience and monetize it with sponsors.",
			Category:                models.CategoryContent,
			Problem:                 "Professionals in narrow fields drown in generic content and miss the few updates that matter to them.",
			Solution:                "A curated weekly newsletter for one niche, funded by sponsorships and an optional paid tier.",
			RequiredSkills:          []string{"Writing", "Research", "Consistency"},
			CapitalNeeded:           "$0-$100",
			TimeToFirstRevenue:      "4-8 weeks",
			RiskLevel:               models.RiskLow,
			ExecutionComplexity:     models.ComplexitySimple,
			RevenueModel:            "Sponsorships and paid subscriptions",
			PotentialMonthlyRevenue: "$500-$5,000",
			MVPScope: []string{
				"Pick one niche and define the reader",
				"Set up a free newsletter platform and landing page",
				"Publish four issues before pitching sponsors",
			},
			GoToMarketWedge: "Post issue highlights in the two communities where your readers already gather.",
			SevenDayPlan: []string{
				"Day 1: Choose the niche and list 20 sources",
				"Day 2: Set up the newsletter platform",
				"Day 3: Write issue #1",
				"Day 4: Invite 50 people you know in the niche",
				"Day 5: Share a highlight thread in one community",
				"Day 6: Write issue #2",
				"Day 7: Review open rates and subscriber replies",
			},
			KillCriteria: []string{
				"Fewer than 100 subscribers after 8 weeks",
				"Open rate below 30% for four issues in a row",
			},
			WhyNow: "Readers are moving away from algorithmic feeds toward trusted curators.",
		},
		{
			ID:                      "productized-service",
			Title:                   "Productized Freelance Service",
			Tagline:                 "Sell one well-defined outcome at a fixed price.",
			Category:                models.CategoryService,
			Problem:                 "Small businesses want a specific job done but hate scoping and negotiating custom projects.",
			Solution:                "A fixed-scope, fixed-price service with a clear deliverable and turnaround time.",
			RequiredSkills:          []string{"Sales", "Project management", "Domain expertise"},
			CapitalNeeded:           "$0-$200",
			TimeToFirstRevenue:      "1-2 weeks",
			RiskLevel:               models.RiskLow,
			ExecutionComplexity:     models.ComplexityModerate,
			RevenueModel:            "Fixed-price packages",
			PotentialMonthlyRevenue: "$2,000-$10,000",
			MVPScope: []string{
				"Define one deliverable and a price",
				"Build a one-page offer with a booking link",
				"Close three pilot clients",
			},
			GoToMarketWedge: "Direct outreach to 30 businesses that visibly need the deliverable.",
			SevenDayPlan: []string{
				"Day 1: Pick the deliverable and price",
				"Day 2: Write the offer page",
				"Day 3: Build a list of 30 prospects",
				"Day 4: Send the first 15 outreach messages",
				"Day 5: Send the remaining 15",
				"Day 6: Run discovery calls",
				"Day 7: Close or refine the offer",
			},
			KillCriteria: []string{
				"No paying client after 60 outreach messages",
				"Delivery takes more than twice the planned hours",
			},
			WhyNow: "Businesses are cutting agency retainers and buying narrow outcomes instead.",
		},
		{
			ID:                      "micro-saas",
			Title:                   "Micro-SaaS Tool",
			Tagline:                 "A small subscription tool that solves one annoying workflow.",
			Category:                models.CategorySaaS,
			Problem:                 "Teams glue tools together with spreadsheets and manual copy-paste.",
			Solution:                "A focused web app or integration that automates one recurring workflow.",
			RequiredSkills:          []string{"Programming", "Product design", "Customer support"},
			CapitalNeeded:           "$500-$2,000",
			TimeToFirstRevenue:      "2-3 months",
			RiskLevel:               models.RiskMedium,
			ExecutionComplexity:     models.ComplexityModerate,
			RevenueModel:            "Monthly subscriptions",
			PotentialMonthlyRevenue: "$1,000-$20,000",
			MVPScope: []string{
				"Interview ten users of the target workflow",
				"Ship the single automation behind a login",
				"Charge from day one with a simple plan",
			},
			GoToMarketWedge: "List the tool in the marketplace of the platform it integrates with.",
			SevenDayPlan: []string{
				"Day 1: Pick the workflow and the host platform",
				"Day 2: Run five user interviews",
				"Day 3: Sketch the smallest useful flow",
				"Day 4: Build the core automation",
				"Day 5: Add auth and billing",
				"Day 6: Onboard two beta users",
				"Day 7: Decide on pricing from their feedback",
			},
			KillCriteria: []string{
				"No beta user keeps using it after two weeks",
				"Fewer than three paying customers after three months",
			},
			WhyNow: "Platform marketplaces make distribution for small tools cheaper than ever.",
		},
		{
			ID:                      "paid-community",
			Title:                   "Paid Niche Community",
			Tagline:                 "Charge for access to peers who share a hard problem.",
			Category:                models.CategoryCommunity,
			Problem:                 "People working on a niche problem have no trusted place to compare notes.",
			Solution:                "A moderated membership community with events, templates, and peer support.",
			RequiredSkills:          []string{"Community building", "Marketing", "Facilitation"},
			CapitalNeeded:           "$100-$500",
			TimeToFirstRevenue:      "1-2 months",
			RiskLevel:               models.RiskMedium,
			ExecutionComplexity:     models.ComplexityModerate,
			RevenueModel:            "Monthly or annual memberships",
			PotentialMonthlyRevenue: "$1,000-$15,000",
			MVPScope: []string{
				"Recruit 20 founding members at a discount",
				"Run a weekly live session",
				"Publish a shared resource library",
			},
			GoToMarketWedge: "Host a free workshop and invite attendees to the founding cohort.",
			SevenDayPlan: []string{
				"Day 1: Define the member and the shared problem",
				"Day 2: Set up the community space",
				"Day 3: Announce a free workshop",
				"Day 4: Personally invite 40 people",
				"Day 5: Prepare the workshop",
				"Day 6: Run the workshop",
				"Day 7: Open founding memberships",
			},
			KillCriteria: []string{
				"Fewer than ten founding members after the first workshop",
				"Weekly active members below 30% after two months",
			},
			WhyNow: "Remote professionals pay for belonging and curated peers.",
		},
		{
			ID:                      "template-shop",
			Title:                   "Digital Template Shop",
			Tagline:                 "Sell ready-made templates that save people hours.",
			Category:                models.CategoryDigitalProduct,
			Problem:                 "People rebuild the same documents, dashboards, and trackers from scratch.",
			Solution:                "A storefront of polished templates for one tool and one audience.",
			RequiredSkills:          []string{"Design", "No-code tools", "Marketing"},
			CapitalNeeded:           "$0-$50",
			TimeToFirstRevenue:      "3-6 weeks",
			RiskLevel:               models.RiskLow,
			ExecutionComplexity:     models.ComplexitySimple,
			RevenueModel:            "One-time purchases and bundles",
			PotentialMonthlyRevenue: "$300-$4,000",
			MVPScope: []string{
				"Build three templates for one audience",
				"List them on a marketplace storefront",
				"Offer a free template as a lead magnet",
			},
			GoToMarketWedge: "Give away one template where the audience already asks for it.",
			SevenDayPlan: []string{
				"Day 1: Pick the tool and the audience",
				"Day 2: Build the free template",
				"Day 3: Build the first paid template",
				"Day 4: Set up the storefront",
				"Day 5: Share the free template in two communities",
				"Day 6: Build the second paid template",
				"Day 7: Review downloads and conversion",
			},
			KillCriteria: []string{
				"Fewer than 200 free downloads in a month",
				"No paid sale after 500 free downloads",
			},
			WhyNow: "No-code tools have large user bases that buy shortcuts.",
		},
	}
}
