package roadmap

import (
	"fmt"
	"strings"

	"github.com/jonathan/careerpath/internal/effort"
	"github.com/jonathan/careerpath/internal/types"
)

// buildPhase1 assembles the foundational skill-building phase. The action set
// depends on which technical skills the resume is missing; ADVANCED users skip
// the introductory PM course entirely.
func buildPhase1(p *types.Profile, tier types.Tier, missingTechnical []string, motivationNote string, weeklyHours int) types.Phase {
	var actions []types.Action

	if tier.Level != types.TierAdvanced {
		pm101Hours := effort.Adjust(4, p, effort.CategoryPMFundamentals)
		pm101Priority := types.PriorityHigh
		if p.HasProductExperience {
			pm101Priority = types.PriorityMedium
		}
		actions = append(actions, types.Action{
			ID:                actionPM101,
			Title:             `Watch "Product Management 101: A Quick Guide" on Leland`,
			Link:              "https://www.joinleland.com/content/course/urn:course:68c9492fdf84b203d53079e7/urn:contentEntry:68962dc18fe444e03d5a84a9",
			Skills:            []string{"Product strategy", "PM fundamentals", "Role understanding"},
			EffortHours:       pm101Hours,
			Time:              effort.FormatDuration(pm101Hours, weeklyHours),
			Priority:          pm101Priority,
			ResourceType:      "Video Course",
			Provider:          "Leland",
			Why:               "Get a concise overview of what PMs actually do day-to-day and understand if this role aligns with your interests. This foundation helps you speak confidently about the PM role in interviews.",
			HowTo:             "Watch the full course on Leland, take notes on key concepts like product discovery, roadmapping, and stakeholder management. Jot down questions to research further or discuss with PMs you know.",
			ResumeImpact:      "Gives you foundational PM knowledge to speak confidently in interviews and networking conversations. You'll understand PM terminology and be able to discuss what PMs actually do day-to-day.",
			CompletionOutcome: "After completing this step, you'll understand the core responsibilities of a PM, know the difference between product discovery and delivery, and be able to articulate why you want to be a PM.",
			HowToTips:         pm101Tips,
			PracticalSteps:    pm101Steps,
		})
	}

	if containsString(missingTechnical, "SQL") {
		sqlHours := effort.Adjust(15, p, effort.CategorySQL)
		actions = append(actions, types.Action{
			ID:                   actionLearnSQL,
			Title:                "PRIORITY: Learn SQL basics for data-driven product decisions",
			Link:                 "https://www.datacamp.com/courses/introduction-to-sql",
			Skills:               []string{"SQL basics", "Data literacy", "Query writing"},
			EffortHours:          sqlHours,
			Time:                 effort.FormatDuration(sqlHours, weeklyHours),
			Priority:             types.PriorityHigh,
			Reason:               "SQL is missing from your resume - critical for PM data literacy",
			ResourceType:         "Interactive Course",
			Provider:             "DataCamp",
			Why:                  "PMs need to analyze data independently to make informed decisions. SQL allows you to query databases, understand user behavior, and validate hypotheses without always relying on data analysts.",
			HowTo:                "Start with SELECT statements, learn JOIN operations, then practice with real datasets. Focus on understanding business questions you can answer with data.",
			ResumeImpact:         `Add "SQL" to your technical skills section and demonstrate data literacy that PMs need to work with engineers and analysts. In interviews, you'll be able to discuss how you'd query data to answer product questions.`,
			CompletionOutcome:    "After completing this step, you'll be able to write basic SQL queries to analyze user data, calculate key metrics like retention and conversion rates, and speak confidently about data analysis in PM interviews.",
			HowToTips:            learnSQLTips,
			PracticalSteps:       learnSQLSteps,
			AlternativeResources: learnSQLAlternatives,
		})
	} else {
		actions = append(actions, types.Action{
			ID:                actionLevelUpSQL,
			Title:             "You have SQL - Learn advanced data analysis and visualization",
			Link:              "https://www.coursera.org/learn/data-analysis-with-python",
			Skills:            []string{"Advanced SQL", "Data analysis", "Python for data"},
			EffortHours:       12,
			Time:              effort.FormatDuration(12, weeklyHours),
			Priority:          types.PriorityLow,
			ResourceType:      "Course",
			Provider:          "Coursera",
			Why:               "Since you already know SQL basics, level up with advanced queries, window functions, and data visualization to tell compelling product stories with data.",
			ResumeImpact:      `Strengthen your technical skills section with "Advanced SQL (window functions, CTEs)" and "Python (Pandas, data analysis)"`,
			CompletionOutcome: "After completing this step, you'll be able to perform complex data analysis, create compelling visualizations, and present data-driven insights that influence product decisions.",
		})
	}

	if containsString(missingTechnical, "Python/Analytics") {
		analyticsHours := effort.Adjust(18, p, effort.CategoryAnalytics)
		actions = append(actions, types.Action{
			ID:                   actionAnalytics,
			Title:                "Build analytics skills with Python or Excel fundamentals",
			Link:                 "https://www.coursera.org/learn/python-data-analysis",
			Skills:               []string{"Analytics", "Data interpretation", "Python basics"},
			EffortHours:          analyticsHours,
			Time:                 effort.FormatDuration(analyticsHours, weeklyHours),
			Priority:             types.PriorityMedium,
			Reason:               "Analytics skills help you understand metrics and make data-driven decisions",
			ResourceType:         "Course",
			Provider:             "Coursera",
			Why:                  "PMs constantly analyze metrics like conversion rates, retention, and engagement. Understanding how to manipulate and visualize data helps you identify trends and opportunities.",
			ResumeImpact:         `Add "Python (Pandas, data analysis)" or "Excel (pivot tables, data analysis)" to skills section. More importantly, this enables you to independently analyze metrics and make data-driven product decisions.`,
			CompletionOutcome:    "After completing this step, you'll be able to calculate and interpret key product metrics (conversion, retention, engagement), create dashboards, and use data to support your product recommendations.",
			HowToTips:            analyticsTips,
			PracticalSteps:       analyticsSteps,
			AlternativeResources: analyticsAlternatives,
		})
	}

	actions = append(actions, types.Action{
		ID:                actionInternet,
		Title:             `Study "How the Internet Works" and technical concepts for PMs on Leland`,
		Link:              "https://www.joinleland.com/content/course/urn:course:68cdbfae8401006b4d409a7c/urn:contentEntry:68c8e21c377d02b6b073d5b4",
		Skills:            []string{"Technical knowledge", "System design", "APIs", "Networks"},
		EffortHours:       5,
		Time:              effort.FormatDuration(5, weeklyHours),
		Priority:          types.PriorityHigh,
		ResourceType:      "Guide",
		Provider:          "Leland",
		Why:               "Even non-technical PMs need to communicate with engineers. Understanding how the internet works, APIs, databases, and system architecture helps you write better requirements, estimate timelines, and earn engineering team respect.",
		HowTo:             "Read through the guide, then practice explaining concepts out loud as if teaching someone. Try diagramming a simple system (like Instagram) to test your understanding.",
		ResumeImpact:      "Enables you to discuss technical concepts fluently in interviews and work effectively with engineering teams. You'll understand system design trade-offs and speak the same language as engineers.",
		CompletionOutcome: "After completing this step, you'll be able to explain how web applications work, understand basic system architecture, and confidently discuss technical implementation with engineering teams.",
		HowToTips:         internetTips,
		PracticalSteps:    internetSteps,
	})

	actions = append(actions, types.Action{
		ID:                actionProductTeardowns,
		Title:             "Analyze 3 products you use daily - document features, user flows, and business model",
		Skills:            []string{"Product analysis", "Critical thinking", "User flow mapping", "Business strategy"},
		EffortHours:       8,
		Time:              effort.FormatDuration(8, weeklyHours),
		Priority:          types.PriorityHigh,
		ResourceType:      "Self-guided practice",
		Why:               "Product sense - the ability to think critically about why products work - is the #1 skill PMs need. Analyzing existing products trains you to spot patterns, understand trade-offs, and think like a PM.",
		HowTo:             teardownHowTo,
		ResumeImpact:      `Add to portfolio as case studies and reference in interviews: "I analyzed Spotify's recommendation algorithm and identified 3 ways it drives retention" - demonstrates product thinking without needing work experience.`,
		CompletionOutcome: "After completing this step, you'll have 3 polished product analyses in your portfolio and be able to thoughtfully discuss product strategy, trade-offs, and business models in interviews.",
		HowToTips:         teardownTips,
		PracticalSteps:    teardownSteps,
	})

	actions = append(actions, types.Action{
		ID:                actionReadInspired,
		Title:             `Read "Inspired: How to Create Tech Products Customers Love" by Marty Cagan`,
		Link:              "https://www.amazon.com/INSPIRED-Create-Tech-Products-Customers/dp/1119387507",
		Skills:            []string{"Product mindset", "User-centric thinking", "Product discovery", "Team dynamics"},
		EffortHours:       15,
		Time:              effort.FormatDuration(15, weeklyHours),
		Priority:          types.PriorityMedium,
		ResourceType:      "Book",
		Provider:          "Amazon",
		Why:               "This is THE foundational PM book. It teaches you how great product teams work, how to discover what to build, and how to empower teams to solve customer problems. Every PM interview will reference concepts from this book.",
		HowTo:             inspiredHowTo,
		ResumeImpact:      "Equips you with foundational PM frameworks and vocabulary that will come up in every interview. You'll be able to discuss product discovery, empowered teams, and outcome-based thinking with confidence.",
		CompletionOutcome: "After completing this step, you'll understand core PM principles like product discovery vs delivery, outcome-based planning, and customer-centric thinking. You'll speak the same language as experienced PMs in interviews.",
		HowToTips:         inspiredTips,
		PracticalSteps:    inspiredSteps,
		StudyGuide:        inspiredStudyGuide,
	})

	description := "Strengthen your technical and strategic knowledge"
	if len(missingTechnical) > 0 {
		description = fmt.Sprintf("Gain critical skills you're missing: %s", strings.Join(missingTechnical, ", "))
	}

	return types.Phase{
		Title:          "Build Product Foundations",
		Description:    description,
		MotivationNote: motivationNote,
		Actions:        actions,
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
