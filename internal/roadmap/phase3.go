package roadmap

import (
	"github.com/jonathan/careerpath/internal/effort"
	"github.com/jonathan/careerpath/internal/types"
)

// buildPhase3 assembles the activation phase: resume, portfolio, interview
// practice, and the application campaign. The resume action escalates to a
// high-priority rebuild when the resume carries no quantified metrics.
func buildPhase3(p *types.Profile, timelineNote string, weeklyHours int) types.Phase {
	resumeTitle := "PRIORITY: Rebuild resume with quantified metrics"
	resumePriority := types.PriorityHigh
	resumeReason := "Your resume lacks quantified impact metrics - this is the #1 resume mistake"
	if p.HasMetrics {
		resumeTitle = "Enhance your resume with stronger metrics and impact"
		resumePriority = types.PriorityMedium
		resumeReason = ""
	}

	actions := []types.Action{
		{
			ID:                actionResumeRebuild,
			Title:             resumeTitle,
			Link:              "https://www.joinleland.com/library?categories=resumes-cover-letters",
			Skills:            []string{"Resume optimization", "Impact quantification", "Storytelling"},
			EffortHours:       10,
			Time:              effort.FormatDuration(10, weeklyHours),
			Priority:          resumePriority,
			Reason:            resumeReason,
			ResumeImpact:      "Transform every bullet into results-driven statements that pass ATS screening and catch recruiter attention. A strong resume is your ticket to getting interviews.",
			CompletionOutcome: "After completing this step, you'll have a polished, metrics-driven resume that clearly demonstrates PM skills and impact. You'll get past ATS systems and earn callbacks from recruiters.",
			HowToTips:         resumeRebuildTips,
			PracticalSteps:    resumeRebuildSteps,
		},
		{
			ID:                actionPortfolio,
			Title:             "Create a PM portfolio website with 2-3 case studies",
			Link:              "https://www.notion.so/templates/portfolio",
			Skills:            []string{"Portfolio building", "Storytelling", "Personal branding"},
			EffortHours:       18,
			Time:              effort.FormatDuration(18, weeklyHours),
			Priority:          types.PriorityHigh,
			ResumeImpact:      `Add to resume header: "Portfolio: yourname.com" and reference in interviews: "As you can see in my portfolio case study on [X]..." - differentiates you from candidates with just resumes.`,
			CompletionOutcome: "After completing this step, you'll have a professional portfolio showcasing your product thinking, giving recruiters and hiring managers concrete examples of your PM skills beyond your resume.",
			HowToTips:         portfolioTips,
			PracticalSteps:    portfolioSteps,
		},
		{
			ID:                actionMockInterviews,
			Title:             "Complete 5 mock PM interviews with Leland coaches or peers",
			Link:              "https://www.joinleland.com/coaching/product-management/interview-prep",
			Skills:            []string{"Interview skills", "Communication", "Product thinking", "Confidence"},
			EffortHours:       20,
			Time:              effort.FormatDuration(20, weeklyHours),
			Priority:          types.PriorityHigh,
			ResumeImpact:      "Directly improves your interview performance through practice and feedback. You'll be calm, structured, and confident when real interviews come.",
			CompletionOutcome: "After completing this step, you'll walk into PM interviews with confidence, handle any case type (product design, strategy, metrics), and articulate your thinking clearly under pressure.",
			HowToTips:         mockInterviewTips,
			PracticalSteps:    mockInterviewSteps,
		},
		{
			ID:                actionApplications,
			Title:             "Apply to 30-50 PM roles with tailored applications and network strategically",
			Skills:            []string{"Job search strategy", "Networking", "Personal branding", "Persistence"},
			EffortHours:       40,
			Time:              effort.FormatDuration(40, weeklyHours) + " (ongoing)",
			Priority:          types.PriorityHigh,
			ResumeImpact:      "Maximizes your chances of landing interviews through strategic applications and networking. Referrals dramatically increase callback rates compared to cold applications.",
			CompletionOutcome: "After completing this step, you'll have a full application pipeline, meaningful connections with PMs at target companies, and multiple interview opportunities to convert your preparation into offers.",
			HowToTips:         applicationTips,
			PracticalSteps:    applicationSteps,
		},
	}

	return types.Phase{
		Title:        "Polish & Activate",
		Description:  "Prepare for PM internships or entry-level roles",
		TimelineNote: timelineNote,
		Actions:      actions,
	}
}
