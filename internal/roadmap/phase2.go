package roadmap

import (
	"github.com/jonathan/careerpath/internal/effort"
	"github.com/jonathan/careerpath/internal/types"
)

// buildPhase2 assembles the credibility-building phase. Students get
// campus-oriented actions; working professionals get actions that create PM
// proof points inside their current job.
func buildPhase2(p *types.Profile, missingPM []string, challengeNote string, weeklyHours int) types.Phase {
	var actions []types.Action

	if !p.IsGraduated {
		clubPriority := types.PriorityHigh
		if p.HasLeadership {
			clubPriority = types.PriorityLow
		}
		actions = []types.Action{
			{
				ID:                actionPMClub,
				Title:             "Join or start a Product Management club or case competition",
				Skills:            []string{"Case competition framework", "Teamwork", "Leadership", "PM Network"},
				EffortHours:       30,
				Time:              effort.FormatDuration(30, weeklyHours) + " (ongoing)",
				Priority:          clubPriority,
				ResumeImpact:      `Add as "VP of [University] PM Club" or "Member, Product Management Club" or "1st Place, [Competition Name] Case Competition" - shows PM commitment and provides leadership talking points.`,
				CompletionOutcome: "After completing this step, you'll have built a PM network, developed case solving skills, and can point to concrete leadership or involvement in PM community on your resume.",
				HowToTips:         pmClubTips,
				PracticalSteps:    pmClubSteps,
			},
			{
				ID:                actionStudentProject,
				Title:             "Lead a student project: Pick a real problem and design a solution",
				Skills:            []string{"Problem-solving", "User research", "Metrics thinking", "Leadership"},
				EffortHours:       50,
				Time:              effort.FormatDuration(50, weeklyHours),
				Priority:          types.PriorityHigh,
				ResumeImpact:      `Add as "Product Lead - [Project Name]" with 2-3 quantified results. Example: "Led 3-person team to design campus dining app, achieving 85% positive feedback from 50 beta testers" - this becomes your strongest PM experience bullet.`,
				CompletionOutcome: "After completing this step, you'll have a full product case study for your portfolio, tangible evidence of PM skills, and can tell the story of leading a product from idea to launch in interviews.",
				HowToTips:         studentProjectTips,
				PracticalSteps:    studentProjectSteps,
			},
			{
				ID:                actionCaseWorkshop,
				Title:             "Complete PM Case Study workshop on Leland",
				Link:              "https://www.joinleland.com/library?categories=product-management",
				Skills:            []string{"Case thinking", "Interview readiness", "Structured problem-solving"},
				EffortHours:       12,
				Time:              effort.FormatDuration(12, weeklyHours),
				Priority:          types.PriorityMedium,
				ResumeImpact:      "Prepares you to ace PM case interviews by mastering frameworks like CIRCLES, market sizing, and strategy cases. You'll be able to structure your thinking and communicate solutions clearly.",
				CompletionOutcome: "After completing this step, you'll confidently solve product design, strategy, and analytical cases in interviews using structured frameworks, and think out loud effectively.",
				HowToTips:         caseWorkshopTips,
				PracticalSteps:    caseWorkshopSteps,
			},
		}
	} else {
		interviewPriority := types.PriorityMedium
		if containsString(missingPM, "User Research") {
			interviewPriority = types.PriorityHigh
		}
		actions = []types.Action{
			{
				ID:                actionInitiative,
				Title:             "Propose & lead a product initiative at your current company",
				Skills:            []string{"Product ownership", "Leadership", "Cross-functional collaboration", "Initiative"},
				EffortHours:       60,
				Time:              effort.FormatDuration(60, weeklyHours),
				Priority:          types.PriorityHigh,
				ResumeImpact:      `Add new resume bullet: "Led cross-functional initiative reducing support tickets by 35%, impacting 500+ daily users" - shows you can drive PM work without the title.`,
				CompletionOutcome: "After completing this step, you'll have proven PM experience, a case study showing end-to-end product thinking, and concrete evidence of your ability to lead initiatives and deliver measurable results.",
				HowToTips:         initiativeTips,
				PracticalSteps:    initiativeSteps,
			},
			{
				ID:                actionUserInterviews,
				Title:             "Conduct user interviews (10-15) for your initiative or a product feature",
				Skills:            []string{"User research", "Empathy", "Product insight", "Interview techniques"},
				EffortHours:       18,
				Time:              effort.FormatDuration(18, weeklyHours),
				Priority:          interviewPriority,
				ResumeImpact:      `Add to resume: "Conducted 15 user interviews uncovering 3 key pain points that informed product roadmap, improving satisfaction by 40%" - demonstrates core PM research capability.`,
				CompletionOutcome: "After completing this step, you'll know how to conduct effective user research, extract actionable insights from qualitative data, and use customer feedback to drive product decisions.",
				HowToTips:         interviewsTips,
				PracticalSteps:    interviewsSteps,
			},
			{
				ID:                actionCaseWorkshop,
				Title:             "Complete PM Case Study workshop on Leland",
				Link:              "https://www.joinleland.com/library?categories=product-management",
				Skills:            []string{"Case thinking", "Communication", "Structured problem-solving"},
				EffortHours:       12,
				Time:              effort.FormatDuration(12, weeklyHours),
				Priority:          types.PriorityMedium,
				ResumeImpact:      "Prepares you to ace PM case interviews with frameworks for product design, strategy, and analytical problems. You'll structure ambiguous questions and communicate solutions clearly.",
				CompletionOutcome: "After completing this step, you'll confidently tackle any PM case interview using frameworks like CIRCLES and market sizing, and articulate your thinking process effectively.",
				HowToTips:         caseWorkshopAltTips,
				PracticalSteps:    caseWorkshopAltSteps,
			},
		}
	}

	return types.Phase{
		Title:         "Build Product Credibility",
		Description:   "Create concrete PM experience to put on your resume",
		ChallengeNote: challengeNote,
		Actions:       actions,
	}
}
