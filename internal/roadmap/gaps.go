package roadmap

import (
	"fmt"
	"strings"

	"github.com/jonathan/careerpath/internal/types"
)

// resumeBrevityThreshold is the text length under which a resume without
// product experience is called out as too brief.
const resumeBrevityThreshold = 2000

// noGapsFallback is emitted when every checked dimension comes back strong.
const noGapsFallback = "Your resume is strong! Focus on deepening product experience."

// buildGaps appends one diagnostic per checked dimension: product experience,
// metrics, leadership, SQL, Python/analytics, general skill coverage, and
// resume brevity. Strengths are acknowledged with tailored wording rather than
// silently skipped.
func buildGaps(p *types.Profile) []string {
	var gaps []string

	if !p.HasProductExperience {
		gaps = append(gaps, "No direct product management or product thinking experience mentioned")
	} else {
		gaps = append(gaps, fmt.Sprintf("You have PM-related experience (%s), but deepening product strategy and execution skills will strengthen your candidacy", p.CurrentRole))
	}

	if !p.HasMetrics {
		gaps = append(gaps, "Resume lacks quantified impact metrics (percentages, numbers, results) - this is the #1 resume weakness")
	} else {
		gaps = append(gaps, "You have some quantified metrics - consider adding more specific numbers to every bullet point")
	}

	if !p.HasLeadership {
		gaps = append(gaps, "No clear leadership experience visible on resume")
	} else {
		gaps = append(gaps, "You have leadership experience - make sure it's highlighted prominently")
	}

	if !p.HasSkill("SQL") {
		gaps = append(gaps, "Missing critical technical skill: SQL (essential for PM data literacy)")
	}
	if !p.HasAnySkill("Python", "Analytics", "Data Analysis") {
		gaps = append(gaps, "Limited analytics capabilities - learning Python or advanced Excel/analytics would strengthen your profile")
	}

	skills := p.RealSkills()
	if len(skills) >= 3 {
		gaps = append(gaps, fmt.Sprintf("Your existing skills (%s) are a good foundation - focus on PM-specific skills like user research and product strategy", strings.Join(skills[:3], ", ")))
	} else if len(skills) == 0 {
		gaps = append(gaps, `Very few detectable skills on resume - add a clear "Skills" section with technical and soft skills`)
	}

	if !p.HasProductExperience && p.TextLength < resumeBrevityThreshold {
		gaps = append(gaps, "Resume is too brief - add more detail about your impact, responsibilities, and accomplishments")
	}

	if len(gaps) == 0 {
		gaps = append(gaps, noGapsFallback)
	}
	return gaps
}

// missingTechnicalSkills returns the technical gap identifiers for a profile.
// Paired skills ("Python/Analytics", "Excel or Tableau") only count as missing
// when every member of the pair is absent.
func missingTechnicalSkills(p *types.Profile) []string {
	var missing []string
	if !p.HasSkill("SQL") {
		missing = append(missing, "SQL")
	}
	if !p.HasAnySkill("Python", "Analytics", "Data Analysis") {
		missing = append(missing, "Python/Analytics")
	}
	if !p.HasAnySkill("Excel", "Tableau") {
		missing = append(missing, "Excel or Tableau")
	}
	return missing
}

// missingPMSkills returns the PM-specific gap identifiers for a profile.
func missingPMSkills(p *types.Profile) []string {
	var missing []string
	if !p.HasAnySkill("User Research", "Research") {
		missing = append(missing, "User Research")
	}
	if !p.HasSkill("A/B Testing") {
		missing = append(missing, "A/B Testing")
	}
	if !p.HasSkill("Product Strategy") {
		missing = append(missing, "Product Strategy")
	}
	if !p.HasAnySkill("Wireframing", "Figma") {
		missing = append(missing, "Wireframing/Design tools")
	}
	return missing
}

// buildStrengths collects observed strengths: up to five detected skills plus
// the signal flags that came back positive.
func buildStrengths(p *types.Profile) []string {
	var strengths []string

	skills := p.RealSkills()
	if len(skills) > 5 {
		skills = skills[:5]
	}
	strengths = append(strengths, skills...)

	if p.HasMetrics {
		strengths = append(strengths, "Quantified impact on resume")
	}
	if p.HasLeadership {
		strengths = append(strengths, "Leadership experience")
	}
	if p.HasProductExperience {
		strengths = append(strengths, "Product-related experience")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Ready to build new PM skills!")
	}
	return strengths
}
