// Package types provides type definitions for structured data used throughout the careerpath system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillNotDetected is the sentinel reported when no skills could be extracted
// from the resume text. Callers must treat it as "no skills detected", never as
// a real skill.
const SkillNotDetected = "Not detected - add specific skills to resume"

// RoleNotDetected is the sentinel used when no current role could be extracted.
const RoleNotDetected = "Not detected"

// EducationLevel is the coarse education bucket detected from resume text.
type EducationLevel string

const (
	EducationGraduate   EducationLevel = "Graduate degree"
	EducationBachelors  EducationLevel = "Bachelor's degree (in progress)"
	EducationHighSchool EducationLevel = "High school"
	EducationUnknown    EducationLevel = "Unknown"
)

// Profile is the structured extraction result from resume text.
// It is derived purely from the input text: classifying identical text twice
// yields structurally identical Profiles.
type Profile struct {
	Skills               []string       `json:"skills"`
	CurrentRoles         []string       `json:"current_roles,omitempty"`
	CurrentRole          string         `json:"current_role"`
	IsGraduated          bool           `json:"is_graduated"`
	IsStudent            bool           `json:"is_student"`
	EducationLevel       EducationLevel `json:"education_level"`
	HasProductExperience bool           `json:"has_product_experience"`
	HasMetrics           bool           `json:"has_metrics"`
	HasLeadership        bool           `json:"has_leadership"`
	TextLength           int            `json:"text_length"`
	CampusActivities     []string       `json:"campus_activities,omitempty"`
	PastInternships      []string       `json:"past_internships,omitempty"`
}

// HasSkill reports whether the profile contains the given canonical skill.
// The SkillNotDetected sentinel never counts as a skill.
func (p *Profile) HasSkill(name string) bool {
	if name == SkillNotDetected {
		return false
	}
	for _, s := range p.Skills {
		if s == name {
			return true
		}
	}
	return false
}

// HasAnySkill reports whether the profile contains at least one of the given skills.
func (p *Profile) HasAnySkill(names ...string) bool {
	for _, name := range names {
		if p.HasSkill(name) {
			return true
		}
	}
	return false
}

// RealSkills returns the detected skills with the sentinel filtered out.
func (p *Profile) RealSkills() []string {
	skills := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		if s != SkillNotDetected {
			skills = append(skills, s)
		}
	}
	return skills
}

// SkillCount returns the number of real detected skills.
func (p *Profile) SkillCount() int {
	return len(p.RealSkills())
}
