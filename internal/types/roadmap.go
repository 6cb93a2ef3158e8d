package types

// Priority indicates how urgent a roadmap action is for the user.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// PhaseCount is the fixed number of phases in every roadmap.
// Phase identity is positional: 0 = foundations, 1 = credibility, 2 = polish.
const PhaseCount = 3

// Resource is a named alternative learning resource for an action.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// StudyGuideSection covers one part of a book study guide.
type StudyGuideSection struct {
	Section             string   `json:"section"`
	Timeframe           string   `json:"timeframe"`
	KeyTopics           []string `json:"key_topics"`
	ReflectionQuestions []string `json:"reflection_questions"`
	ActionItems         []string `json:"action_items"`
}

// StudyGuide is a structured reading companion attached to a book action.
type StudyGuide struct {
	Overview     string              `json:"overview"`
	Chapters     []StudyGuideSection `json:"chapters"`
	FinalProject string              `json:"final_project"`
}

// Action represents one roadmap task. Every action carries a stable ID assigned
// at creation time; completion and edit overlay state is keyed by that ID so it
// survives insertion, deletion, and reordering of other actions.
//
// EffortHours is the authoritative numeric estimate; Time is the presentational
// duration string derived from it and the user's weekly commitment. Aggregation
// sums EffortHours directly and only falls back to parsing Time for
// caller-added actions that never set a numeric estimate.
type Action struct {
	ID                   string      `json:"id"`
	Title                string      `json:"title"`
	Link                 string      `json:"link,omitempty"`
	Skills               []string    `json:"skills"`
	EffortHours          int         `json:"effort_hours"`
	Time                 string      `json:"time"`
	Priority             Priority    `json:"priority"`
	Reason               string      `json:"reason,omitempty"`
	ResourceType         string      `json:"resource_type,omitempty"`
	Provider             string      `json:"provider,omitempty"`
	Why                  string      `json:"why,omitempty"`
	HowTo                string      `json:"how_to,omitempty"`
	ResumeImpact         string      `json:"resume_impact,omitempty"`
	CompletionOutcome    string      `json:"completion_outcome,omitempty"`
	HowToTips            []string    `json:"how_to_tips,omitempty"`
	PracticalSteps       []string    `json:"practical_steps,omitempty"`
	AlternativeResources []Resource  `json:"alternative_resources,omitempty"`
	StudyGuide           *StudyGuide `json:"study_guide,omitempty"`
	IsCustom             bool        `json:"is_custom,omitempty"`
}

// Phase is one of the three fixed sequential groupings of actions.
// Action order within a phase is meaningful and user-visible (earlier = do first).
type Phase struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	MotivationNote string   `json:"motivation_note,omitempty"`
	ChallengeNote  string   `json:"challenge_note,omitempty"`
	TimelineNote   string   `json:"timeline_note,omitempty"`
	Actions        []Action `json:"actions"`
}

// Roadmap aggregates the tier, diagnostics, and the three phases generated for
// a profile. A roadmap is generated fresh from (Profile, UserInputs); local
// edits produce derived copies that are never reconciled against regeneration.
type Roadmap struct {
	Tier              Tier              `json:"tier"`
	Gaps              []string          `json:"gaps"`
	MissingSkills     []string          `json:"missing_skills"`
	ExistingStrengths []string          `json:"existing_strengths"`
	Phases            [PhaseCount]Phase `json:"phases"`
	TimelineNote      string            `json:"timeline_note"`
}

// TotalActions returns the number of actions across all phases.
func (r *Roadmap) TotalActions() int {
	total := 0
	for i := range r.Phases {
		total += len(r.Phases[i].Actions)
	}
	return total
}

// AllActions returns all actions in phase order, then action order.
func (r *Roadmap) AllActions() []Action {
	actions := make([]Action, 0, r.TotalActions())
	for i := range r.Phases {
		actions = append(actions, r.Phases[i].Actions...)
	}
	return actions
}
