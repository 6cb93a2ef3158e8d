package types

import (
	"fmt"

	"github.com/google/uuid"
)

// EditNotFoundError indicates an edit referenced a phase or action that does not exist.
type EditNotFoundError struct {
	PhaseIndex int
	ActionID   string
}

func (e *EditNotFoundError) Error() string {
	if e.ActionID != "" {
		return fmt.Sprintf("no action with id %q in phase %d", e.ActionID, e.PhaseIndex)
	}
	return fmt.Sprintf("phase index %d out of range (0..%d)", e.PhaseIndex, PhaseCount-1)
}

// Clone returns a deep copy of the roadmap. Mutation helpers operate on clones
// so the caller's original roadmap is never modified in place.
func (r *Roadmap) Clone() *Roadmap {
	clone := *r
	clone.Gaps = append([]string(nil), r.Gaps...)
	clone.MissingSkills = append([]string(nil), r.MissingSkills...)
	clone.ExistingStrengths = append([]string(nil), r.ExistingStrengths...)
	for i := range r.Phases {
		clone.Phases[i].Actions = cloneActions(r.Phases[i].Actions)
	}
	return &clone
}

func cloneActions(actions []Action) []Action {
	cloned := make([]Action, len(actions))
	for i, a := range actions {
		cloned[i] = a
		cloned[i].Skills = append([]string(nil), a.Skills...)
		cloned[i].HowToTips = append([]string(nil), a.HowToTips...)
		cloned[i].PracticalSteps = append([]string(nil), a.PracticalSteps...)
		cloned[i].AlternativeResources = append([]Resource(nil), a.AlternativeResources...)
		if a.StudyGuide != nil {
			guide := *a.StudyGuide
			guide.Chapters = append([]StudyGuideSection(nil), a.StudyGuide.Chapters...)
			cloned[i].StudyGuide = &guide
		}
	}
	return cloned
}

// AddAction appends an action to the given phase and returns the updated copy.
// A missing ID is assigned a fresh UUID so overlay state can key on it.
func (r *Roadmap) AddAction(phaseIdx int, action Action) (*Roadmap, error) {
	if phaseIdx < 0 || phaseIdx >= PhaseCount {
		return nil, &EditNotFoundError{PhaseIndex: phaseIdx}
	}
	if action.ID == "" {
		action.ID = uuid.NewString()
	}
	action.IsCustom = true
	clone := r.Clone()
	clone.Phases[phaseIdx].Actions = append(clone.Phases[phaseIdx].Actions, action)
	return clone, nil
}

// DeleteAction removes the action with the given ID from the given phase and
// returns the updated copy.
func (r *Roadmap) DeleteAction(phaseIdx int, actionID string) (*Roadmap, error) {
	if phaseIdx < 0 || phaseIdx >= PhaseCount {
		return nil, &EditNotFoundError{PhaseIndex: phaseIdx}
	}
	clone := r.Clone()
	actions := clone.Phases[phaseIdx].Actions
	for i, a := range actions {
		if a.ID == actionID {
			clone.Phases[phaseIdx].Actions = append(actions[:i], actions[i+1:]...)
			return clone, nil
		}
	}
	return nil, &EditNotFoundError{PhaseIndex: phaseIdx, ActionID: actionID}
}

// EditAction applies the given mutation to the action with the given ID and
// returns the updated copy. The mutation may not change the action's ID.
func (r *Roadmap) EditAction(phaseIdx int, actionID string, edit func(*Action)) (*Roadmap, error) {
	if phaseIdx < 0 || phaseIdx >= PhaseCount {
		return nil, &EditNotFoundError{PhaseIndex: phaseIdx}
	}
	clone := r.Clone()
	actions := clone.Phases[phaseIdx].Actions
	for i := range actions {
		if actions[i].ID == actionID {
			edit(&actions[i])
			actions[i].ID = actionID
			return clone, nil
		}
	}
	return nil, &EditNotFoundError{PhaseIndex: phaseIdx, ActionID: actionID}
}
