package types

import "math"

// CompletionState tracks which actions the user has finished. It is overlay
// state owned by the caller, keyed by action ID rather than position, so
// entries stay correct when other actions are inserted, deleted, or reordered.
type CompletionState map[string]bool

// Toggle flips the completion flag for the given action ID and returns an
// updated copy. The receiver is never mutated.
func (c CompletionState) Toggle(actionID string) CompletionState {
	updated := make(CompletionState, len(c)+1)
	for id, done := range c {
		updated[id] = done
	}
	updated[actionID] = !updated[actionID]
	return updated
}

// Done reports whether the given action is marked complete.
func (c CompletionState) Done(actionID string) bool {
	return c[actionID]
}

// Progress summarizes completion across a roadmap.
type Progress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Progress computes completion counts against the roadmap's current actions.
// Stale entries for deleted actions are ignored.
func (c CompletionState) Progress(r *Roadmap) Progress {
	p := Progress{Total: r.TotalActions()}
	for _, action := range r.AllActions() {
		if c[action.ID] {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}
