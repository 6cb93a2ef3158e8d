package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoadmap() *Roadmap {
	r := &Roadmap{
		Tier: Tier{Level: TierBeginner, Badge: "🟡", StartPhase: 1},
		Gaps: []string{"gap"},
	}
	r.Phases[0] = Phase{
		Title: "Build Product Foundations",
		Actions: []Action{
			{ID: "pm-fundamentals-101", Title: "PM 101", EffortHours: 4, Skills: []string{"PM fundamentals"}},
			{ID: "learn-sql", Title: "Learn SQL", EffortHours: 15},
		},
	}
	r.Phases[1] = Phase{
		Title:   "Build Product Credibility",
		Actions: []Action{{ID: "pm-club", Title: "Join a PM club", EffortHours: 30}},
	}
	r.Phases[2] = Phase{
		Title:   "Polish & Activate",
		Actions: []Action{{ID: "portfolio-site", Title: "Build a portfolio", EffortHours: 18}},
	}
	return r
}

func TestRoadmap_TotalActions(t *testing.T) {
	assert.Equal(t, 4, sampleRoadmap().TotalActions())
}

func TestRoadmap_AllActionsOrder(t *testing.T) {
	actions := sampleRoadmap().AllActions()

	require.Len(t, actions, 4)
	assert.Equal(t, "pm-fundamentals-101", actions[0].ID)
	assert.Equal(t, "learn-sql", actions[1].ID)
	assert.Equal(t, "pm-club", actions[2].ID)
	assert.Equal(t, "portfolio-site", actions[3].ID)
}

func TestClone_DeepCopiesActions(t *testing.T) {
	original := sampleRoadmap()
	clone := original.Clone()

	clone.Phases[0].Actions[0].Title = "changed"
	clone.Phases[0].Actions[0].Skills[0] = "changed"
	clone.Gaps[0] = "changed"

	assert.Equal(t, "PM 101", original.Phases[0].Actions[0].Title)
	assert.Equal(t, "PM fundamentals", original.Phases[0].Actions[0].Skills[0])
	assert.Equal(t, "gap", original.Gaps[0])
}

func TestAddAction_AssignsIDAndMarksCustom(t *testing.T) {
	original := sampleRoadmap()

	updated, err := original.AddAction(1, Action{Title: "Shadow a PM"})
	require.NoError(t, err)

	require.Len(t, updated.Phases[1].Actions, 2)
	added := updated.Phases[1].Actions[1]
	assert.NotEmpty(t, added.ID)
	assert.True(t, added.IsCustom)

	// Original untouched.
	assert.Len(t, original.Phases[1].Actions, 1)
}

func TestAddAction_KeepsProvidedID(t *testing.T) {
	updated, err := sampleRoadmap().AddAction(0, Action{ID: "my-action", Title: "Custom"})
	require.NoError(t, err)

	assert.Equal(t, "my-action", updated.Phases[0].Actions[2].ID)
}

func TestAddAction_PhaseOutOfRange(t *testing.T) {
	_, err := sampleRoadmap().AddAction(3, Action{Title: "nope"})
	require.Error(t, err)

	var notFound *EditNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteAction_ByID(t *testing.T) {
	original := sampleRoadmap()

	updated, err := original.DeleteAction(0, "pm-fundamentals-101")
	require.NoError(t, err)

	require.Len(t, updated.Phases[0].Actions, 1)
	assert.Equal(t, "learn-sql", updated.Phases[0].Actions[0].ID)
	assert.Len(t, original.Phases[0].Actions, 2)
}

func TestDeleteAction_UnknownID(t *testing.T) {
	_, err := sampleRoadmap().DeleteAction(0, "missing")
	require.Error(t, err)

	var notFound *EditNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ActionID)
}

func TestEditAction_PreservesID(t *testing.T) {
	updated, err := sampleRoadmap().EditAction(0, "learn-sql", func(a *Action) {
		a.Title = "Learn SQL faster"
		a.ID = "sneaky-rename"
	})
	require.NoError(t, err)

	edited := updated.Phases[0].Actions[1]
	assert.Equal(t, "Learn SQL faster", edited.Title)
	assert.Equal(t, "learn-sql", edited.ID)
}

func TestCompletionState_ToggleIsCopyOnWrite(t *testing.T) {
	var state CompletionState

	toggled := state.Toggle("learn-sql")
	assert.True(t, toggled.Done("learn-sql"))
	assert.False(t, state.Done("learn-sql"))

	untoggled := toggled.Toggle("learn-sql")
	assert.False(t, untoggled.Done("learn-sql"))
	assert.True(t, toggled.Done("learn-sql"))
}

func TestCompletionState_SurvivesActionDeletion(t *testing.T) {
	r := sampleRoadmap()
	state := CompletionState{}.Toggle("learn-sql").Toggle("pm-club")

	updated, err := r.DeleteAction(0, "pm-fundamentals-101")
	require.NoError(t, err)

	// Completion is keyed by ID, so remaining done actions stay done.
	assert.True(t, state.Done("learn-sql"))
	assert.True(t, state.Done("pm-club"))

	progress := state.Progress(updated)
	assert.Equal(t, 2, progress.Completed)
	assert.Equal(t, 3, progress.Total)
}

func TestProgress_IgnoresStaleIDs(t *testing.T) {
	r := sampleRoadmap()
	state := CompletionState{}.Toggle("deleted-long-ago").Toggle("learn-sql")

	progress := state.Progress(r)

	assert.Equal(t, 1, progress.Completed)
	assert.Equal(t, 4, progress.Total)
	assert.Equal(t, 25, progress.Percentage)
}

func TestProgress_EmptyRoadmap(t *testing.T) {
	progress := CompletionState{}.Progress(&Roadmap{})

	assert.Zero(t, progress.Total)
	assert.Zero(t, progress.Percentage)
}

func TestUserInputs_Validate(t *testing.T) {
	valid := UserInputs{Motivation: "impact", Challenges: "experience", WeeklyHours: 10}
	assert.NoError(t, valid.Validate())

	missing := UserInputs{WeeklyHours: 10}
	assert.Error(t, missing.Validate())

	tooLow := UserInputs{Motivation: "m", Challenges: "c", WeeklyHours: 2}
	assert.Error(t, tooLow.Validate())

	tooHigh := UserInputs{Motivation: "m", Challenges: "c", WeeklyHours: 41}
	assert.Error(t, tooHigh.Validate())
}

func TestProfile_SkillHelpers(t *testing.T) {
	p := &Profile{Skills: []string{SkillNotDetected, "SQL", "Python"}}

	assert.True(t, p.HasSkill("SQL"))
	assert.False(t, p.HasSkill("Figma"))
	assert.False(t, p.HasSkill(SkillNotDetected))
	assert.True(t, p.HasAnySkill("Figma", "Python"))
	assert.Equal(t, []string{"SQL", "Python"}, p.RealSkills())
	assert.Equal(t, 2, p.SkillCount())
}
