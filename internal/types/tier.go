package types

// TierLevel identifies the coarse experience bucket derived from a weighted score.
type TierLevel string

const (
	TierBeginner     TierLevel = "BEGINNER"
	TierIntermediate TierLevel = "INTERMEDIATE"
	TierAdvanced     TierLevel = "ADVANCED"
)

// Tier pairs an experience level with its display badge and the phase a user
// at that level could reasonably start from. The start phase is advisory; the
// generator still emits all three phases.
type Tier struct {
	Level      TierLevel `json:"level"`
	Badge      string    `json:"badge"`
	StartPhase int       `json:"start_phase"`
}
