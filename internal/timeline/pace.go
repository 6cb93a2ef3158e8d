package timeline

// paceRule maps a minimum weekly commitment to a qualitative pace comment.
// One canonical table is used everywhere a pace comment appears.
type paceRule struct {
	minWeeklyHours int
	comment        string
}

var paceRules = []paceRule{
	{20, "⚡ Lightning pace - you're all in!"},
	{15, "🚀 Intensive pace - great for focused transitions!"},
	{10, "✨ Balanced pace - sustainable while working/studying."},
	{7, "🎯 Steady pace - consistent progress without burnout."},
}

const relaxedPaceComment = "🌱 Relaxed pace - perfect for busy schedules."

// PaceComment returns the qualitative pace comment for a weekly commitment.
func PaceComment(weeklyHours int) string {
	for _, rule := range paceRules {
		if weeklyHours >= rule.minWeeklyHours {
			return rule.comment
		}
	}
	return relaxedPaceComment
}
