package types

// TimelineEstimate is the total completion estimate for a roadmap at a given
// weekly commitment.
type TimelineEstimate struct {
	TotalHours  int    `json:"total_hours"`
	TotalWeeks  int    `json:"total_weeks"`
	TotalMonths int    `json:"total_months"`
	WeeklyHours int    `json:"weekly_hours"`
	Feedback    string `json:"feedback"`
}
