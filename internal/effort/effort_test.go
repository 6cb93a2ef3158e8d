package effort

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/careerpath/internal/types"
)

func TestAdjust_NoMultipliers(t *testing.T) {
	p := &types.Profile{Skills: []string{types.SkillNotDetected}}
	assert.Equal(t, 15, Adjust(15, p, CategorySQL))
}

func TestAdjust_EngineerSQLDiscount(t *testing.T) {
	p := &types.Profile{Skills: []string{"Python"}}
	// 15 * 0.3 = 4.5 -> 5
	assert.Equal(t, 5, Adjust(15, p, CategorySQL))
}

func TestAdjust_AnalystAnalyticsDiscount(t *testing.T) {
	p := &types.Profile{Skills: []string{"Excel"}}
	// 18 * 0.4 = 7.2 -> 8
	assert.Equal(t, 8, Adjust(18, p, CategoryAnalytics))
}

func TestAdjust_PMFundamentalsDiscount(t *testing.T) {
	p := &types.Profile{HasProductExperience: true}
	// 4 * 0.3 = 1.2 -> 2
	assert.Equal(t, 2, Adjust(4, p, CategoryPMFundamentals))
}

func TestAdjust_StudentPenalty(t *testing.T) {
	p := &types.Profile{IsStudent: true}
	// 15 * 1.2 = 18
	assert.Equal(t, 18, Adjust(15, p, CategorySQL))
}

func TestAdjust_StudentPenaltyStacksWithDiscount(t *testing.T) {
	p := &types.Profile{Skills: []string{"Python"}, IsStudent: true}
	// 15 * 0.3 * 1.2 = 5.4 -> 6
	assert.Equal(t, 6, Adjust(15, p, CategorySQL))
}

func TestAdjust_StudentWithProductExperienceSkipsPenalty(t *testing.T) {
	p := &types.Profile{IsStudent: true, HasProductExperience: true}
	assert.Equal(t, 15, Adjust(15, p, CategorySQL))
}

func TestAdjust_NeverBelowOneHour(t *testing.T) {
	p := &types.Profile{HasProductExperience: true}
	assert.Equal(t, 1, Adjust(1, p, CategoryPMFundamentals))
}

func TestAdjust_GeneralCategoryIgnoresSkillDiscounts(t *testing.T) {
	p := &types.Profile{Skills: []string{"Python", "Excel"}}
	assert.Equal(t, 10, Adjust(10, p, CategoryGeneral))
}

func TestClampWeeklyHours(t *testing.T) {
	assert.Equal(t, types.DefaultWeeklyHours, ClampWeeklyHours(0))
	assert.Equal(t, types.DefaultWeeklyHours, ClampWeeklyHours(-5))
	assert.Equal(t, 7, ClampWeeklyHours(7))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		hours       int
		weeklyHours int
		want        string
	}{
		{5, 10, "1 week"},
		{10, 10, "1 week"},
		{15, 10, "2 weeks"},
		{25, 10, "3 weeks"},
		{45, 10, "5 weeks"},
		{60, 10, "6 weeks"},
		{70, 10, "2-3 months"},
		{100, 10, "3-4 months"},
		{120, 10, "3-4 months"},
		{130, 10, "4 months"},
		{200, 10, "5 months"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.hours, tt.weeklyHours), "%d hours at %d/week", tt.hours, tt.weeklyHours)
	}
}

func TestFormatDuration_ZeroWeeklyHoursUsesDefault(t *testing.T) {
	assert.Equal(t, FormatDuration(30, types.DefaultWeeklyHours), FormatDuration(30, 0))
}
