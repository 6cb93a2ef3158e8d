package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultWeeklyHours is assumed when the caller supplies no usable commitment.
const DefaultWeeklyHours = 10

// UserInputs carries the free-text answers and weekly commitment collected
// alongside the resume upload.
type UserInputs struct {
	Motivation  string `json:"motivation" validate:"required"`
	Challenges  string `json:"challenges" validate:"required"`
	WeeklyHours int    `json:"weekly_hours" validate:"min=3,max=40"`
}

var inputValidator = validator.New()

// Validate checks that both free-text answers are present and the weekly
// commitment is within the accepted 3-40 hour range.
func (u *UserInputs) Validate() error {
	if err := inputValidator.Struct(u); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			field := errs[0]
			return fmt.Errorf("invalid input %q: failed %q constraint", field.Field(), field.Tag())
		}
		return fmt.Errorf("invalid inputs: %w", err)
	}
	return nil
}
