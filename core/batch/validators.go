package batch

import (
	"github.com/go-playground/validator/v10"

	"github.com/coachdesk/coachdesk/core"
)

var (
	weekdayTag  = "weekday"
	weekdayText = "invalid weekday name"
)

func init() {
	_ = core.Validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(weekdayTag, weekdayText)
}

// weekdayValidation checks that the provided value is a full english weekday name.
func weekdayValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, day := range Weekdays {
		if val == day {
			return true
		}
	}
	return false
}
