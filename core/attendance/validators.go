package attendance

import (
	"github.com/go-playground/validator/v10"

	"github.com/coachdesk/coachdesk/core"
)

var (
	statusTag  = "attstatus"
	statusText = "invalid attendance status"

	isoDateTag  = "isodate"
	isoDateText = "must be a date in YYYY-MM-DD form"
)

func init() {
	_ = core.Validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(statusTag, statusText)

	_ = core.Validate.RegisterValidation(isoDateTag, isoDateValidation)
	core.RegisterCustomTranslation(isoDateTag, isoDateText)
}

// statusValidation checks that the provided value is one of AllStatuses.
func statusValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, status := range AllStatuses {
		if val == string(status) {
			return true
		}
	}
	return false
}

// isoDateValidation checks that the provided value parses as core.DateLayout.
func isoDateValidation(fl validator.FieldLevel) bool {
	_, err := core.ParseDate(fl.Field().String())
	return err == nil
}
