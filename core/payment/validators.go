package payment

import (
	"github.com/go-playground/validator/v10"

	"github.com/coachdesk/coachdesk/core"
)

var (
	modeTag  = "paymode"
	modeText = "invalid payment mode"
)

func init() {
	_ = core.Validate.RegisterValidation(modeTag, modeValidation)
	core.RegisterCustomTranslation(modeTag, modeText)
}

// modeValidation checks that the provided value is one of AllModes.
func modeValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, mode := range AllModes {
		if val == string(mode) {
			return true
		}
	}
	return false
}
