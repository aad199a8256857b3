package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/coachdesk/coachdesk/core"
)

var (
	feeStatusTag  = "feestatus"
	feeStatusText = "invalid fee status"
)

func init() {
	_ = core.Validate.RegisterValidation(feeStatusTag, feeStatusValidation)
	core.RegisterCustomTranslation(feeStatusTag, feeStatusText)
}

// feeStatusValidation checks that the provided value is one of AllFeeStatuses.
func feeStatusValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, status := range AllFeeStatuses {
		if val == string(status) {
			return true
		}
	}
	return false
}
