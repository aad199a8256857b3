package payment

import (
	"github.com/volatiletech/null/v8"

	"github.com/coachdesk/coachdesk/core"
)

// Payment modes
type Mode string

const (
	ModeCash   Mode = "cash"
	ModeOnline Mode = "online"
	ModeCard   Mode = "card"
	ModeCheque Mode = "cheque"
)

var AllModes = []Mode{ModeCash, ModeOnline, ModeCard, ModeCheque}

// Payment is one recorded fee payment. Immutable in practice once created;
// the update primitive exists for operator corrections only.
type Payment struct {
	ID            string  `json:"id"`
	StudentID     string  `json:"studentId"`
	Amount        float64 `json:"amount"`
	PaymentMode   Mode    `json:"paymentMode"`
	PaymentDate   string  `json:"paymentDate"` // core.DateLayout, assigned at creation
	ReceiptNumber string  `json:"receiptNumber"`
}

// NewPayment contains information needed to record a payment.
type NewPayment struct {
	StudentID   string  `json:"studentId" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	PaymentMode Mode    `json:"paymentMode" validate:"required,paymode"`
}

func (np *NewPayment) Validate() error {
	np.StudentID = core.CleanString(np.StudentID)
	return core.Validate.Struct(np)
}

// UpdatePayment defines what information may be provided to correct an
// existing Payment. Unset fields are left untouched by the store.
type UpdatePayment struct {
	Amount      null.Float64 `json:"amount" validate:"omitempty,gt=0"`
	PaymentMode null.String  `json:"paymentMode" validate:"omitempty,paymode"`
}

func (up *UpdatePayment) Validate() error {
	return core.Validate.Struct(up)
}
