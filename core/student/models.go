package student

import (
	"math"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/coachdesk/coachdesk/core"
)

// Fee statuses
type FeeStatus string

const (
	FeeStatusPending FeeStatus = "pending"
	FeeStatusPaid    FeeStatus = "paid"
	FeeStatusOverdue FeeStatus = "overdue"
)

var AllFeeStatuses = []FeeStatus{FeeStatusPending, FeeStatusPaid, FeeStatusOverdue}

type Student struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	BatchID        string    `json:"batchId"`
	TotalFees      float64   `json:"totalFees"`
	PaidAmount     float64   `json:"paidAmount"`
	FeeStatus      FeeStatus `json:"feeStatus"`
	EnrollmentDate string    `json:"enrollmentDate"` // core.DateLayout
}

// Outstanding is the unpaid remainder of the student's fees, never negative.
func (s *Student) Outstanding() float64 {
	if out := s.TotalFees - s.PaidAmount; out > 0 {
		return out
	}
	return 0
}

// PaidPercentage reports how much of the total fees has been paid, capped at 100.
// A student with no fees owed counts as fully paid.
func (s *Student) PaidPercentage() int {
	if s.TotalFees <= 0 {
		return 100
	}
	pct := int(math.Round(s.PaidAmount / s.TotalFees * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// OverdueAsOf reports whether the student's pending fees have gone unpaid for
// longer than `after` since enrollment. Unparseable enrollment dates never go overdue.
func (s *Student) OverdueAsOf(now time.Time, after time.Duration) bool {
	if s.FeeStatus == FeeStatusPaid {
		return false
	}
	enrolled, err := core.ParseDate(s.EnrollmentDate)
	if err != nil {
		return false
	}
	return now.Sub(enrolled) > after
}

// NewStudent contains information needed to enroll a new Student.
type NewStudent struct {
	Name      string  `json:"name" validate:"required"`
	Phone     string  `json:"phone" validate:"required"`
	Email     string  `json:"email" validate:"omitempty,email"`
	BatchID   string  `json:"batchId" validate:"required"`
	TotalFees float64 `json:"totalFees" validate:"gte=0"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Phone = core.CleanString(ns.Phone)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.BatchID = core.CleanString(ns.BatchID)
	return core.Validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an existing
// Student. Unset fields are left untouched by the store.
type UpdateStudent struct {
	Name       null.String  `json:"name"`
	Phone      null.String  `json:"phone"`
	Email      null.String  `json:"email" validate:"omitempty,email"`
	BatchID    null.String  `json:"batchId"`
	TotalFees  null.Float64 `json:"totalFees" validate:"omitempty,gte=0"`
	PaidAmount null.Float64 `json:"paidAmount" validate:"omitempty,gte=0"`
	FeeStatus  null.String  `json:"feeStatus" validate:"omitempty,feestatus"`
}

func (us *UpdateStudent) Validate() error {
	if us.Name.Valid {
		us.Name = null.StringFrom(core.CleanString(us.Name.String))
	}
	if us.Phone.Valid {
		us.Phone = null.StringFrom(core.CleanString(us.Phone.String))
	}
	if us.Email.Valid {
		us.Email = null.StringFrom(core.CleanString(us.Email.String, true /* lower */))
	}
	return core.Validate.Struct(us)
}

// QueryFilter narrows a roster query.
// Search does a case-insensitive match on one of Student.Name, Student.Phone or Student.Email.
type QueryFilter struct {
	Search  string `query:"search"`
	BatchID string `query:"batch"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.BatchID == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.BatchID = core.CleanString(qf.BatchID)
}
