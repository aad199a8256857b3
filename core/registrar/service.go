// Package registrar coordinates operations that span more than one store:
// enrollment, payment recording, batch deletion and the cross-entity derived
// views. The stores themselves never reference each other.
package registrar

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/coachdesk/coachdesk/core"
	"github.com/coachdesk/coachdesk/core/attendance"
	"github.com/coachdesk/coachdesk/core/batch"
	"github.com/coachdesk/coachdesk/core/payment"
	"github.com/coachdesk/coachdesk/core/student"
)

var (
	errUnknownBatch     = "batch does not exist"
	errBatchFull        = "batch is already at full capacity"
	errBatchHasStudents = "batch still has enrolled students"
	errUnknownStudent   = "student does not exist"
)

type Service struct {
	students   *student.Service
	batches    *batch.Service
	attendance *attendance.Service
	payments   *payment.Service
	mailSvc    core.EmailService

	overdueAfter time.Duration
}

func NewService(
	students *student.Service,
	batches *batch.Service,
	att *attendance.Service,
	payments *payment.Service,
	mailSvc core.EmailService,
) *Service {
	return &Service{
		students:     students,
		batches:      batches,
		attendance:   att,
		payments:     payments,
		mailSvc:      mailSvc,
		overdueAfter: core.Conf.FeeOverdueAfter,
	}
}

// Enroll creates a student after checking that the target batch exists and
// still has room. The student store itself stays permissive; capacity is a
// registrar concern.
func (svc *Service) Enroll(ns student.NewStudent) (student.Student, error) {
	b, err := svc.batches.GetByID(ns.BatchID)
	if err != nil {
		if errors.Cause(err) == batch.ErrNotFound {
			return student.Student{}, core.NewValidationError(
				err, core.FieldError{Field: "batchId", Error: errUnknownBatch})
		}
		return student.Student{}, errors.Wrap(err, "getting batch")
	}

	enrolled, err := svc.students.QueryByBatch(b.ID)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "querying batch roster")
	}
	if len(enrolled) >= b.MaxStudents {
		return student.Student{}, core.NewValidationError(
			nil, core.FieldError{Field: "batchId", Error: errBatchFull})
	}

	return svc.students.Create(ns)
}

// PaymentResult carries both sides of a recorded payment: the payment itself
// and the student with the recomputed fee status.
type PaymentResult struct {
	Payment payment.Payment `json:"payment"`
	Student student.Student `json:"student"`
}

// RecordPayment records a payment and applies the fee-status transition:
// paid once the paid amount covers the total fees, pending otherwise. No
// transition ever moves paid back. A receipt email goes out when the student
// has an email address on file.
func (svc *Service) RecordPayment(np payment.NewPayment) (PaymentResult, error) {
	s, err := svc.students.GetByID(np.StudentID)
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return PaymentResult{}, core.NewValidationError(
				err, core.FieldError{Field: "studentId", Error: errUnknownStudent})
		}
		return PaymentResult{}, errors.Wrap(err, "getting student")
	}

	pmt, err := svc.payments.Create(np)
	if err != nil {
		return PaymentResult{}, errors.Wrap(err, "creating payment")
	}

	newPaid := s.PaidAmount + pmt.Amount
	newStatus := student.FeeStatusPending
	if newPaid >= s.TotalFees {
		newStatus = student.FeeStatusPaid
	}
	s, err = svc.students.Update(s.ID, student.UpdateStudent{
		PaidAmount: null.Float64From(newPaid),
		FeeStatus:  null.StringFrom(string(newStatus)),
	})
	if err != nil {
		return PaymentResult{}, errors.Wrap(err, "updating fee status")
	}

	svc.sendReceipt(s, pmt)
	return PaymentResult{Payment: pmt, Student: s}, nil
}

func (svc *Service) sendReceipt(s student.Student, pmt payment.Payment) {
	if s.Email == "" || svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: s.Name, Address: s.Email}},
		Subject:      "Payment received - " + pmt.ReceiptNumber,
		TemplateName: "receipt",
		TemplateData: struct {
			StudentName   string
			ReceiptNumber string
			Amount        string
			PaymentMode   payment.Mode
			PaymentDate   string
			Outstanding   string
		}{
			StudentName:   s.Name,
			ReceiptNumber: pmt.ReceiptNumber,
			Amount:        fmt.Sprintf("%.2f", pmt.Amount),
			PaymentMode:   pmt.PaymentMode,
			PaymentDate:   pmt.PaymentDate,
			Outstanding:   fmt.Sprintf("%.2f", s.Outstanding()),
		},
	})
}

// DeleteBatch removes a batch, refusing while students still reference it.
// Dangling batch references are worse than an extra delete round-trip.
func (svc *Service) DeleteBatch(id string) (batch.Batch, error) {
	enrolled, err := svc.students.QueryByBatch(id)
	if err != nil {
		return batch.Batch{}, errors.Wrap(err, "querying batch roster")
	}
	if len(enrolled) > 0 {
		return batch.Batch{}, core.NewValidationError(
			nil, core.FieldError{Field: "id", Error: errBatchHasStudents})
	}
	return svc.batches.Delete(id)
}

// Overview is the dashboard headline view.
type Overview struct {
	TotalStudents   int           `json:"totalStudents"`
	TotalBatches    int           `json:"totalBatches"`
	TodayAttendance int           `json:"todayAttendance"`
	PendingFees     int           `json:"pendingFees"`
	TodayClasses    []batch.Batch `json:"todayClasses"`
}

func (svc *Service) Overview() (Overview, error) {
	students, err := svc.students.QueryAll()
	if err != nil {
		return Overview{}, errors.Wrap(err, "querying students")
	}
	batches, err := svc.batches.QueryAll()
	if err != nil {
		return Overview{}, errors.Wrap(err, "querying batches")
	}
	records, err := svc.attendance.QueryAll()
	if err != nil {
		return Overview{}, errors.Wrap(err, "querying attendance")
	}
	today, err := svc.batches.TodayClasses()
	if err != nil {
		return Overview{}, errors.Wrap(err, "querying today's classes")
	}

	ov := Overview{
		TotalStudents: len(students),
		TotalBatches:  len(batches),
		TodayClasses:  today,
	}
	date := core.Today()
	for _, r := range records {
		if r.Date == date {
			ov.TodayAttendance++
		}
	}
	for _, s := range students {
		if s.FeeStatus == student.FeeStatusPending {
			ov.PendingFees++
		}
	}
	return ov, nil
}

// StudentFees is one student's row in the fees summary.
type StudentFees struct {
	student.Student
	Outstanding    float64 `json:"outstanding"`
	PaidPercentage int     `json:"paidPercentage"`
	Overdue        bool    `json:"overdue"`
}

// FeesSummary is the fee-collection view: totals plus per-student breakdown.
type FeesSummary struct {
	TotalCollected   float64       `json:"totalCollected"`
	TotalOutstanding float64       `json:"totalOutstanding"`
	PendingStudents  int           `json:"pendingStudents"`
	Students         []StudentFees `json:"students"`
}

func (svc *Service) FeesSummary() (FeesSummary, error) {
	students, err := svc.students.QueryAll()
	if err != nil {
		return FeesSummary{}, errors.Wrap(err, "querying students")
	}

	now := time.Now()
	summary := FeesSummary{Students: make([]StudentFees, 0, len(students))}
	for _, s := range students {
		summary.TotalCollected += s.PaidAmount
		summary.TotalOutstanding += s.Outstanding()
		if s.FeeStatus == student.FeeStatusPending {
			summary.PendingStudents++
		}
		summary.Students = append(summary.Students, StudentFees{
			Student:        s,
			Outstanding:    s.Outstanding(),
			PaidPercentage: s.PaidPercentage(),
			Overdue:        s.OverdueAsOf(now, svc.overdueAfter),
		})
	}
	return summary, nil
}

// BatchSummary is one batch with its derived enrollment count.
type BatchSummary struct {
	batch.Batch
	Enrolled int    `json:"enrolled"`
	Schedule string `json:"schedule"`
}

func (svc *Service) BatchSummaries() ([]BatchSummary, error) {
	batches, err := svc.batches.QueryAll()
	if err != nil {
		return nil, errors.Wrap(err, "querying batches")
	}
	students, err := svc.students.QueryAll()
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}

	counts := make(map[string]int, len(batches))
	for _, s := range students {
		counts[s.BatchID]++
	}
	summaries := make([]BatchSummary, 0, len(batches))
	for _, b := range batches {
		summaries = append(summaries, BatchSummary{
			Batch:    b,
			Enrolled: counts[b.ID],
			Schedule: b.ScheduleDisplay(),
		})
	}
	return summaries, nil
}

// MarkOverdue sweeps the roster and flags students whose pending fees are
// older than the configured threshold. Returns the students it updated.
func (svc *Service) MarkOverdue(now time.Time) ([]student.Student, error) {
	students, err := svc.students.QueryAll()
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}

	var flagged []student.Student
	for _, s := range students {
		if s.FeeStatus != student.FeeStatusPending {
			continue
		}
		if !s.OverdueAsOf(now, svc.overdueAfter) {
			continue
		}
		updated, err := svc.students.Update(s.ID, student.UpdateStudent{
			FeeStatus: null.StringFrom(string(student.FeeStatusOverdue)),
		})
		if err != nil {
			return flagged, errors.Wrapf(err, "flagging student %s", s.ID)
		}
		flagged = append(flagged, updated)
	}
	return flagged, nil
}
