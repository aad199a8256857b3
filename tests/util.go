package testutil

import (
	"testing"

	"github.com/coachdesk/coachdesk/core"
	"github.com/coachdesk/coachdesk/core/attendance"
	"github.com/coachdesk/coachdesk/core/batch"
	"github.com/coachdesk/coachdesk/core/payment"
	"github.com/coachdesk/coachdesk/core/registrar"
	"github.com/coachdesk/coachdesk/core/student"
	emailsvc "github.com/coachdesk/coachdesk/services/email"
	"github.com/coachdesk/coachdesk/storage/memory"
)

// Services bundles everything a test scenario needs.
type Services struct {
	DB         *memory.DB
	Students   *student.Service
	Batches    *batch.Service
	Attendance *attendance.Service
	Payments   *payment.Service
	Registrar  *registrar.Service

	StudentRepo student.Repository
	BatchRepo   batch.Repository
}

// NewDB opens a seeded store with simulated latency disabled.
func NewDB(t *testing.T) *memory.DB {
	t.Helper()
	core.Conf.TestMode = true
	core.Conf.Debug = false
	core.Conf.LatencyScale = 0

	db, err := memory.Open(core.Conf)
	if err != nil {
		t.Fatalf("NewDB() failed: %v", err)
	}
	return db
}

// NewServices wires the full service graph over a fresh store, with the
// synchronous email mock so tests can assert on sent messages.
func NewServices(t *testing.T) *Services {
	t.Helper()
	db := NewDB(t)

	studentRepo := memory.NewStudentRepository(db)
	batchRepo := memory.NewBatchRepository(db)

	students := student.NewService(studentRepo)
	batches := batch.NewService(batchRepo)
	att := attendance.NewService(memory.NewAttendanceRepository(db))
	payments := payment.NewService(memory.NewPaymentRepository(db))

	emailsvc.ClearSentMessages()
	reg := registrar.NewService(students, batches, att, payments, emailsvc.NewConsoleServiceMock())

	return &Services{
		DB:          db,
		Students:    students,
		Batches:     batches,
		Attendance:  att,
		Payments:    payments,
		Registrar:   reg,
		StudentRepo: studentRepo,
		BatchRepo:   batchRepo,
	}
}

// CreateStudent inserts a student through the repository, bypassing the
// service defaults so tests can pin the enrollment date and fee state.
func CreateStudent(
	t *testing.T,
	repo student.Repository,
	name, batchID string,
	totalFees, paidAmount float64,
	status student.FeeStatus,
	enrollmentDate string,
) student.Student {
	t.Helper()
	s, err := repo.CreateStudent(student.Student{
		Name:           name,
		Phone:          "9000000000",
		Email:          "",
		BatchID:        batchID,
		TotalFees:      totalFees,
		PaidAmount:     paidAmount,
		FeeStatus:      status,
		EnrollmentDate: enrollmentDate,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return s
}

// CreateBatch inserts a batch through the repository.
func CreateBatch(t *testing.T, repo batch.Repository, name string, days []string, maxStudents int) batch.Batch {
	t.Helper()
	b, err := repo.CreateBatch(batch.Batch{
		BatchName:   name,
		Subject:     "Physics",
		TeacherID:   "t1",
		Timing:      "6:00 AM - 8:00 AM",
		Days:        days,
		RoomNumber:  "101",
		MaxStudents: maxStudents,
	})
	if err != nil {
		t.Fatalf("CreateBatch() failed: %v", err)
	}
	return b
}
