package payment

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk/core"
)

var ErrNotFound = errors.New("payment not found")

type (
	Repository interface {
		CreatePayment(p Payment) (Payment, error)
		QueryAllPayments() ([]Payment, error)
		GetPaymentByID(id string) (Payment, error)
		QueryPaymentsByStudent(studentID string) ([]Payment, error)
		UpdatePayment(id string, up UpdatePayment) (Payment, error)
		DeletePayment(id string) (Payment, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create records a payment with the store defaults: payment date today and a
// generated receipt number.
func (svc *Service) Create(np NewPayment) (Payment, error) {
	return svc.repo.CreatePayment(Payment{
		StudentID:     np.StudentID,
		Amount:        np.Amount,
		PaymentMode:   np.PaymentMode,
		PaymentDate:   core.Today(),
		ReceiptNumber: NewReceiptNumber(),
	})
}

func (svc *Service) QueryAll() ([]Payment, error) {
	return svc.repo.QueryAllPayments()
}

func (svc *Service) GetByID(id string) (Payment, error) {
	return svc.repo.GetPaymentByID(id)
}

func (svc *Service) QueryByStudent(studentID string) ([]Payment, error) {
	return svc.repo.QueryPaymentsByStudent(studentID)
}

func (svc *Service) Update(id string, up UpdatePayment) (Payment, error) {
	return svc.repo.UpdatePayment(id, up)
}

func (svc *Service) Delete(id string) (Payment, error) {
	return svc.repo.DeletePayment(id)
}

// NewReceiptNumber generates an operator-friendly receipt token.
func NewReceiptNumber() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "RCP-" + token[:12]
}
