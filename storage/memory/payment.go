package memory

import (
	"github.com/coachdesk/coachdesk/core/payment"
)

type paymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) payment.Repository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) CreatePayment(p payment.Payment) (payment.Payment, error) {
	repo.db.pause(createDelay)

	t := repo.db.payments
	t.mutex.Lock()
	defer t.mutex.Unlock()

	p.ID = repo.db.nextID()
	t.rows = append(t.rows, p)
	return p, nil
}

func (repo *paymentRepository) QueryAllPayments() ([]payment.Payment, error) {
	repo.db.pause(listDelay)

	t := repo.db.payments
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	payments := make([]payment.Payment, len(t.rows))
	copy(payments, t.rows)
	return payments, nil
}

func (repo *paymentRepository) GetPaymentByID(id string) (payment.Payment, error) {
	repo.db.pause(getDelay)

	t := repo.db.payments
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	for _, p := range t.rows {
		if p.ID == id {
			return p, nil
		}
	}
	return payment.Payment{}, payment.ErrNotFound
}

func (repo *paymentRepository) QueryPaymentsByStudent(studentID string) ([]payment.Payment, error) {
	repo.db.pause(filterDelay)

	t := repo.db.payments
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	payments := make([]payment.Payment, 0, len(t.rows))
	for _, p := range t.rows {
		if p.StudentID == studentID {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (repo *paymentRepository) UpdatePayment(id string, up payment.UpdatePayment) (payment.Payment, error) {
	repo.db.pause(updateDelay)

	t := repo.db.payments
	t.mutex.Lock()
	defer t.mutex.Unlock()

	// only save set fields
	for i := range t.rows {
		if t.rows[i].ID != id {
			continue
		}
		p := &t.rows[i]
		if up.Amount.Valid {
			p.Amount = up.Amount.Float64
		}
		if up.PaymentMode.Valid {
			p.PaymentMode = payment.Mode(up.PaymentMode.String)
		}
		return *p, nil
	}
	return payment.Payment{}, payment.ErrNotFound
}

func (repo *paymentRepository) DeletePayment(id string) (payment.Payment, error) {
	repo.db.pause(deleteDelay)

	t := repo.db.payments
	t.mutex.Lock()
	defer t.mutex.Unlock()

	for i := range t.rows {
		if t.rows[i].ID == id {
			deleted := t.rows[i]
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return deleted, nil
		}
	}
	return payment.Payment{}, payment.ErrNotFound
}
