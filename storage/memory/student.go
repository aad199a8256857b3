package memory

import (
	"strings"

	"github.com/coachdesk/coachdesk/core/student"
)

type studentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(s student.Student) (student.Student, error) {
	repo.db.pause(createDelay)

	t := repo.db.students
	t.mutex.Lock()
	defer t.mutex.Unlock()

	s.ID = repo.db.nextID()
	t.rows = append(t.rows, s)
	return s, nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.pause(listDelay)

	t := repo.db.students
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	students := make([]student.Student, len(t.rows))
	copy(students, t.rows)
	return students, nil
}

func (repo *studentRepository) GetStudentByID(id string) (student.Student, error) {
	repo.db.pause(getDelay)

	t := repo.db.students
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	for _, s := range t.rows {
		if s.ID == id {
			return s, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) QueryStudentsByBatch(batchID string) ([]student.Student, error) {
	repo.db.pause(filterDelay)

	t := repo.db.students
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	students := make([]student.Student, 0, len(t.rows))
	for _, s := range t.rows {
		if s.BatchID == batchID {
			students = append(students, s)
		}
	}
	return students, nil
}

func (repo *studentRepository) SearchStudents(term string) ([]student.Student, error) {
	repo.db.pause(getDelay)

	t := repo.db.students
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	students := make([]student.Student, 0, len(t.rows))
	for _, s := range t.rows {
		if strings.Contains(strings.ToLower(s.Name), term) ||
			strings.Contains(s.Phone, term) ||
			strings.Contains(strings.ToLower(s.Email), term) {
			students = append(students, s)
		}
	}
	return students, nil
}

func (repo *studentRepository) UpdateStudent(id string, up student.UpdateStudent) (student.Student, error) {
	repo.db.pause(updateDelay)

	t := repo.db.students
	t.mutex.Lock()
	defer t.mutex.Unlock()

	// only save set fields
	for i := range t.rows {
		if t.rows[i].ID != id {
			continue
		}
		s := &t.rows[i]
		if up.Name.Valid {
			s.Name = up.Name.String
		}
		if up.Phone.Valid {
			s.Phone = up.Phone.String
		}
		if up.Email.Valid {
			s.Email = up.Email.String
		}
		if up.BatchID.Valid {
			s.BatchID = up.BatchID.String
		}
		if up.TotalFees.Valid {
			s.TotalFees = up.TotalFees.Float64
		}
		if up.PaidAmount.Valid {
			s.PaidAmount = up.PaidAmount.Float64
		}
		if up.FeeStatus.Valid {
			s.FeeStatus = student.FeeStatus(up.FeeStatus.String)
		}
		return *s, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) DeleteStudent(id string) (student.Student, error) {
	repo.db.pause(deleteDelay)

	t := repo.db.students
	t.mutex.Lock()
	defer t.mutex.Unlock()

	for i := range t.rows {
		if t.rows[i].ID == id {
			deleted := t.rows[i]
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return deleted, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}
