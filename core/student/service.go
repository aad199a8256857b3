package student

import (
	"errors"

	"github.com/coachdesk/coachdesk/core"
)

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		CreateStudent(s Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		QueryStudentsByBatch(batchID string) ([]Student, error)
		// SearchStudents does a case-insensitive substring match on
		// Student.Name, Student.Phone or Student.Email.
		SearchStudents(term string) ([]Student, error)
		UpdateStudent(id string, up UpdateStudent) (Student, error)
		DeleteStudent(id string) (Student, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create enrolls a new student with the store defaults: no fees paid yet,
// fee status pending, enrolled today.
func (svc *Service) Create(ns NewStudent) (Student, error) {
	return svc.repo.CreateStudent(Student{
		Name:           ns.Name,
		Phone:          ns.Phone,
		Email:          ns.Email,
		BatchID:        ns.BatchID,
		TotalFees:      ns.TotalFees,
		PaidAmount:     0,
		FeeStatus:      FeeStatusPending,
		EnrollmentDate: core.Today(),
	})
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id string) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) QueryByBatch(batchID string) ([]Student, error) {
	return svc.repo.QueryStudentsByBatch(batchID)
}

func (svc *Service) Search(term string) ([]Student, error) {
	return svc.repo.SearchStudents(core.CleanString(term, true /* lower */))
}

// Filter applies AND operation on available QueryFilter fields.
func (svc *Service) Filter(filter QueryFilter) ([]Student, error) {
	filter.Clean()
	if filter.IsEmpty() {
		return svc.QueryAll()
	}
	if filter.Search == "" {
		return svc.QueryByBatch(filter.BatchID)
	}

	matches, err := svc.Search(filter.Search)
	if err != nil || filter.BatchID == "" {
		return matches, err
	}
	students := make([]Student, 0, len(matches))
	for _, s := range matches {
		if s.BatchID == filter.BatchID {
			students = append(students, s)
		}
	}
	return students, nil
}

func (svc *Service) Update(id string, up UpdateStudent) (Student, error) {
	return svc.repo.UpdateStudent(id, up)
}

func (svc *Service) Delete(id string) (Student, error) {
	return svc.repo.DeleteStudent(id)
}
