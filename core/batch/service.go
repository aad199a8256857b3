package batch

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("batch not found")

type (
	Repository interface {
		CreateBatch(b Batch) (Batch, error)
		QueryAllBatches() ([]Batch, error)
		GetBatchByID(id string) (Batch, error)
		UpdateBatch(id string, up UpdateBatch) (Batch, error)
		DeleteBatch(id string) (Batch, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nb NewBatch) (Batch, error) {
	return svc.repo.CreateBatch(Batch{
		BatchName:   nb.BatchName,
		Subject:     nb.Subject,
		TeacherID:   nb.TeacherID,
		Timing:      nb.Timing,
		Days:        nb.Days,
		RoomNumber:  nb.RoomNumber,
		MaxStudents: nb.MaxStudents,
	})
}

func (svc *Service) QueryAll() ([]Batch, error) {
	return svc.repo.QueryAllBatches()
}

func (svc *Service) GetByID(id string) (Batch, error) {
	return svc.repo.GetBatchByID(id)
}

// TodayClasses returns the batches scheduled for the current local weekday.
// The result is recomputed on every call; it is never cached.
func (svc *Service) TodayClasses() ([]Batch, error) {
	return svc.ClassesOn(time.Now().Weekday())
}

func (svc *Service) ClassesOn(day time.Weekday) ([]Batch, error) {
	all, err := svc.repo.QueryAllBatches()
	if err != nil {
		return nil, err
	}
	batches := make([]Batch, 0, len(all))
	for _, b := range all {
		if b.ScheduledOn(day) {
			batches = append(batches, b)
		}
	}
	return batches, nil
}

func (svc *Service) Update(id string, up UpdateBatch) (Batch, error) {
	return svc.repo.UpdateBatch(id, up)
}

func (svc *Service) Delete(id string) (Batch, error) {
	return svc.repo.DeleteBatch(id)
}
