package memory

import (
	"github.com/coachdesk/coachdesk/core/batch"
)

type batchRepository struct {
	db *DB
}

func NewBatchRepository(db *DB) batch.Repository {
	return &batchRepository{db: db}
}

// copyBatch duplicates the Days slice so callers never alias table state.
func copyBatch(b batch.Batch) batch.Batch {
	b.Days = append([]string(nil), b.Days...)
	return b
}

func (repo *batchRepository) CreateBatch(b batch.Batch) (batch.Batch, error) {
	repo.db.pause(createDelay)

	t := repo.db.batches
	t.mutex.Lock()
	defer t.mutex.Unlock()

	b.ID = repo.db.nextID()
	b = copyBatch(b)
	t.rows = append(t.rows, b)
	return copyBatch(b), nil
}

func (repo *batchRepository) QueryAllBatches() ([]batch.Batch, error) {
	repo.db.pause(listDelay)

	t := repo.db.batches
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	batches := make([]batch.Batch, 0, len(t.rows))
	for _, b := range t.rows {
		batches = append(batches, copyBatch(b))
	}
	return batches, nil
}

func (repo *batchRepository) GetBatchByID(id string) (batch.Batch, error) {
	repo.db.pause(getDelay)

	t := repo.db.batches
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	for _, b := range t.rows {
		if b.ID == id {
			return copyBatch(b), nil
		}
	}
	return batch.Batch{}, batch.ErrNotFound
}

func (repo *batchRepository) UpdateBatch(id string, up batch.UpdateBatch) (batch.Batch, error) {
	repo.db.pause(updateDelay)

	t := repo.db.batches
	t.mutex.Lock()
	defer t.mutex.Unlock()

	// only save set fields
	for i := range t.rows {
		if t.rows[i].ID != id {
			continue
		}
		b := &t.rows[i]
		if up.BatchName.Valid {
			b.BatchName = up.BatchName.String
		}
		if up.Subject.Valid {
			b.Subject = up.Subject.String
		}
		if up.TeacherID.Valid {
			b.TeacherID = up.TeacherID.String
		}
		if up.Timing.Valid {
			b.Timing = up.Timing.String
		}
		if up.Days != nil {
			b.Days = append([]string(nil), up.Days...)
		}
		if up.RoomNumber.Valid {
			b.RoomNumber = up.RoomNumber.String
		}
		if up.MaxStudents.Valid {
			b.MaxStudents = up.MaxStudents.Int
		}
		return copyBatch(*b), nil
	}
	return batch.Batch{}, batch.ErrNotFound
}

func (repo *batchRepository) DeleteBatch(id string) (batch.Batch, error) {
	repo.db.pause(deleteDelay)

	t := repo.db.batches
	t.mutex.Lock()
	defer t.mutex.Unlock()

	for i := range t.rows {
		if t.rows[i].ID == id {
			deleted := t.rows[i]
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return deleted, nil
		}
	}
	return batch.Batch{}, batch.ErrNotFound
}
