package memory

import (
	"github.com/coachdesk/coachdesk/core/attendance"
)

type attendanceRepository struct {
	db *DB
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) UpsertRecord(rec attendance.Record) (attendance.Record, error) {
	repo.db.pause(createDelay)

	t := repo.db.attendance
	t.mutex.Lock()
	defer t.mutex.Unlock()

	// one record per (student, date): marking again overwrites
	for i := range t.rows {
		if t.rows[i].StudentID == rec.StudentID && t.rows[i].Date == rec.Date {
			r := &t.rows[i]
			r.ClassID = rec.ClassID
			r.Status = rec.Status
			r.MarkedAt = rec.MarkedAt
			return *r, nil
		}
	}

	rec.ID = repo.db.nextID()
	t.rows = append(t.rows, rec)
	return rec, nil
}

func (repo *attendanceRepository) QueryAllRecords() ([]attendance.Record, error) {
	repo.db.pause(listDelay)

	t := repo.db.attendance
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	records := make([]attendance.Record, len(t.rows))
	copy(records, t.rows)
	return records, nil
}

func (repo *attendanceRepository) GetRecordByID(id string) (attendance.Record, error) {
	repo.db.pause(getDelay)

	t := repo.db.attendance
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	for _, r := range t.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return attendance.Record{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) QueryRecordsByClass(classID, date string) ([]attendance.Record, error) {
	repo.db.pause(filterDelay)

	t := repo.db.attendance
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	records := make([]attendance.Record, 0, len(t.rows))
	for _, r := range t.rows {
		if r.ClassID != classID {
			continue
		}
		if date != "" && r.Date != date {
			continue
		}
		records = append(records, r)
	}
	return records, nil
}

func (repo *attendanceRepository) QueryRecordsByStudent(studentID string) ([]attendance.Record, error) {
	repo.db.pause(filterDelay)

	t := repo.db.attendance
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	records := make([]attendance.Record, 0, len(t.rows))
	for _, r := range t.rows {
		if r.StudentID == studentID {
			records = append(records, r)
		}
	}
	return records, nil
}

func (repo *attendanceRepository) UpdateRecord(id string, up attendance.UpdateRecord) (attendance.Record, error) {
	repo.db.pause(updateDelay)

	t := repo.db.attendance
	t.mutex.Lock()
	defer t.mutex.Unlock()

	// only save set fields
	for i := range t.rows {
		if t.rows[i].ID != id {
			continue
		}
		r := &t.rows[i]
		if up.ClassID.Valid {
			r.ClassID = up.ClassID.String
		}
		if up.Date.Valid {
			r.Date = up.Date.String
		}
		if up.Status.Valid {
			r.Status = attendance.Status(up.Status.String)
		}
		return *r, nil
	}
	return attendance.Record{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) DeleteRecord(id string) (attendance.Record, error) {
	repo.db.pause(deleteDelay)

	t := repo.db.attendance
	t.mutex.Lock()
	defer t.mutex.Unlock()

	for i := range t.rows {
		if t.rows[i].ID == id {
			deleted := t.rows[i]
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return deleted, nil
		}
	}
	return attendance.Record{}, attendance.ErrNotFound
}
