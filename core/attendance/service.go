package attendance

import (
	"errors"
	"time"

	"github.com/coachdesk/coachdesk/core"
)

var ErrNotFound = errors.New("attendance record not found")

type (
	Repository interface {
		// UpsertRecord stores the record, replacing any existing record for
		// the same (StudentID, Date) pair.
		UpsertRecord(rec Record) (Record, error)
		QueryAllRecords() ([]Record, error)
		GetRecordByID(id string) (Record, error)
		// QueryRecordsByClass narrows to one date when `date` is non-empty.
		QueryRecordsByClass(classID, date string) ([]Record, error)
		QueryRecordsByStudent(studentID string) ([]Record, error)
		UpdateRecord(id string, up UpdateRecord) (Record, error)
		DeleteRecord(id string) (Record, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Mark records one student's attendance, overwriting any earlier mark for the
// same student and date.
func (svc *Service) Mark(nr NewRecord) (Record, error) {
	return svc.repo.UpsertRecord(Record{
		ClassID:   nr.ClassID,
		StudentID: nr.StudentID,
		Date:      nr.Date,
		Status:    nr.Status,
		MarkedAt:  time.Now().UTC(),
	})
}

// MarkSheet applies a bulk submission for one class/date, one upsert per entry.
func (svc *Service) MarkSheet(sh Sheet) ([]Record, error) {
	records := make([]Record, 0, len(sh.Entries))
	for _, entry := range sh.Entries {
		rec, err := svc.Mark(NewRecord{
			ClassID:   sh.ClassID,
			StudentID: entry.StudentID,
			Date:      sh.Date,
			Status:    entry.Status,
		})
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (svc *Service) QueryAll() ([]Record, error) {
	return svc.repo.QueryAllRecords()
}

func (svc *Service) GetByID(id string) (Record, error) {
	return svc.repo.GetRecordByID(id)
}

func (svc *Service) QueryByClass(classID, date string) ([]Record, error) {
	return svc.repo.QueryRecordsByClass(classID, date)
}

func (svc *Service) QueryByStudent(studentID string) ([]Record, error) {
	return svc.repo.QueryRecordsByStudent(studentID)
}

// Stats aggregates a class's records over the inclusive [startDate, endDate]
// range. ISO dates make the range check a plain string comparison.
func (svc *Service) Stats(classID, startDate, endDate string) (Stats, error) {
	records, err := svc.repo.QueryRecordsByClass(classID, "")
	if err != nil {
		return Stats{}, err
	}
	inRange := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Date >= startDate && r.Date <= endDate {
			inRange = append(inRange, r)
		}
	}
	return ComputeStats(inRange), nil
}

// MonthStats covers the trailing 30 days up to today.
func (svc *Service) MonthStats(classID string) (Stats, error) {
	return svc.Stats(classID, core.DaysAgo(30), core.Today())
}

// StatusFor looks up a student's mark on one date. The bool reports whether
// any mark exists.
func (svc *Service) StatusFor(studentID, date string) (Status, bool, error) {
	records, err := svc.repo.QueryRecordsByStudent(studentID)
	if err != nil {
		return "", false, err
	}
	for _, r := range records {
		if r.Date == date {
			return r.Status, true, nil
		}
	}
	return "", false, nil
}

// DayCounts tallies a single class/date, e.g. for the marking screen header.
func (svc *Service) DayCounts(classID, date string) (Stats, error) {
	records, err := svc.repo.QueryRecordsByClass(classID, date)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(records), nil
}

func (svc *Service) Update(id string, up UpdateRecord) (Record, error) {
	return svc.repo.UpdateRecord(id, up)
}

func (svc *Service) Delete(id string) (Record, error) {
	return svc.repo.DeleteRecord(id)
}
