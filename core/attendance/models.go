package attendance

import (
	"math"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/coachdesk/coachdesk/core"
)

// Attendance statuses
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

var AllStatuses = []Status{StatusPresent, StatusAbsent, StatusLate}

// Record captures one student's presence in one class on one calendar date.
// The store keeps at most one record per (StudentID, Date) pair; marking the
// same pair again overwrites the earlier record.
type Record struct {
	ID        string    `json:"id"`
	ClassID   string    `json:"classId"`
	StudentID string    `json:"studentId"`
	Date      string    `json:"date"` // core.DateLayout
	Status    Status    `json:"status"`
	MarkedAt  time.Time `json:"markedAt"` // UTC
}

// NewRecord contains information needed to mark one student's attendance.
type NewRecord struct {
	ClassID   string `json:"classId" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	Date      string `json:"date" validate:"required,isodate"`
	Status    Status `json:"status" validate:"required,attstatus"`
}

func (nr *NewRecord) Validate() error {
	nr.ClassID = core.CleanString(nr.ClassID)
	nr.StudentID = core.CleanString(nr.StudentID)
	nr.Date = core.CleanString(nr.Date)
	return core.Validate.Struct(nr)
}

// Sheet is a bulk marking submission for one class on one date.
type Sheet struct {
	ClassID string       `json:"classId" validate:"required"`
	Date    string       `json:"date" validate:"required,isodate"`
	Entries []SheetEntry `json:"entries" validate:"required,min=1,dive"`
}

type SheetEntry struct {
	StudentID string `json:"studentId" validate:"required"`
	Status    Status `json:"status" validate:"required,attstatus"`
}

func (sh *Sheet) Validate() error {
	sh.ClassID = core.CleanString(sh.ClassID)
	sh.Date = core.CleanString(sh.Date)
	return core.Validate.Struct(sh)
}

// UpdateRecord defines what information may be provided to modify an existing
// Record. Unset fields are left untouched by the store.
type UpdateRecord struct {
	ClassID null.String `json:"classId"`
	Date    null.String `json:"date" validate:"omitempty,isodate"`
	Status  null.String `json:"status" validate:"omitempty,attstatus"`
}

func (ur *UpdateRecord) Validate() error {
	return core.Validate.Struct(ur)
}

// Stats aggregates a class's attendance over an inclusive date range.
type Stats struct {
	Total             int `json:"total"`
	Present           int `json:"present"`
	Absent            int `json:"absent"`
	Late              int `json:"late"`
	PresentPercentage int `json:"presentPercentage"`
}

// ComputeStats tallies the given records. PresentPercentage is 0 when there
// are no records at all.
func ComputeStats(records []Record) Stats {
	var stats Stats
	for _, r := range records {
		stats.Total++
		switch r.Status {
		case StatusPresent:
			stats.Present++
		case StatusAbsent:
			stats.Absent++
		case StatusLate:
			stats.Late++
		}
	}
	if stats.Total > 0 {
		stats.PresentPercentage = int(math.Round(float64(stats.Present) / float64(stats.Total) * 100))
	}
	return stats
}
