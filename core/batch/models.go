package batch

import (
	"strings"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/coachdesk/coachdesk/core"
)

// Weekdays holds the valid Batch.Days entries, matching time.Weekday names.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Batch is a scheduled group of students taught together, with fixed weekday
// recurrence and room.
type Batch struct {
	ID          string   `json:"id"`
	BatchName   string   `json:"batchName"`
	Subject     string   `json:"subject"`
	TeacherID   string   `json:"teacherId"`
	Timing      string   `json:"timing"`
	Days        []string `json:"days"`
	RoomNumber  string   `json:"roomNumber"`
	MaxStudents int      `json:"maxStudents"`
}

// ScheduledOn reports whether the batch meets on the given day.
func (b *Batch) ScheduledOn(day time.Weekday) bool {
	name := day.String()
	for _, d := range b.Days {
		if d == name {
			return true
		}
	}
	return false
}

// ScheduleDisplay is the operator-facing label for the batch's weekday set.
func (b *Batch) ScheduleDisplay() string {
	switch {
	case len(b.Days) == 0:
		return "No schedule"
	case len(b.Days) == 7:
		return "Daily"
	case len(b.Days) == 5 && !b.hasDay("Saturday") && !b.hasDay("Sunday"):
		return "Weekdays"
	case len(b.Days) == 2 && b.hasDay("Saturday") && b.hasDay("Sunday"):
		return "Weekends"
	}
	return strings.Join(b.Days, ", ")
}

func (b *Batch) hasDay(name string) bool {
	for _, d := range b.Days {
		if d == name {
			return true
		}
	}
	return false
}

// NewBatch contains information needed to create a new Batch.
type NewBatch struct {
	BatchName   string   `json:"batchName" validate:"required"`
	Subject     string   `json:"subject" validate:"required"`
	TeacherID   string   `json:"teacherId"`
	Timing      string   `json:"timing" validate:"required"`
	Days        []string `json:"days" validate:"required,min=1,unique,dive,weekday"`
	RoomNumber  string   `json:"roomNumber"`
	MaxStudents int      `json:"maxStudents" validate:"gt=0"`
}

func (nb *NewBatch) Validate() error {
	nb.BatchName = core.CleanString(nb.BatchName)
	nb.Subject = core.CleanString(nb.Subject)
	nb.Timing = core.CleanString(nb.Timing)
	nb.RoomNumber = core.CleanString(nb.RoomNumber)
	return core.Validate.Struct(nb)
}

// UpdateBatch defines what information may be provided to modify an existing
// Batch. Unset fields are left untouched by the store; a nil Days slice means
// "keep the current schedule".
type UpdateBatch struct {
	BatchName   null.String `json:"batchName"`
	Subject     null.String `json:"subject"`
	TeacherID   null.String `json:"teacherId"`
	Timing      null.String `json:"timing"`
	Days        []string    `json:"days" validate:"omitempty,min=1,unique,dive,weekday"`
	RoomNumber  null.String `json:"roomNumber"`
	MaxStudents null.Int    `json:"maxStudents" validate:"omitempty,gt=0"`
}

func (ub *UpdateBatch) Validate() error {
	if ub.BatchName.Valid {
		ub.BatchName = null.StringFrom(core.CleanString(ub.BatchName.String))
	}
	if ub.Subject.Valid {
		ub.Subject = null.StringFrom(core.CleanString(ub.Subject.String))
	}
	if ub.Timing.Valid {
		ub.Timing = null.StringFrom(core.CleanString(ub.Timing.String))
	}
	return core.Validate.Struct(ub)
}
