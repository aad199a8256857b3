package batch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"
)

func TestBatch_ScheduledOn(t *testing.T) {
	b := Batch{Days: []string{"Monday", "Wednesday", "Friday"}}

	assert.True(t, b.ScheduledOn(time.Monday))
	assert.True(t, b.ScheduledOn(time.Friday))
	assert.False(t, b.ScheduledOn(time.Tuesday))
	assert.False(t, b.ScheduledOn(time.Sunday))
}

func TestBatch_ScheduleDisplay(t *testing.T) {
	tests := []struct {
		name string
		days []string
		want string
	}{
		{"empty", nil, "No schedule"},
		{"all seven days", Weekdays, "Daily"},
		{"monday through friday", []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, "Weekdays"},
		{"saturday and sunday", []string{"Saturday", "Sunday"}, "Weekends"},
		{"five days incl weekend", []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Saturday"}, "Monday, Tuesday, Wednesday, Thursday, Saturday"},
		{"arbitrary pair", []string{"Monday", "Thursday"}, "Monday, Thursday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Batch{Days: tt.days}
			assert.Equal(t, tt.want, b.ScheduleDisplay())
		})
	}
}

func TestNewBatch_Validate(t *testing.T) {
	nb := NewBatch{
		BatchName:   " Evening Doubts ",
		Subject:     "Chemistry",
		Timing:      "7:00 PM - 8:30 PM",
		Days:        []string{"Monday", "Thursday"},
		MaxStudents: 20,
	}
	assert.NoError(t, nb.Validate())
	assert.Equal(t, "Evening Doubts", nb.BatchName)

	tests := []struct {
		name string
		data NewBatch
	}{
		{"missing name", NewBatch{Subject: "C", Timing: "T", Days: []string{"Monday"}, MaxStudents: 1}},
		{"no days", NewBatch{BatchName: "B", Subject: "C", Timing: "T", MaxStudents: 1}},
		{"bad weekday", NewBatch{BatchName: "B", Subject: "C", Timing: "T", Days: []string{"Funday"}, MaxStudents: 1}},
		{"duplicate day", NewBatch{BatchName: "B", Subject: "C", Timing: "T", Days: []string{"Monday", "Monday"}, MaxStudents: 1}},
		{"zero capacity", NewBatch{BatchName: "B", Subject: "C", Timing: "T", Days: []string{"Monday"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.data.Validate())
		})
	}
}

func TestUpdateBatch_Validate(t *testing.T) {
	ub := UpdateBatch{MaxStudents: null.IntFrom(10)}
	assert.NoError(t, ub.Validate())

	ub = UpdateBatch{} // nil Days means "keep the current schedule"
	assert.NoError(t, ub.Validate())

	ub = UpdateBatch{Days: []string{"Funday"}}
	assert.Error(t, ub.Validate())

	ub = UpdateBatch{MaxStudents: null.IntFrom(-3)}
	assert.Error(t, ub.Validate())
}
