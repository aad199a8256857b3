package student_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachdesk/coachdesk/core/student"
	testutil "github.com/coachdesk/coachdesk/tests"
)

func TestService_Filter(t *testing.T) {
	svcs := testutil.NewServices(t)

	tests := []struct {
		name    string
		filter  student.QueryFilter
		wantIDs []string
	}{
		{
			"empty filter returns everyone",
			student.QueryFilter{},
			[]string{"s1001", "s1002", "s1003", "s1004", "s1005", "s1006"},
		},
		{
			"by batch",
			student.QueryFilter{BatchID: "b102"},
			[]string{"s1003", "s1004"},
		},
		{
			"by search",
			student.QueryFilter{Search: "sharma"},
			[]string{"s1001"},
		},
		{
			"search is case-insensitive and trimmed",
			student.QueryFilter{Search: "  SHARMA "},
			[]string{"s1001"},
		},
		{
			"search and batch combine with AND",
			student.QueryFilter{Search: "example.com", BatchID: "b103"},
			[]string{"s1005", "s1006"},
		},
		{
			"no match",
			student.QueryFilter{Search: "sharma", BatchID: "b103"},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students, err := svcs.Students.Filter(tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(students))
			for _, s := range students {
				ids = append(ids, s.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.wantIDs, ids)
			}
		})
	}
}

func TestService_Create_Defaults(t *testing.T) {
	svcs := testutil.NewServices(t)

	s, err := svcs.Students.Create(student.NewStudent{
		Name:      "Kiran Rao",
		Phone:     "9000000001",
		BatchID:   "b101",
		TotalFees: 30000,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(0), s.PaidAmount)
	assert.Equal(t, student.FeeStatusPending, s.FeeStatus)
	assert.NotEmpty(t, s.EnrollmentDate)
}
