package echoapi_test

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/coachdesk/coachdesk/apps/api/echo"
	"github.com/coachdesk/coachdesk/core"
	"github.com/coachdesk/coachdesk/core/attendance"
	"github.com/coachdesk/coachdesk/core/batch"
	"github.com/coachdesk/coachdesk/core/payment"
	"github.com/coachdesk/coachdesk/core/registrar"
	"github.com/coachdesk/coachdesk/core/student"
	logsvc "github.com/coachdesk/coachdesk/services/logger"
	testutil "github.com/coachdesk/coachdesk/tests"
)

func newTestServer(t *testing.T) echoapi.Server {
	t.Helper()
	svcs := testutil.NewServices(t)

	return echoapi.NewServer(&echoapi.Options{
		Addr:           ":0",
		DisableReqLogs: true,
		Logger:         logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0)),
		StudentSvc:     svcs.Students,
		BatchSvc:       svcs.Batches,
		AttendanceSvc:  svcs.Attendance,
		PaymentSvc:     svcs.Payments,
		Registrar:      svcs.Registrar,
	})
}

func doRequest(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHome(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome to "+core.Conf.AppName)
}

func TestStudentAPI(t *testing.T) {
	srv := newTestServer(t)

	t.Run("query all", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/students", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var students []student.Student
		decode(t, rec, &students)
		assert.Len(t, students, 6)
	})

	t.Run("query by batch", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/students?batch=b101", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var students []student.Student
		decode(t, rec, &students)
		assert.Len(t, students, 2)
	})

	t.Run("search", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/students?search=priya", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var students []student.Student
		decode(t, rec, &students)
		require.Len(t, students, 1)
		assert.Equal(t, "Priya Patel", students[0].Name)
	})

	t.Run("retrieve", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/students/s1001", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var s student.Student
		decode(t, rec, &s)
		assert.Equal(t, "Arjun Sharma", s.Name)
	})

	t.Run("retrieve unknown is 404", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/students/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("create", func(t *testing.T) {
		body := `{"name":"Kiran Rao","phone":"9000000001","batchId":"b101","totalFees":30000}`
		rec := doRequest(t, srv, http.MethodPost, "/v1/students", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var s student.Student
		decode(t, rec, &s)
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, "pending", string(s.FeeStatus))
	})

	t.Run("create with unknown batch is 400", func(t *testing.T) {
		body := `{"name":"Kiran Rao","phone":"9000000001","batchId":"nope"}`
		rec := doRequest(t, srv, http.MethodPost, "/v1/students", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var flds map[string]string
		decode(t, rec, &flds)
		assert.Contains(t, flds, "batchId")
	})

	t.Run("create without name is 400", func(t *testing.T) {
		body := `{"phone":"9000000001","batchId":"b101"}`
		rec := doRequest(t, srv, http.MethodPost, "/v1/students", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var flds map[string]string
		decode(t, rec, &flds)
		assert.Contains(t, flds, "name")
	})

	t.Run("partial update", func(t *testing.T) {
		body := `{"phone":"9111111111"}`
		rec := doRequest(t, srv, http.MethodPut, "/v1/students/s1002", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var s student.Student
		decode(t, rec, &s)
		assert.Equal(t, "9111111111", s.Phone)
		assert.Equal(t, "Priya Patel", s.Name)
	})

	t.Run("update unknown is 404", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPut, "/v1/students/nope", `{"phone":"9"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodDelete, "/v1/students/s1006", "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(t, srv, http.MethodGet, "/v1/students/s1006", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("student attendance", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/students/s1001/attendance", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var records []attendance.Record
		decode(t, rec, &records)
		assert.Len(t, records, 2)
	})

	t.Run("student payments", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/students/s1001/payments", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var payments []payment.Payment
		decode(t, rec, &payments)
		assert.Len(t, payments, 1)
	})
}

func TestBatchAPI(t *testing.T) {
	srv := newTestServer(t)

	t.Run("query includes enrollment counts", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/batches", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var summaries []registrar.BatchSummary
		decode(t, rec, &summaries)
		require.Len(t, summaries, 3)

		byID := make(map[string]registrar.BatchSummary)
		for _, s := range summaries {
			byID[s.ID] = s
		}
		assert.Equal(t, 2, byID["b101"].Enrolled)
		assert.Equal(t, "Weekdays", byID["b102"].Schedule)
	})

	t.Run("create", func(t *testing.T) {
		body := `{"batchName":"Evening Doubts","subject":"Chemistry","timing":"7:00 PM - 8:30 PM","days":["Monday","Thursday"],"maxStudents":20}`
		rec := doRequest(t, srv, http.MethodPost, "/v1/batches", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var b batch.Batch
		decode(t, rec, &b)
		assert.NotEmpty(t, b.ID)
	})

	t.Run("create with bad weekday is 400", func(t *testing.T) {
		body := `{"batchName":"B","subject":"C","timing":"T","days":["Funday"],"maxStudents":5}`
		rec := doRequest(t, srv, http.MethodPost, "/v1/batches", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("today", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/batches/today", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("roster", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/batches/b102/students", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var students []student.Student
		decode(t, rec, &students)
		assert.Len(t, students, 2)
	})

	t.Run("delete with enrolled students is 400", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodDelete, "/v1/batches/b101", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var flds map[string]string
		decode(t, rec, &flds)
		assert.Contains(t, flds, "id")
	})

	t.Run("delete unknown is 404", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodDelete, "/v1/batches/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAttendanceAPI(t *testing.T) {
	srv := newTestServer(t)

	t.Run("mark", func(t *testing.T) {
		body := `{"classId":"b101","studentId":"s1001","date":"2026-08-28","status":"present"}`
		rec := doRequest(t, srv, http.MethodPost, "/v1/attendance", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var r attendance.Record
		decode(t, rec, &r)
		assert.NotEmpty(t, r.ID)

		// remarking overwrites instead of duplicating
		body = `{"classId":"b101","studentId":"s1001","date":"2026-08-28","status":"late"}`
		rec = doRequest(t, srv, http.MethodPost, "/v1/attendance", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var again attendance.Record
		decode(t, rec, &again)
		assert.Equal(t, r.ID, again.ID)
		assert.Equal(t, attendance.StatusLate, again.Status)
	})

	t.Run("mark with bad status is 400", func(t *testing.T) {
		body := `{"classId":"b101","studentId":"s1001","date":"2026-08-28","status":"here"}`
		rec := doRequest(t, srv, http.MethodPost, "/v1/attendance", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("sheet", func(t *testing.T) {
		body := `{"classId":"b102","date":"2026-08-28","entries":[{"studentId":"s1003","status":"present"},{"studentId":"s1004","status":"absent"}]}`
		rec := doRequest(t, srv, http.MethodPost, "/v1/attendance/sheet", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var records []attendance.Record
		decode(t, rec, &records)
		assert.Len(t, records, 2)
	})

	t.Run("query by class and date", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/attendance?class=b101&date=2026-08-24", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var records []attendance.Record
		decode(t, rec, &records)
		assert.Len(t, records, 2)
	})

	t.Run("stats", func(t *testing.T) {
		// end on 2026-08-27 so the record marked above stays out of range
		rec := doRequest(t, srv, http.MethodGet, "/v1/attendance/stats?class=b101&start=2026-08-01&end=2026-08-27", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var stats attendance.Stats
		decode(t, rec, &stats)
		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 75, stats.PresentPercentage)

		// widening the range picks up the extra late mark from 2026-08-28
		rec = doRequest(t, srv, http.MethodGet, "/v1/attendance/stats?class=b101&start=2026-08-01&end=2026-08-28", "")
		require.Equal(t, http.StatusOK, rec.Code)

		decode(t, rec, &stats)
		assert.Equal(t, 5, stats.Total)
		assert.Equal(t, 60, stats.PresentPercentage)
	})

	t.Run("stats without class is 400", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/attendance/stats", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("status lookup", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/attendance/status?student=s1002&date=2026-08-24", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var res struct {
			Status string `json:"status"`
			Marked bool   `json:"marked"`
		}
		decode(t, rec, &res)
		assert.True(t, res.Marked)
		assert.Equal(t, "late", res.Status)
	})
}

func TestPaymentAPI(t *testing.T) {
	srv := newTestServer(t)

	t.Run("record payment returns payment and updated student", func(t *testing.T) {
		body := `{"studentId":"s1004","amount":28000,"paymentMode":"online"}`
		rec := doRequest(t, srv, http.MethodPost, "/v1/payments", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var res registrar.PaymentResult
		decode(t, rec, &res)
		assert.NotEmpty(t, res.Payment.ReceiptNumber)
		assert.Equal(t, float64(38000), res.Student.PaidAmount)
		assert.Equal(t, student.FeeStatusPaid, res.Student.FeeStatus)
	})

	t.Run("record for unknown student is 400", func(t *testing.T) {
		body := `{"studentId":"nope","amount":100,"paymentMode":"cash"}`
		rec := doRequest(t, srv, http.MethodPost, "/v1/payments", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("record with bad mode is 400", func(t *testing.T) {
		body := `{"studentId":"s1001","amount":100,"paymentMode":"barter"}`
		rec := doRequest(t, srv, http.MethodPost, "/v1/payments", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("query by student", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/payments?student=s1002", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var payments []payment.Payment
		decode(t, rec, &payments)
		require.Len(t, payments, 1)
		assert.Equal(t, "RCP-SEED0000002", payments[0].ReceiptNumber)
	})
}

func TestDashboardAPI(t *testing.T) {
	srv := newTestServer(t)

	t.Run("overview", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/dashboard", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var ov registrar.Overview
		decode(t, rec, &ov)
		assert.Equal(t, 6, ov.TotalStudents)
		assert.Equal(t, 3, ov.TotalBatches)
		assert.Equal(t, 4, ov.PendingFees)
	})

	t.Run("fees summary", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/v1/fees/summary", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var summary registrar.FeesSummary
		decode(t, rec, &summary)
		assert.Equal(t, float64(125000), summary.TotalCollected)
		assert.Equal(t, float64(89000), summary.TotalOutstanding)
		assert.Equal(t, 4, summary.PendingStudents)
	})
}
