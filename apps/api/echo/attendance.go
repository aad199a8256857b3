package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/coachdesk/coachdesk/core"
	"github.com/coachdesk/coachdesk/core/attendance"
)

type attendanceApi struct {
	svc *attendance.Service
}

func registerAttendanceAPI(g *echo.Group, svc *attendance.Service) {
	api := attendanceApi{svc: svc}

	ag := g.Group("/attendance")
	ag.GET("", api.query)
	ag.POST("", api.mark)
	ag.POST("/sheet", api.markSheet)
	ag.GET("/stats", api.stats)
	ag.GET("/status", api.status)

	dg := ag.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

// query filters by student, or by class with an optional date.
func (api *attendanceApi) query(ctx echo.Context) error {
	var (
		records []attendance.Record
		err     error
	)
	switch {
	case ctx.QueryParam("student") != "":
		records, err = api.svc.QueryByStudent(ctx.QueryParam("student"))
	case ctx.QueryParam("class") != "":
		records, err = api.svc.QueryByClass(ctx.QueryParam("class"), ctx.QueryParam("date"))
	default:
		records, err = api.svc.QueryAll()
	}
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *attendanceApi) mark(ctx echo.Context) error {
	var data attendance.NewRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRecord")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	rec, err := api.svc.Mark(data)
	if err != nil {
		return errors.Wrap(err, "marking attendance")
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *attendanceApi) markSheet(ctx echo.Context) error {
	var data attendance.Sheet
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Sheet")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	records, err := api.svc.MarkSheet(data)
	if err != nil {
		return errors.Wrap(err, "marking attendance sheet")
	}
	return ctx.JSON(http.StatusCreated, records)
}

// stats covers the trailing 30 days unless an explicit range is given.
func (api *attendanceApi) stats(ctx echo.Context) error {
	classID := ctx.QueryParam("class")
	if classID == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "class", Error: "this field is required"})
	}

	start, end := ctx.QueryParam("start"), ctx.QueryParam("end")
	if start == "" {
		start = core.DaysAgo(30)
	}
	if end == "" {
		end = core.Today()
	}

	stats, err := api.svc.Stats(classID, start, end)
	if err != nil {
		return errors.Wrap(err, "computing attendance stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

// status looks up one student's mark on one date (today by default).
func (api *attendanceApi) status(ctx echo.Context) error {
	studentID := ctx.QueryParam("student")
	if studentID == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "student", Error: "this field is required"})
	}
	date := ctx.QueryParam("date")
	if date == "" {
		date = core.Today()
	}

	status, marked, err := api.svc.StatusFor(studentID, date)
	if err != nil {
		return errors.Wrap(err, "looking up attendance status")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"status": status, "marked": marked})
}

func (api *attendanceApi) retrieve(ctx echo.Context) error {
	rec, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) update(ctx echo.Context) error {
	var data attendance.UpdateRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateRecord")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	rec, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) destroy(ctx echo.Context) error {
	rec, err := api.svc.Delete(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}
