package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/coachdesk/coachdesk/core/attendance"
	"github.com/coachdesk/coachdesk/core/payment"
	"github.com/coachdesk/coachdesk/core/registrar"
	"github.com/coachdesk/coachdesk/core/student"
)

type studentApi struct {
	svc       *student.Service
	attSvc    *attendance.Service
	paySvc    *payment.Service
	registrar *registrar.Service
}

func registerStudentAPI(
	g *echo.Group,
	svc *student.Service,
	attSvc *attendance.Service,
	paySvc *payment.Service,
	reg *registrar.Service,
) {
	api := studentApi{svc: svc, attSvc: attSvc, paySvc: paySvc, registrar: reg}

	sg := g.Group("/students")
	sg.GET("", api.query)
	sg.POST("", api.create)

	dg := sg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.GET("/attendance", api.queryAttendance)
	dg.GET("/payments", api.queryPayments)
}

// Handlers

func (api *studentApi) query(ctx echo.Context) error {
	var filter student.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	students, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	s, err := api.registrar.Enroll(data)
	if err != nil {
		return errors.Wrap(err, "enrolling student")
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	s, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) update(ctx echo.Context) error {
	var data student.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	s, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) destroy(ctx echo.Context) error {
	s, err := api.svc.Delete(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) queryAttendance(ctx echo.Context) error {
	records, err := api.attSvc.QueryByStudent(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying student attendance")
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *studentApi) queryPayments(ctx echo.Context) error {
	payments, err := api.paySvc.QueryByStudent(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying student payments")
	}
	return ctx.JSON(http.StatusOK, payments)
}
