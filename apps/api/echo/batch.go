package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/coachdesk/coachdesk/core/batch"
	"github.com/coachdesk/coachdesk/core/registrar"
	"github.com/coachdesk/coachdesk/core/student"
)

type batchApi struct {
	svc        *batch.Service
	studentSvc *student.Service
	registrar  *registrar.Service
}

func registerBatchAPI(
	g *echo.Group,
	svc *batch.Service,
	studentSvc *student.Service,
	reg *registrar.Service,
) {
	api := batchApi{svc: svc, studentSvc: studentSvc, registrar: reg}

	bg := g.Group("/batches")
	bg.GET("", api.query)
	bg.POST("", api.create)
	bg.GET("/today", api.queryToday)

	dg := bg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.GET("/students", api.queryRoster)
}

// Handlers

// query returns every batch with its derived enrollment count.
func (api *batchApi) query(ctx echo.Context) error {
	summaries, err := api.registrar.BatchSummaries()
	if err != nil {
		return errors.Wrap(err, "querying batches")
	}
	return ctx.JSON(http.StatusOK, summaries)
}

func (api *batchApi) create(ctx echo.Context) error {
	var data batch.NewBatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewBatch")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	b, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating batch")
	}
	return ctx.JSON(http.StatusCreated, b)
}

func (api *batchApi) queryToday(ctx echo.Context) error {
	batches, err := api.svc.TodayClasses()
	if err != nil {
		return errors.Wrap(err, "querying today's classes")
	}
	return ctx.JSON(http.StatusOK, batches)
}

func (api *batchApi) retrieve(ctx echo.Context) error {
	b, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, b)
}

func (api *batchApi) update(ctx echo.Context) error {
	var data batch.UpdateBatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateBatch")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	b, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, b)
}

// destroy refuses while students are still enrolled; see registrar.DeleteBatch.
func (api *batchApi) destroy(ctx echo.Context) error {
	b, err := api.registrar.DeleteBatch(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, b)
}

func (api *batchApi) queryRoster(ctx echo.Context) error {
	students, err := api.studentSvc.QueryByBatch(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying batch roster")
	}
	return ctx.JSON(http.StatusOK, students)
}
