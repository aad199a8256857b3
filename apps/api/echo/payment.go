package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/coachdesk/coachdesk/core/payment"
	"github.com/coachdesk/coachdesk/core/registrar"
)

type paymentApi struct {
	svc       *payment.Service
	registrar *registrar.Service
}

func registerPaymentAPI(g *echo.Group, svc *payment.Service, reg *registrar.Service) {
	api := paymentApi{svc: svc, registrar: reg}

	pg := g.Group("/payments")
	pg.GET("", api.query)
	pg.POST("", api.create)

	dg := pg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *paymentApi) query(ctx echo.Context) error {
	var (
		payments []payment.Payment
		err      error
	)
	if studentID := ctx.QueryParam("student"); studentID != "" {
		payments, err = api.svc.QueryByStudent(studentID)
	} else {
		payments, err = api.svc.QueryAll()
	}
	if err != nil {
		return errors.Wrap(err, "querying payments")
	}
	return ctx.JSON(http.StatusOK, payments)
}

// create records a payment and returns both the payment and the student with
// the recomputed fee status.
func (api *paymentApi) create(ctx echo.Context) error {
	var data payment.NewPayment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPayment")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	result, err := api.registrar.RecordPayment(data)
	if err != nil {
		return errors.Wrap(err, "recording payment")
	}
	return ctx.JSON(http.StatusCreated, result)
}

func (api *paymentApi) retrieve(ctx echo.Context) error {
	p, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *paymentApi) update(ctx echo.Context) error {
	var data payment.UpdatePayment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdatePayment")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	p, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *paymentApi) destroy(ctx echo.Context) error {
	p, err := api.svc.Delete(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}
