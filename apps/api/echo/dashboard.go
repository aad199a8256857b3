package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/coachdesk/coachdesk/core/registrar"
)

type dashboardApi struct {
	registrar *registrar.Service
}

func registerDashboardAPI(g *echo.Group, reg *registrar.Service) {
	api := dashboardApi{registrar: reg}

	g.GET("/dashboard", api.overview)
	g.GET("/fees/summary", api.feesSummary)
}

// Handlers

func (api *dashboardApi) overview(ctx echo.Context) error {
	ov, err := api.registrar.Overview()
	if err != nil {
		return errors.Wrap(err, "computing dashboard overview")
	}
	return ctx.JSON(http.StatusOK, ov)
}

func (api *dashboardApi) feesSummary(ctx echo.Context) error {
	summary, err := api.registrar.FeesSummary()
	if err != nil {
		return errors.Wrap(err, "computing fees summary")
	}
	return ctx.JSON(http.StatusOK, summary)
}
