package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/coachdesk/coachdesk/core"
	"github.com/coachdesk/coachdesk/core/attendance"
	"github.com/coachdesk/coachdesk/core/batch"
	"github.com/coachdesk/coachdesk/core/payment"
	"github.com/coachdesk/coachdesk/core/registrar"
	"github.com/coachdesk/coachdesk/core/student"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool

		Logger        core.Logger
		StudentSvc    *student.Service
		BatchSvc      *batch.Service
		AttendanceSvc *attendance.Service
		PaymentSvc    *payment.Service
		Registrar     *registrar.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	registerStudentAPI(v1, s.opts.StudentSvc, s.opts.AttendanceSvc, s.opts.PaymentSvc, s.opts.Registrar)
	registerBatchAPI(v1, s.opts.BatchSvc, s.opts.StudentSvc, s.opts.Registrar)
	registerAttendanceAPI(v1, s.opts.AttendanceSvc)
	registerPaymentAPI(v1, s.opts.PaymentSvc, s.opts.Registrar)
	registerDashboardAPI(v1, s.opts.Registrar)
}

func (s *server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.app.Start(s.opts.Addr); err != nil && err != http.ErrServerClosed {
			s.opts.Logger.Fatal("starting server", err)
		}
	}()

	<-s.shutdown
	if err := s.Stop(context.Background()); err != nil {
		s.opts.Logger.Error("stopping server", err)
	}
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// signalShutdown is handed to the error handler so an integrity error can
// gracefully bring the server down.
func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+core.Conf.AppName+" API!")
}
