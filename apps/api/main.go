package main

import (
	"log"
	"os"

	echoapi "github.com/coachdesk/coachdesk/apps/api/echo"
	"github.com/coachdesk/coachdesk/core"
	"github.com/coachdesk/coachdesk/core/attendance"
	"github.com/coachdesk/coachdesk/core/batch"
	"github.com/coachdesk/coachdesk/core/payment"
	"github.com/coachdesk/coachdesk/core/registrar"
	"github.com/coachdesk/coachdesk/core/student"
	emailsvc "github.com/coachdesk/coachdesk/services/email"
	logsvc "github.com/coachdesk/coachdesk/services/logger"
	"github.com/coachdesk/coachdesk/storage/memory"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var logger core.Logger
	if core.Conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	}

	// set up the store
	db, err := memory.Open(core.Conf)
	if err != nil {
		logger.Fatal("opening store", err)
	}

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	studentSvc := student.NewService(memory.NewStudentRepository(db))
	batchSvc := batch.NewService(memory.NewBatchRepository(db))
	attSvc := attendance.NewService(memory.NewAttendanceRepository(db))
	paySvc := payment.NewService(memory.NewPaymentRepository(db))
	regSvc := registrar.NewService(studentSvc, batchSvc, attSvc, paySvc, mailSvc)

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Addr:          core.Conf.Server.Addr,
		Logger:        logger,
		StudentSvc:    studentSvc,
		BatchSvc:      batchSvc,
		AttendanceSvc: attSvc,
		PaymentSvc:    paySvc,
		Registrar:     regSvc,
	})
	logger.Info("listening on " + core.Conf.Server.Addr)
	app.Start()
}
