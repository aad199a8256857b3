package main

import (
	"log"
	"os"

	"github.com/coachdesk/coachdesk/core"
	"github.com/coachdesk/coachdesk/core/attendance"
	"github.com/coachdesk/coachdesk/core/batch"
	"github.com/coachdesk/coachdesk/core/payment"
	"github.com/coachdesk/coachdesk/core/registrar"
	"github.com/coachdesk/coachdesk/core/student"
	"github.com/coachdesk/coachdesk/storage/memory"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up the store
	db, err := memory.Open(core.Conf)
	errAndDie(err)

	studentSvc := student.NewService(memory.NewStudentRepository(db))
	batchSvc := batch.NewService(memory.NewBatchRepository(db))
	attSvc := attendance.NewService(memory.NewAttendanceRepository(db))
	paySvc := payment.NewService(memory.NewPaymentRepository(db))

	// start CLI
	cli := commandLine{
		registrar: registrar.NewService(studentSvc, batchSvc, attSvc, paySvc, nil),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
