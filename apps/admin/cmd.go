package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/coachdesk/coachdesk/core/registrar"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	registrar *registrar.Service
	out       io.Writer // defaults to os.Stdout
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.output(), "Usage:")
	fmt.Fprintln(cli.output(), "  summary     - print roster and fee-collection summary")
	fmt.Fprintln(cli.output(), "  markoverdue - flag students whose pending fees passed the overdue threshold")
}

func (cli *commandLine) output() io.Writer {
	if cli.out != nil {
		return cli.out
	}
	return os.Stdout
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "summary":
		summaryCmd := flag.NewFlagSet("summary", flag.ExitOnError)
		if err := summaryCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.summary()
	case "markoverdue":
		overdueCmd := flag.NewFlagSet("markoverdue", flag.ExitOnError)
		if err := overdueCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.markOverdue()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) summary() error {
	ov, err := cli.registrar.Overview()
	if err != nil {
		return err
	}
	fees, err := cli.registrar.FeesSummary()
	if err != nil {
		return err
	}

	w := cli.output()
	fmt.Fprintf(w, "Students:           %d\n", ov.TotalStudents)
	fmt.Fprintf(w, "Batches:            %d\n", ov.TotalBatches)
	fmt.Fprintf(w, "Marked today:       %d\n", ov.TodayAttendance)
	fmt.Fprintf(w, "Fee-pending:        %d\n", ov.PendingFees)
	fmt.Fprintf(w, "Collected:          %.2f\n", fees.TotalCollected)
	fmt.Fprintf(w, "Outstanding:        %.2f\n", fees.TotalOutstanding)
	for _, s := range fees.Students {
		if s.Outstanding > 0 {
			fmt.Fprintf(w, "  %-20s %s  due %.2f\n", s.Name, s.FeeStatus, s.Outstanding)
		}
	}
	return nil
}

func (cli *commandLine) markOverdue() error {
	flagged, err := cli.registrar.MarkOverdue(time.Now())
	if err != nil {
		return err
	}

	w := cli.output()
	if len(flagged) == 0 {
		fmt.Fprintln(w, "no students to flag")
		return nil
	}
	for _, s := range flagged {
		fmt.Fprintf(w, "flagged %s (%s) - due %.2f\n", s.Name, s.ID, s.Outstanding())
	}
	return nil
}
