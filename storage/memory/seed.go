package memory

import (
	"embed"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/coachdesk/coachdesk/core/attendance"
	"github.com/coachdesk/coachdesk/core/batch"
	"github.com/coachdesk/coachdesk/core/payment"
	"github.com/coachdesk/coachdesk/core/student"
)

//go:embed seed
var seedFS embed.FS

type seedData struct {
	Students   []student.Student
	Batches    []batch.Batch
	Attendance []attendance.Record
	Payments   []payment.Payment
}

func loadSeed() (*seedData, error) {
	var seed seedData
	if err := loadSeedFile("seed/students.json", &seed.Students); err != nil {
		return nil, err
	}
	if err := loadSeedFile("seed/batches.json", &seed.Batches); err != nil {
		return nil, err
	}
	if err := loadSeedFile("seed/attendance.json", &seed.Attendance); err != nil {
		return nil, err
	}
	if err := loadSeedFile("seed/payments.json", &seed.Payments); err != nil {
		return nil, err
	}
	return &seed, nil
}

func loadSeedFile(name string, dst interface{}) error {
	data, err := seedFS.ReadFile(name)
	if err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.Wrapf(err, "parsing %s", name)
	}
	return nil
}
