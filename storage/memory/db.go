// Package memory implements the application's stores as in-memory tables
// seeded from embedded JSON. Every operation hands out defensive copies and
// sleeps for a per-operation-category delay to emulate a remote data API.
package memory

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coachdesk/coachdesk/core"
	"github.com/coachdesk/coachdesk/core/attendance"
	"github.com/coachdesk/coachdesk/core/batch"
	"github.com/coachdesk/coachdesk/core/payment"
	"github.com/coachdesk/coachdesk/core/student"
)

// Simulated network latency per operation category. Purely a UX artifact;
// scaled by Config.LatencyScale (0 in tests).
const (
	listDelay   = 300 * time.Millisecond
	getDelay    = 200 * time.Millisecond
	filterDelay = 250 * time.Millisecond
	createDelay = 400 * time.Millisecond
	updateDelay = 350 * time.Millisecond
	deleteDelay = 300 * time.Millisecond
)

type (
	DB struct {
		cfg *core.Config

		students   *studentTable
		batches    *batchTable
		attendance *attendanceTable
		payments   *paymentTable

		idSeq uint64
	}

	studentTable struct {
		rows  []student.Student
		mutex sync.RWMutex
	}

	batchTable struct {
		rows  []batch.Batch
		mutex sync.RWMutex
	}

	attendanceTable struct {
		rows  []attendance.Record
		mutex sync.RWMutex
	}

	paymentTable struct {
		rows  []payment.Payment
		mutex sync.RWMutex
	}
)

// Open builds a DB seeded with the embedded data set.
func Open(cfg *core.Config) (*DB, error) {
	db := &DB{
		cfg:        cfg,
		students:   &studentTable{},
		batches:    &batchTable{},
		attendance: &attendanceTable{},
		payments:   &paymentTable{},
	}
	if err := db.Reset(); err != nil {
		return nil, err
	}
	return db, nil
}

// Reset reloads the seed data, discarding every mutation since Open.
// Tests use it to get a known starting state.
func (db *DB) Reset() error {
	seed, err := loadSeed()
	if err != nil {
		return err
	}

	db.students.mutex.Lock()
	db.students.rows = seed.Students
	db.students.mutex.Unlock()

	db.batches.mutex.Lock()
	db.batches.rows = seed.Batches
	db.batches.mutex.Unlock()

	db.attendance.mutex.Lock()
	db.attendance.rows = seed.Attendance
	db.attendance.mutex.Unlock()

	db.payments.mutex.Lock()
	db.payments.rows = seed.Payments
	db.payments.mutex.Unlock()

	return nil
}

// nextID issues a time-based token, unique for the DB lifetime.
func (db *DB) nextID() string {
	seq := atomic.AddUint64(&db.idSeq, 1)
	return fmt.Sprintf("%d-%d", time.Now().UnixNano()/int64(time.Millisecond), seq)
}

func (db *DB) pause(d time.Duration) {
	if scale := db.cfg.LatencyScale; scale > 0 {
		time.Sleep(time.Duration(float64(d) * scale))
	}
}
