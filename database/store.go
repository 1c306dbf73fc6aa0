package database

import (
	"context"
	"sync"
	"time"

	"MediCare/models"
)

// Tx is a consistent view of every table. Inside Store.Update it is a private
// copy that becomes the live state only if the update succeeds; inside
// Store.View it is the live state and must not be written.
type Tx struct {
	Users         *Table[models.User]
	Departments   *Table[models.Department]
	Doctors       *Table[models.Doctor]
	Patients      *Table[models.Patient]
	Appointments  *Table[models.Appointment]
	Prescriptions *Table[models.Prescription]
	Bills         *Table[models.Bill]

	now time.Time
}

// Now is the store clock reading taken when the transaction started.
func (tx *Tx) Now() time.Time {
	return tx.now
}

func newTx() *Tx {
	return &Tx{
		Users:         newTable[models.User]("users", nil),
		Departments:   newTable[models.Department]("departments", nil),
		Doctors:       newTable[models.Doctor]("doctors", cloneDoctor),
		Patients:      newTable[models.Patient]("patients", nil),
		Appointments:  newTable[models.Appointment]("appointments", nil),
		Prescriptions: newTable[models.Prescription]("prescriptions", models.Prescription.Clone),
		Bills:         newTable[models.Bill]("bills", nil),
	}
}

func (tx *Tx) clone() *Tx {
	return &Tx{
		Users:         tx.Users.clone(),
		Departments:   tx.Departments.clone(),
		Doctors:       tx.Doctors.clone(),
		Patients:      tx.Patients.clone(),
		Appointments:  tx.Appointments.clone(),
		Prescriptions: tx.Prescriptions.clone(),
		Bills:         tx.Bills.clone(),
	}
}

func (tx *Tx) freeze() {
	tx.Users.frozen = true
	tx.Departments.frozen = true
	tx.Doctors.frozen = true
	tx.Patients.frozen = true
	tx.Appointments.frozen = true
	tx.Prescriptions.frozen = true
	tx.Bills.frozen = true
}

func cloneDoctor(d models.Doctor) models.Doctor {
	if d.Avatar != nil {
		avatar := *d.Avatar
		d.Avatar = &avatar
	}
	return d
}

// Store is the single owner of all entity data. Reads share a lock; writes
// run against a copy of the tables and are swapped in atomically.
type Store struct {
	mu     sync.RWMutex
	tables *Tx
	clock  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock used for created_at timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		tables: newTx(),
		clock:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tables.freeze()
	return s
}

// Now returns the store clock reading.
func (s *Store) Now() time.Time {
	return s.clock()
}

// View runs fn against the live tables under a read lock.
func (s *Store) View(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx := *s.tables
	tx.now = s.clock()
	return fn(&tx)
}

// Update runs fn against a copy of the tables. The copy replaces the live
// tables only when fn returns nil, so every write is all-or-nothing.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.tables.clone()
	tx.now = s.clock()
	if err := fn(tx); err != nil {
		return err
	}
	tx.freeze()
	s.tables = tx
	return nil
}
