package database

import (
	"context"

	"MediCare/models"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// PasswordHasher turns a plaintext password into the stored hash.
type PasswordHasher func(password string) (string, error)

// Seed replaces the contents of the store with the fixed seed rows. Calling
// it again resets the store.
func Seed(ctx context.Context, store *Store, hash PasswordHasher) error {
	users := models.SeedUsers()

	// Seed accounts share a handful of passwords; hash each one once.
	hashes := make(map[string]string)
	for _, u := range users {
		if _, ok := hashes[u.Password]; ok {
			continue
		}
		h, err := hash(u.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash seed password")
		}
		hashes[u.Password] = h
	}

	err := store.Update(ctx, func(tx *Tx) error {
		fresh := newTx()
		for _, d := range models.SeedDepartments() {
			fresh.Departments.Put(d.ID, d)
		}
		for _, u := range users {
			user := u.User
			user.PasswordHash = hashes[u.Password]
			fresh.Users.Put(user.ID, user)
		}
		for _, d := range models.SeedDoctors() {
			fresh.Doctors.Put(d.ID, d)
		}
		for _, p := range models.SeedPatients() {
			fresh.Patients.Put(p.ID, p)
		}
		for _, a := range models.SeedAppointments() {
			fresh.Appointments.Put(a.ID, a)
		}
		for _, p := range models.SeedPrescriptions() {
			fresh.Prescriptions.Put(p.ID, p)
		}
		for _, b := range models.SeedBills() {
			fresh.Bills.Put(b.ID, b)
		}
		fresh.now = tx.now
		*tx = *fresh
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to load seed data")
	}

	log.Info().
		Int("users", len(users)).
		Int("doctors", len(models.SeedDoctors())).
		Int("patients", len(models.SeedPatients())).
		Int("appointments", len(models.SeedAppointments())).
		Msg("Seed data loaded")
	return nil
}

// Snapshot is a copy of every table, with passwords removed.
type Snapshot struct {
	Departments   []models.Department   `json:"departments"`
	Users         []models.UserView     `json:"users"`
	Doctors       []models.Doctor       `json:"doctors"`
	Patients      []models.Patient      `json:"patients"`
	Appointments  []models.Appointment  `json:"appointments"`
	Prescriptions []models.Prescription `json:"prescriptions"`
	Bills         []models.Bill         `json:"bills"`
}

// Snapshot copies the current contents of the store.
func (s *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := s.View(ctx, func(tx *Tx) error {
		snap.Departments = tx.Departments.List()
		for _, u := range tx.Users.List() {
			snap.Users = append(snap.Users, u.View())
		}
		snap.Doctors = tx.Doctors.List()
		snap.Patients = tx.Patients.List()
		snap.Appointments = tx.Appointments.List()
		snap.Prescriptions = tx.Prescriptions.List()
		snap.Bills = tx.Bills.List()
		return nil
	})
	return snap, err
}
