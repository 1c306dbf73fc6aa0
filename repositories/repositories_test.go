package repositories

import (
	"context"
	"testing"
	"time"

	"MediCare/cache"
	"MediCare/database"
	"MediCare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

func newSeededStore(t *testing.T) *database.Store {
	t.Helper()
	store := database.NewStore(database.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, database.Seed(context.Background(), store, func(p string) (string, error) {
		return "hash:" + p, nil
	}))
	return store
}

func TestAppointmentJoins(t *testing.T) {
	store := newSeededStore(t)
	repo := NewAppointmentRepository(store, models.DeleteDangle)

	view, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)

	require.NotNil(t, view.Patient)
	require.NotNil(t, view.Patient.User)
	assert.Equal(t, "Bob Martinez", view.Patient.User.Name)
	require.NotNil(t, view.Doctor)
	require.NotNil(t, view.Doctor.User)
	assert.Equal(t, "Dr. Emily Chen", view.Doctor.User.Name)

	// Appointment 2 has prescriptions 2 and 10; the join takes the lowest id.
	require.NotNil(t, view.Prescription)
	assert.Equal(t, int64(2), view.Prescription.ID)
	require.NotNil(t, view.Bill)
	assert.Equal(t, int64(2), view.Bill.ID)

	scheduled, err := repo.GetByID(context.Background(), 8)
	require.NoError(t, err)
	assert.Nil(t, scheduled.Prescription)
	assert.Nil(t, scheduled.Bill)
}

func TestBillJoinStopsAtPatientAndDoctor(t *testing.T) {
	store := newSeededStore(t)
	repo := NewBillingRepository(store)

	bill, err := repo.GetByID(context.Background(), 8)
	require.NoError(t, err)
	require.NotNil(t, bill.Appointment)
	assert.Equal(t, int64(10), bill.Appointment.ID)
	require.NotNil(t, bill.Appointment.Patient)
	require.NotNil(t, bill.Appointment.Doctor)
	assert.Equal(t, 240.0, bill.Appointment.Doctor.Fee)

	none, err := repo.GetByAppointment(context.Background(), 8)
	require.NoError(t, err)
	assert.Nil(t, none)

	byPatient, err := repo.GetByPatient(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, byPatient, 1)
	assert.Equal(t, int64(2), byPatient[0].ID)
}

func TestBookCreatesAppointmentAndBill(t *testing.T) {
	store := newSeededStore(t)
	repo := NewAppointmentRepository(store, models.DeleteDangle)

	view, err := repo.Book(context.Background(), models.Booking{
		PatientID: 1, DoctorID: 1, AppointmentDate: "2025-04-01", AppointmentTime: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(31), view.ID)
	assert.Equal(t, models.StatusScheduled, view.Status)
	require.NotNil(t, view.Bill)
	assert.Equal(t, int64(11), view.Bill.ID)
	assert.Equal(t, 250.0, view.Bill.Amount)
	assert.Equal(t, models.BillPending, view.Bill.Status)
	assert.Equal(t, fixedNow, view.Bill.CreatedAt)
}

func TestBookWithMissingDoctorWritesNothing(t *testing.T) {
	store := newSeededStore(t)
	repo := NewAppointmentRepository(store, models.DeleteDangle)
	ctx := context.Background()

	_, err := repo.Book(ctx, models.Booking{PatientID: 1, DoctorID: 99, AppointmentDate: "2025-04-01", AppointmentTime: "09:00"})
	require.ErrorIs(t, err, models.ErrNotFound)
	assert.EqualError(t, err, "Doctor not found")

	_, err = repo.Book(ctx, models.Booking{PatientID: 99, DoctorID: 1, AppointmentDate: "2025-04-01", AppointmentTime: "09:00"})
	assert.EqualError(t, err, "Patient not found")

	require.NoError(t, store.View(ctx, func(tx *database.Tx) error {
		assert.Equal(t, 30, tx.Appointments.Len())
		assert.Equal(t, 10, tx.Bills.Len())
		return nil
	}))
}

func TestUpdateStatusGuard(t *testing.T) {
	store := newSeededStore(t)
	repo := NewAppointmentRepository(store, models.DeleteDangle)
	ctx := context.Background()

	guard := func(current models.Appointment) error {
		if !current.Status.CanTransition(models.StatusScheduled) {
			return models.Conflict("no")
		}
		return nil
	}
	_, err := repo.UpdateStatus(ctx, 1, models.StatusScheduled, guard)
	assert.ErrorIs(t, err, models.ErrConflict)

	view, err := repo.UpdateStatus(ctx, 1, models.StatusCancelled, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, view.Status)

	_, err = repo.UpdateStatus(ctx, 404, models.StatusCancelled, nil)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteDangleLeavesReferences(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()
	users := NewUserRepository(store, models.DeleteDangle)
	doctors := NewDoctorRepository(store, models.DeleteDangle)
	appts := NewAppointmentRepository(store, models.DeleteDangle)

	require.NoError(t, users.DeleteUser(ctx, 2))

	doctor, err := doctors.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, doctor.User)
	require.NotNil(t, doctor.Department)

	require.NoError(t, doctors.Delete(ctx, 1))
	view, err := appts.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, view.Doctor)
	assert.NotNil(t, view.Bill)

	assert.ErrorIs(t, doctors.Delete(ctx, 1), models.ErrNotFound)
}

func TestDeleteRestrictRejectsReferencedRows(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()
	users := NewUserRepository(store, models.DeleteRestrict)
	departments := NewDepartmentRepository(store, models.DeleteRestrict)
	appts := NewAppointmentRepository(store, models.DeleteRestrict)

	assert.ErrorIs(t, users.DeleteUser(ctx, 2), models.ErrConflict)
	assert.ErrorIs(t, departments.Delete(ctx, 1), models.ErrConflict)
	assert.ErrorIs(t, appts.Delete(ctx, 1), models.ErrConflict)

	// The admin account is referenced by nothing.
	assert.NoError(t, users.DeleteUser(ctx, 1))

	// Appointment 8 has no bill or prescription.
	assert.NoError(t, appts.Delete(ctx, 8))
}

func TestDeleteCascadeRemovesDependents(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()
	departments := NewDepartmentRepository(store, models.DeleteCascade)

	require.NoError(t, departments.Delete(ctx, 1))

	require.NoError(t, store.View(ctx, func(tx *database.Tx) error {
		// Doctors 1 and 6 sit in Cardiology.
		assert.False(t, tx.Doctors.Has(1))
		assert.False(t, tx.Doctors.Has(6))
		assert.Equal(t, 8, tx.Doctors.Len())

		for _, a := range tx.Appointments.List() {
			assert.NotContains(t, []int64{1, 6}, a.DoctorID)
		}
		for _, b := range tx.Bills.List() {
			assert.True(t, tx.Appointments.Has(b.AppointmentID), "bill %d", b.ID)
		}
		for _, p := range tx.Prescriptions.List() {
			assert.True(t, tx.Appointments.Has(p.AppointmentID), "prescription %d", p.ID)
		}
		// Owning user accounts survive.
		assert.True(t, tx.Users.Has(2))
		assert.True(t, tx.Users.Has(7))
		return nil
	}))
}

func TestCreateDoctorChecksReferences(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()
	doctors := NewDoctorRepository(store, models.DeleteDangle)

	_, err := doctors.Create(ctx, models.NewDoctor{UserID: 12, DepartmentID: 1, Specialization: "GP", Fee: 100})
	assert.ErrorIs(t, err, models.ErrConflict, "patient account cannot own a doctor")

	_, err = doctors.Create(ctx, models.NewDoctor{UserID: 2, DepartmentID: 1, Specialization: "GP", Fee: 100})
	assert.ErrorIs(t, err, models.ErrConflict, "user 2 already owns doctor 1")

	_, err = doctors.Create(ctx, models.NewDoctor{UserID: 500, DepartmentID: 1, Specialization: "GP", Fee: 100})
	assert.EqualError(t, err, "User not found")
}

func TestRegisterIsAtomic(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()
	doctors := NewDoctorRepository(store, models.DeleteDangle)

	user := models.User{Name: "Dr. New", Email: "new@medicare.pro", PasswordHash: "hash:x"}
	_, err := doctors.Register(ctx, user, models.NewDoctor{DepartmentID: 42, Specialization: "GP", Fee: 100})
	assert.EqualError(t, err, "Department not found")

	require.NoError(t, store.View(ctx, func(tx *database.Tx) error {
		assert.Equal(t, 31, tx.Users.Len())
		return nil
	}))

	view, err := doctors.Register(ctx, user, models.NewDoctor{DepartmentID: 2, Specialization: "GP", Fee: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(11), view.ID)
	require.NotNil(t, view.User)
	assert.Equal(t, int64(32), view.User.ID)
	assert.Equal(t, models.RoleDoctor, view.User.Role)
	assert.Equal(t, "Neurology", view.Department.Name)
}

func TestUserEmailUniqueness(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()
	users := NewUserRepository(store, models.DeleteDangle)

	_, err := users.CreateUser(ctx, models.User{Name: "Dup", Email: " ADMIN@medicare.pro", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = users.UpdateUser(ctx, 12, func(u *models.User) { u.Email = "bob@example.com" })
	assert.ErrorIs(t, err, models.ErrConflict)

	view, err := users.UpdateUser(ctx, 12, func(u *models.User) { u.Email = "alice@example.com" })
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", view.Email)
}

func TestDepartmentViews(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()
	repo := NewDepartmentRepository(store, models.DeleteDangle)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for _, d := range all {
		assert.Equal(t, 2, d.DoctorCount, d.Name)
	}

	detail, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	require.Len(t, detail.Doctors, 2)
	assert.Equal(t, "Dr. Michael Torres", detail.Doctors[0].User.Name)

	created, err := repo.Create(ctx, models.DepartmentInput{Name: "Dermatology"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), created.ID)
	assert.Equal(t, 0, created.DoctorCount)
}

func TestPrescriptionQueries(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()
	repo := NewPrescriptionRepository(store)

	byAppt, err := repo.GetByAppointment(ctx, 2)
	require.NoError(t, err)
	require.Len(t, byAppt, 2)
	assert.Equal(t, int64(2), byAppt[0].ID)
	assert.Equal(t, int64(10), byAppt[1].ID)

	byDoctor, err := repo.GetByDoctor(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byDoctor, 2)

	_, err = repo.Create(ctx, models.NewPrescription{AppointmentID: 8, DoctorID: 1, Diagnosis: "Flu"})
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = repo.Create(ctx, models.NewPrescription{AppointmentID: 6, Diagnosis: "Flu"})
	assert.ErrorIs(t, err, models.ErrConflict)

	p, err := repo.Create(ctx, models.NewPrescription{
		AppointmentID: 8, DoctorID: 7, Diagnosis: "Optic neuritis",
		Medicines: []models.Medicine{{Name: "Prednisolone", Dosage: "40mg"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), p.ID)
	require.NotNil(t, p.CreatedAt)
	assert.Equal(t, fixedNow, *p.CreatedAt)
	require.NotNil(t, p.Appointment)
	assert.Equal(t, int64(8), p.Appointment.ID)
}

func TestDashboardSummary(t *testing.T) {
	store := newSeededStore(t)
	summary, err := NewDashboardRepository(store).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, summary.Doctors)
	assert.Equal(t, 20, summary.Patients)
	assert.Equal(t, 5, summary.Departments)
	assert.Equal(t, 30, summary.Appointments)
	assert.Equal(t, 9, summary.ByStatus[models.StatusCompleted])
	assert.Equal(t, 3, summary.ByStatus[models.StatusCancelled])
	assert.Equal(t, 18, summary.ByStatus[models.StatusScheduled])
	assert.Equal(t, 2740.0, summary.Revenue.Total)
}

func TestEarnings(t *testing.T) {
	store := newSeededStore(t)
	earnings, err := NewDoctorRepository(store, models.DeleteDangle).Earnings(context.Background(), 1)
	require.NoError(t, err)

	// Doctor 1 completed appointments 1 and 4.
	assert.Equal(t, 2, earnings.CompletedSessions)
	assert.Equal(t, 500.0, earnings.TotalEarnings)
}

func TestSessionRepository(t *testing.T) {
	mem := cache.NewMemoryCache(time.Hour)
	t.Cleanup(func() { _ = mem.Close() })
	repo := NewSessionRepository(mem)
	ctx := context.Background()

	s1 := models.Session{ID: "a", Token: "t1", User: models.UserView{ID: 1, Role: models.RoleAdmin}}
	s2 := models.Session{ID: "b", Token: "t2", User: models.UserView{ID: 1, Role: models.RoleAdmin}}
	s3 := models.Session{ID: "c", Token: "t3", User: models.UserView{ID: 12, Role: models.RolePatient}}
	for _, s := range []models.Session{s1, s2, s3} {
		require.NoError(t, repo.Save(ctx, s, time.Hour))
	}

	got, err := repo.Get(ctx, 1, "a")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.Token)

	require.NoError(t, repo.Delete(ctx, 1, "a"))
	_, err = repo.Get(ctx, 1, "a")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	require.NoError(t, repo.DeleteAllForUser(ctx, 1))
	_, err = repo.Get(ctx, 1, "b")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
	_, err = repo.Get(ctx, 12, "c")
	assert.NoError(t, err)
}
