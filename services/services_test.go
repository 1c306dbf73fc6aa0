package services

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"MediCare/cache"
	"MediCare/database"
	"MediCare/metrics"
	"MediCare/models"
	"MediCare/repositories"
	"MediCare/utils"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testKey = "0123456789abcdef0123456789abcdef"

type recordingNotifier struct {
	mu     sync.Mutex
	booked []models.AppointmentView
	err    error
}

func (n *recordingNotifier) AppointmentBooked(_ context.Context, appt models.AppointmentView) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.booked = append(n.booked, appt)
	return n.err
}

type testEnv struct {
	store        *database.Store
	notifier     *recordingNotifier
	metrics      *metrics.Metrics
	auth         AuthService
	users        UserService
	departments  *DepartmentService
	doctors      *DoctorService
	patients     *PatientService
	appointments *AppointmentService
	bills        *BillService
	rx           *PrescriptionService
	dashboard    *DashboardService
}

func newTestEnv(t *testing.T, transitions models.TransitionPolicy) *testEnv {
	t.Helper()
	ctx := context.Background()

	store := database.NewStore()
	require.NoError(t, database.Seed(ctx, store, utils.PasswordHasher(bcrypt.MinCost)))

	sessions := cache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { _ = sessions.Close() })

	tokens, err := utils.NewTokenIssuer(testKey, time.Hour)
	require.NoError(t, err)

	m := metrics.New()
	notifier := &recordingNotifier{}
	latency := NewLatency(false)
	userRepo := repositories.NewUserRepository(store, models.DeleteDangle)
	auth := NewAuthService(userRepo, repositories.NewSessionRepository(sessions), tokens, latency, m)

	return &testEnv{
		store:        store,
		notifier:     notifier,
		metrics:      m,
		auth:         auth,
		users:        NewUserService(userRepo, auth, bcrypt.MinCost, latency, m),
		departments:  NewDepartmentService(repositories.NewDepartmentRepository(store, models.DeleteDangle), latency, m),
		doctors:      NewDoctorService(repositories.NewDoctorRepository(store, models.DeleteDangle), bcrypt.MinCost, latency, m),
		patients:     NewPatientService(repositories.NewPatientRepository(store, models.DeleteDangle), bcrypt.MinCost, latency, m),
		appointments: NewAppointmentService(repositories.NewAppointmentRepository(store, models.DeleteDangle), notifier, transitions, latency, m),
		bills:        NewBillService(repositories.NewBillingRepository(store), latency, m),
		rx:           NewPrescriptionService(repositories.NewPrescriptionRepository(store), latency),
		dashboard:    NewDashboardService(repositories.NewDashboardRepository(store), latency),
	}
}

func TestLoginSeedAdmin(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)
	ctx := context.Background()

	res, err := env.auth.Login(ctx, "admin@medicare.pro", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, models.RoleAdmin, res.User.Role)
	assert.Equal(t, "Sarah Mitchell", res.User.Name)

	session, err := env.auth.Session(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), session.User.ID)

	require.NoError(t, env.auth.Logout(ctx, res.Token))
	_, err = env.auth.Session(ctx, res.Token)
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestLoginFailuresDoNotRevealWhichField(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)
	ctx := context.Background()

	_, err := env.auth.Login(ctx, "admin@medicare.pro", "wrong-password")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, "nobody@medicare.pro", "admin123")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, "", "")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSessionRejectsForeignTokens(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)

	other, err := utils.NewTokenIssuer("abcdef0123456789abcdef0123456789", time.Hour)
	require.NoError(t, err)
	token, _, err := other.Issue("sid", 1, "admin")
	require.NoError(t, err)

	_, err = env.auth.Session(context.Background(), token)
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestDeleteUserRevokesSessions(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)
	ctx := context.Background()

	res, err := env.auth.Login(ctx, "alice@example.com", "patient123")
	require.NoError(t, err)

	require.NoError(t, env.users.Delete(ctx, res.User.ID))
	_, err = env.auth.Session(ctx, res.Token)
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	_, err = env.users.GetByID(ctx, res.User.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUserCreateAndUpdate(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)
	ctx := context.Background()

	created, err := env.users.Create(ctx, models.NewUser{
		Name: "Nina Reyes", Email: "nina@example.com", Password: "secret12", Role: models.RolePatient,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(32), created.ID)

	_, err = env.users.Create(ctx, models.NewUser{
		Name: "Nina Again", Email: "NINA@example.com", Password: "secret12", Role: models.RolePatient,
	})
	assert.ErrorIs(t, err, models.ErrConflict)

	password := "changed99"
	name := "Nina R."
	updated, err := env.users.Update(ctx, created.ID, models.UserUpdate{Name: &name, Password: &password})
	require.NoError(t, err)
	assert.Equal(t, "Nina R.", updated.Name)

	_, err = env.auth.Login(ctx, "nina@example.com", "changed99")
	assert.NoError(t, err)
	_, err = env.auth.Login(ctx, "nina@example.com", "secret12")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestUserUpdateIsLogged(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)

	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })

	name := "Alice J."
	_, err := env.users.Update(context.Background(), 12, models.UserUpdate{Name: &name})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"user_id":12`)
	assert.Contains(t, buf.String(), `"message":"User updated"`)
	assert.Contains(t, buf.String(), `"password_changed":false`)
}

func TestSeedScenarios(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)
	ctx := context.Background()

	doctor, err := env.doctors.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 250.0, doctor.Fee)
	require.NotNil(t, doctor.Department)
	assert.Equal(t, "Cardiology", doctor.Department.Name)

	departments, err := env.departments.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 5)
	for _, d := range departments {
		inDept, err := env.doctors.GetByDepartment(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, len(inDept), d.DoctorCount, d.Name)
	}

	_, err = env.doctors.GetByID(ctx, 99)
	assert.EqualError(t, err, "Doctor not found")
}

func TestBookCreatesPendingBillAndNotifies(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)
	ctx := context.Background()

	appt, err := env.appointments.Book(ctx, models.Booking{
		PatientID: 1, DoctorID: 1, AppointmentDate: "2025-05-01", AppointmentTime: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(31), appt.ID)
	assert.Equal(t, models.StatusScheduled, appt.Status)
	require.NotNil(t, appt.Bill)
	assert.Equal(t, 250.0, appt.Bill.Amount)
	assert.Equal(t, models.BillPending, appt.Bill.Status)

	bill, err := env.bills.GetByAppointment(ctx, appt.ID)
	require.NoError(t, err)
	require.NotNil(t, bill)
	assert.Equal(t, int64(11), bill.ID)

	require.Len(t, env.notifier.booked, 1)
	assert.Equal(t, appt.ID, env.notifier.booked[0].ID)

	revenue, err := env.bills.GetTotalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 630.0+250.0, revenue.TotalPending)
}

func TestBookSurvivesNotifierFailure(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)
	env.notifier.err = errors.New("smtp down")

	appt, err := env.appointments.Book(context.Background(), models.Booking{
		PatientID: 2, DoctorID: 3, AppointmentDate: "2025-05-02", AppointmentTime: "10:30",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(31), appt.ID)
}

func TestBookWithMissingDoctorChangesNothing(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)
	ctx := context.Background()

	_, err := env.appointments.Book(ctx, models.Booking{
		PatientID: 1, DoctorID: 99, AppointmentDate: "2025-05-01", AppointmentTime: "09:00",
	})
	assert.EqualError(t, err, "Doctor not found")

	appointments, err := env.appointments.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, appointments, 30)
	bills, err := env.bills.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, bills, 10)
	assert.Empty(t, env.notifier.booked)
}

func TestBookRejectsMalformedInput(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)

	_, err := env.appointments.Book(context.Background(), models.Booking{
		PatientID: 1, DoctorID: 1, AppointmentDate: "01/05/2025", AppointmentTime: "9am",
	})
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestStrictStatusTransitions(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)
	ctx := context.Background()

	appt, err := env.appointments.UpdateStatus(ctx, 8, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, appt.Status)

	_, err = env.appointments.UpdateStatus(ctx, 8, models.StatusCancelled)
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = env.appointments.UpdateStatus(ctx, 8, models.StatusCompleted)
	assert.NoError(t, err, "re-applying the current status is a no-op")

	_, err = env.appointments.UpdateStatus(ctx, 8, "Postponed")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestDoctorUpdatesOnlyOwnAppointments(t *testing.T) {
	env := newTestEnv(t, models.TransitionsPermissive)
	ctx := context.Background()

	// Appointment 8 belongs to doctor 7.
	_, err := env.appointments.UpdateStatusByDoctor(ctx, 2, 8, models.StatusCancelled)
	assert.ErrorIs(t, err, models.ErrForbidden)

	appt, err := env.appointments.GetByID(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, appt.Status)

	appt, err = env.appointments.UpdateStatusByDoctor(ctx, 7, 8, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, appt.Status)
}

func TestPermissiveStatusRoundTrip(t *testing.T) {
	env := newTestEnv(t, models.TransitionsPermissive)
	ctx := context.Background()

	for _, status := range []models.AppointmentStatus{models.StatusCancelled, models.StatusScheduled, models.StatusCompleted} {
		appt, err := env.appointments.UpdateStatus(ctx, 1, status)
		require.NoError(t, err)
		assert.Equal(t, status, appt.Status)
	}
}

func TestBillStatusAndRevenue(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)
	ctx := context.Background()

	revenue, err := env.bills.GetTotalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Revenue{TotalPaid: 2110, TotalPending: 630, Total: 2740}, revenue)

	bill, err := env.bills.UpdateStatus(ctx, 6, models.BillPaid)
	require.NoError(t, err)
	assert.Equal(t, models.BillPaid, bill.Status)

	revenue, err = env.bills.GetTotalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Revenue{TotalPaid: 2460, TotalPending: 280, Total: 2740}, revenue)

	_, err = env.bills.UpdateStatus(ctx, 6, "Refunded")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRegisterDoctorCanLogIn(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)
	ctx := context.Background()

	doctor, err := env.doctors.Register(ctx, models.DoctorRegistration{
		Name:           "Dr. Omar Haddad",
		Email:          "omar.haddad@medicare.pro",
		Password:       "doctor456",
		DepartmentID:   2,
		Specialization: "Neurosurgeon",
		Fee:            310,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), doctor.ID)
	require.NotNil(t, doctor.User)
	assert.Equal(t, models.RoleDoctor, doctor.User.Role)

	res, err := env.auth.Login(ctx, "omar.haddad@medicare.pro", "doctor456")
	require.NoError(t, err)
	assert.Equal(t, doctor.UserID, res.User.ID)

	byUser, err := env.doctors.GetByUserID(ctx, doctor.UserID)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, byUser.ID)
}

func TestRegisterPatient(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)
	ctx := context.Background()

	patient, err := env.patients.Register(ctx, models.PatientRegistration{
		Name: "Uma Stone", Email: "uma@example.com", Password: "patient456",
		Age: 41, Gender: "Female", Phone: "555-0199", Address: "12 Elm Street",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), patient.ID)
	require.NotNil(t, patient.User)
	assert.Equal(t, models.RolePatient, patient.User.Role)

	_, err = env.patients.Register(ctx, models.PatientRegistration{
		Name: "Uma Again", Email: "uma@example.com", Password: "patient456",
		Age: 41, Gender: "Female", Phone: "555-0199", Address: "12 Elm Street",
	})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestPrescriptionWriter(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)
	ctx := context.Background()

	p, err := env.rx.Create(ctx, models.NewPrescription{
		AppointmentID: 8,
		DoctorID:      7,
		Diagnosis:     "Migraine",
		Medicines:     []models.Medicine{{Name: "Sumatriptan", Dosage: "50mg"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), p.ID)
	require.NotNil(t, p.Appointment)
	assert.Equal(t, int64(8), p.Appointment.ID)

	_, err = env.rx.Create(ctx, models.NewPrescription{AppointmentID: 8, DoctorID: 1, Diagnosis: "Migraine"})
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = env.rx.Create(ctx, models.NewPrescription{AppointmentID: 6, Diagnosis: "Flu"})
	assert.ErrorIs(t, err, models.ErrConflict)

	appt, err := env.appointments.GetByID(ctx, 8)
	require.NoError(t, err)
	require.NotNil(t, appt.Prescription)
	assert.Equal(t, "Migraine", appt.Prescription.Diagnosis)
}

func TestDashboardSummary(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)

	summary, err := env.dashboard.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, summary.Doctors)
	assert.Equal(t, 20, summary.Patients)
	assert.Equal(t, 30, summary.Appointments)
	assert.Equal(t, 9, summary.ByStatus[models.StatusCompleted])
	assert.Equal(t, 2740.0, summary.Revenue.Total)
}

func TestDoctorEarnings(t *testing.T) {
	env := newTestEnv(t, models.TransitionsStrict)

	earnings, err := env.doctors.Earnings(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, earnings.CompletedSessions)
	assert.Equal(t, 500.0, earnings.TotalEarnings)
}

func TestLatencyHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := NewLatency(true).wait(ctx, slowDelay)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), slowDelay)

	assert.NoError(t, NewLatency(false).wait(ctx, slowDelay))
}
