package repositories

import (
	"context"

	"MediCare/database"
	"MediCare/models"
)

type AppointmentRepository struct {
	store *database.Store
	refs  references
}

func NewAppointmentRepository(store *database.Store, policy models.DeletePolicy) *AppointmentRepository {
	return &AppointmentRepository{store: store, refs: newReferences(policy)}
}

func (r *AppointmentRepository) GetAll(ctx context.Context) ([]models.AppointmentView, error) {
	return r.filter(ctx, nil)
}

func (r *AppointmentRepository) GetByPatient(ctx context.Context, patientID int64) ([]models.AppointmentView, error) {
	return r.filter(ctx, func(a models.Appointment) bool { return a.PatientID == patientID })
}

func (r *AppointmentRepository) GetByDoctor(ctx context.Context, doctorID int64) ([]models.AppointmentView, error) {
	return r.filter(ctx, func(a models.Appointment) bool { return a.DoctorID == doctorID })
}

func (r *AppointmentRepository) filter(ctx context.Context, keep func(models.Appointment) bool) ([]models.AppointmentView, error) {
	var out []models.AppointmentView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		out = appointmentViews(tx, tx.Appointments.Filter(keep))
		return nil
	})
	return out, err
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (models.AppointmentView, error) {
	var out models.AppointmentView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		a, ok := tx.Appointments.Get(id)
		if !ok {
			return models.NotFound("Appointment")
		}
		out = appointmentView(tx, a)
		return nil
	})
	return out, err
}

// Book creates a Scheduled appointment and its Pending bill, priced at the
// doctor's current fee, in one transaction.
func (r *AppointmentRepository) Book(ctx context.Context, in models.Booking) (models.AppointmentView, error) {
	var out models.AppointmentView
	err := r.store.Update(ctx, func(tx *database.Tx) error {
		if !tx.Patients.Has(in.PatientID) {
			return models.NotFound("Patient")
		}
		doctor, ok := tx.Doctors.Get(in.DoctorID)
		if !ok {
			return models.NotFound("Doctor")
		}

		appt := tx.Appointments.Insert(func(id int64) models.Appointment {
			return models.Appointment{
				ID:              id,
				PatientID:       in.PatientID,
				DoctorID:        in.DoctorID,
				AppointmentDate: in.AppointmentDate,
				AppointmentTime: in.AppointmentTime,
				Status:          models.StatusScheduled,
			}
		})
		tx.Bills.Insert(func(id int64) models.Bill {
			return models.Bill{
				ID:            id,
				AppointmentID: appt.ID,
				Amount:        doctor.Fee,
				Status:        models.BillPending,
				CreatedAt:     tx.Now(),
			}
		})
		out = appointmentView(tx, appt)
		return nil
	})
	return out, err
}

// UpdateStatus sets the status after guard, if given, accepts the change
// from the stored row.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status models.AppointmentStatus, guard func(current models.Appointment) error) (models.AppointmentView, error) {
	var out models.AppointmentView
	err := r.store.Update(ctx, func(tx *database.Tx) error {
		a, ok := tx.Appointments.Get(id)
		if !ok {
			return models.NotFound("Appointment")
		}
		if guard != nil {
			if err := guard(a); err != nil {
				return err
			}
		}
		a.Status = status
		tx.Appointments.Put(id, a)
		out = appointmentView(tx, a)
		return nil
	})
	return out, err
}

func (r *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Update(ctx, func(tx *database.Tx) error {
		return r.refs.deleteAppointment(tx, id)
	})
}
