package repositories

import (
	"context"

	"MediCare/database"
	"MediCare/models"
)

type PrescriptionRepository struct {
	store *database.Store
}

func NewPrescriptionRepository(store *database.Store) *PrescriptionRepository {
	return &PrescriptionRepository{store: store}
}

// Create appends a prescription to an existing appointment. When DoctorID is
// set it must match the appointment's doctor.
func (r *PrescriptionRepository) Create(ctx context.Context, in models.NewPrescription) (models.PrescriptionView, error) {
	var out models.PrescriptionView
	err := r.store.Update(ctx, func(tx *database.Tx) error {
		appt, ok := tx.Appointments.Get(in.AppointmentID)
		if !ok {
			return models.NotFound("Appointment")
		}
		if in.DoctorID != 0 && in.DoctorID != appt.DoctorID {
			return models.ErrForbidden
		}
		if appt.Status == models.StatusCancelled {
			return models.Conflict("appointment %d is cancelled", appt.ID)
		}

		created := tx.Now()
		p := tx.Prescriptions.Insert(func(id int64) models.Prescription {
			return models.Prescription{
				ID:             id,
				AppointmentID:  in.AppointmentID,
				Diagnosis:      in.Diagnosis,
				Note:           in.Note,
				ChiefComplaint: in.ChiefComplaint,
				Vitals:         in.Vitals,
				Medicines:      in.Medicines,
				Tests:          in.Tests,
				Advice:         in.Advice,
				FollowUpDate:   in.FollowUpDate,
				CreatedAt:      &created,
			}
		})
		out = prescriptionView(tx, p.Clone())
		return nil
	})
	return out, err
}

func (r *PrescriptionRepository) GetByID(ctx context.Context, id int64) (models.PrescriptionView, error) {
	var out models.PrescriptionView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		p, ok := tx.Prescriptions.Get(id)
		if !ok {
			return models.NotFound("Prescription")
		}
		out = prescriptionView(tx, p)
		return nil
	})
	return out, err
}

func (r *PrescriptionRepository) GetByAppointment(ctx context.Context, appointmentID int64) ([]models.PrescriptionView, error) {
	return r.filter(ctx, func(a models.Appointment) bool { return a.ID == appointmentID })
}

func (r *PrescriptionRepository) GetByDoctor(ctx context.Context, doctorID int64) ([]models.PrescriptionView, error) {
	return r.filter(ctx, func(a models.Appointment) bool { return a.DoctorID == doctorID })
}

func (r *PrescriptionRepository) GetByPatient(ctx context.Context, patientID int64) ([]models.PrescriptionView, error) {
	return r.filter(ctx, func(a models.Appointment) bool { return a.PatientID == patientID })
}

func (r *PrescriptionRepository) filter(ctx context.Context, keep func(models.Appointment) bool) ([]models.PrescriptionView, error) {
	var out []models.PrescriptionView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		appts := appointmentIDs(tx, keep)
		out = prescriptionViews(tx, tx.Prescriptions.Filter(func(p models.Prescription) bool {
			return appts[p.AppointmentID]
		}))
		return nil
	})
	return out, err
}
