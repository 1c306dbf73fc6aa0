package services

import (
	"context"
	"fmt"

	"MediCare/metrics"
	"MediCare/models"
	"MediCare/repositories"
	"MediCare/utils"

	"github.com/rs/zerolog/log"
)

type AppointmentService struct {
	repository  *repositories.AppointmentRepository
	notifier    Notifier
	transitions models.TransitionPolicy
	latency     Latency
	metrics     *metrics.Metrics
}

// NewAppointmentService uses a LogNotifier when notifier is nil.
func NewAppointmentService(repository *repositories.AppointmentRepository, notifier Notifier, transitions models.TransitionPolicy, latency Latency, m *metrics.Metrics) *AppointmentService {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &AppointmentService{
		repository:  repository,
		notifier:    notifier,
		transitions: transitions,
		latency:     latency,
		metrics:     m,
	}
}

func (s *AppointmentService) GetAll(ctx context.Context) ([]models.AppointmentView, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.repository.GetAll(ctx)
}

func (s *AppointmentService) GetByID(ctx context.Context, id int64) (models.AppointmentView, error) {
	if err := s.latency.wait(ctx, lookupDelay); err != nil {
		return models.AppointmentView{}, err
	}
	return s.repository.GetByID(ctx, id)
}

func (s *AppointmentService) GetByPatient(ctx context.Context, patientID int64) ([]models.AppointmentView, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.repository.GetByPatient(ctx, patientID)
}

func (s *AppointmentService) GetByDoctor(ctx context.Context, doctorID int64) ([]models.AppointmentView, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.repository.GetByDoctor(ctx, doctorID)
}

// Book schedules an appointment and opens its pending bill. A failed
// notification is logged and does not undo the booking.
func (s *AppointmentService) Book(ctx context.Context, in models.Booking) (models.AppointmentView, error) {
	if err := s.latency.wait(ctx, slowDelay); err != nil {
		return models.AppointmentView{}, err
	}
	if err := utils.ValidateBooking(in); err != nil {
		return models.AppointmentView{}, err
	}

	appt, err := s.repository.Book(ctx, in)
	if err != nil {
		return models.AppointmentView{}, err
	}
	s.metrics.Booked()
	log.Info().
		Int64("appointment_id", appt.ID).
		Int64("patient_id", appt.PatientID).
		Int64("doctor_id", appt.DoctorID).
		Msg("Appointment created")

	if err := s.notifier.AppointmentBooked(ctx, appt); err != nil {
		s.metrics.NotificationFailed()
		log.Error().Err(err).Int64("appointment_id", appt.ID).Msg("Failed to send booking notification")
	}
	return appt, nil
}

// UpdateStatus sets an appointment's status. Under the strict policy only
// Scheduled appointments may change, to Completed or Cancelled.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id int64, status models.AppointmentStatus) (models.AppointmentView, error) {
	return s.updateStatus(ctx, id, status, 0)
}

// UpdateStatusByDoctor is UpdateStatus for a doctor acting on their own
// schedule. Appointments of other doctors are forbidden.
func (s *AppointmentService) UpdateStatusByDoctor(ctx context.Context, doctorID, id int64, status models.AppointmentStatus) (models.AppointmentView, error) {
	return s.updateStatus(ctx, id, status, doctorID)
}

func (s *AppointmentService) updateStatus(ctx context.Context, id int64, status models.AppointmentStatus, doctorID int64) (models.AppointmentView, error) {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return models.AppointmentView{}, err
	}
	if err := utils.ValidateAppointmentStatus(status); err != nil {
		return models.AppointmentView{}, err
	}

	guard := func(current models.Appointment) error {
		if doctorID != 0 && current.DoctorID != doctorID {
			return fmt.Errorf("%w: appointment %d belongs to another doctor", models.ErrForbidden, id)
		}
		if s.transitions != models.TransitionsPermissive && !current.Status.CanTransition(status) {
			return models.Conflict("appointment %d cannot move from %s to %s", id, current.Status, status)
		}
		return nil
	}

	appt, err := s.repository.UpdateStatus(ctx, id, status, guard)
	s.metrics.StatusChanged(string(status), err)
	if err != nil {
		return models.AppointmentView{}, err
	}
	log.Info().Int64("appointment_id", id).Str("status", string(status)).Msg("Appointment status updated")
	return appt, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id int64) error {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.Deleted("appointment")
	log.Info().Int64("appointment_id", id).Msg("Appointment deleted")
	return nil
}
