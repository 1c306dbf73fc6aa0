package services

import (
	"context"

	"MediCare/models"

	"github.com/rs/zerolog/log"
)

// Notifier is told about every booked appointment. utils.Mailer is the
// e-mail implementation.
type Notifier interface {
	AppointmentBooked(ctx context.Context, appt models.AppointmentView) error
}

// LogNotifier writes booking notifications to the log.
type LogNotifier struct{}

func (LogNotifier) AppointmentBooked(_ context.Context, appt models.AppointmentView) error {
	event := log.Info().
		Int64("appointment_id", appt.ID).
		Str("date", appt.AppointmentDate).
		Str("time", appt.AppointmentTime)
	if appt.Patient != nil && appt.Patient.User != nil {
		event = event.Str("patient", appt.Patient.User.Name)
	}
	if appt.Doctor != nil && appt.Doctor.User != nil {
		event = event.Str("doctor", appt.Doctor.User.Name)
	}
	event.Msg("Appointment booked")
	return nil
}
