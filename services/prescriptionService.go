package services

import (
	"context"

	"MediCare/models"
	"MediCare/repositories"
	"MediCare/utils"

	"github.com/rs/zerolog/log"
)

type PrescriptionService struct {
	repository *repositories.PrescriptionRepository
	latency    Latency
}

func NewPrescriptionService(repository *repositories.PrescriptionRepository, latency Latency) *PrescriptionService {
	return &PrescriptionService{repository: repository, latency: latency}
}

// Create writes a prescription for an appointment. Several prescriptions may
// exist for one appointment.
func (s *PrescriptionService) Create(ctx context.Context, in models.NewPrescription) (models.PrescriptionView, error) {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return models.PrescriptionView{}, err
	}
	if err := utils.ValidateNewPrescription(in); err != nil {
		return models.PrescriptionView{}, err
	}
	p, err := s.repository.Create(ctx, in)
	if err != nil {
		return models.PrescriptionView{}, err
	}
	log.Info().Int64("prescription_id", p.ID).Int64("appointment_id", p.AppointmentID).Msg("Prescription created")
	return p, nil
}

func (s *PrescriptionService) GetByID(ctx context.Context, id int64) (models.PrescriptionView, error) {
	if err := s.latency.wait(ctx, lookupDelay); err != nil {
		return models.PrescriptionView{}, err
	}
	return s.repository.GetByID(ctx, id)
}

func (s *PrescriptionService) GetByAppointment(ctx context.Context, appointmentID int64) ([]models.PrescriptionView, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.repository.GetByAppointment(ctx, appointmentID)
}

func (s *PrescriptionService) GetByDoctor(ctx context.Context, doctorID int64) ([]models.PrescriptionView, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.repository.GetByDoctor(ctx, doctorID)
}

func (s *PrescriptionService) GetByPatient(ctx context.Context, patientID int64) ([]models.PrescriptionView, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.repository.GetByPatient(ctx, patientID)
}
