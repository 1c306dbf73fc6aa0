package services

import (
	"context"

	"MediCare/metrics"
	"MediCare/models"
	"MediCare/repositories"
	"MediCare/utils"

	"github.com/rs/zerolog/log"
)

type PatientService struct {
	repository   *repositories.PatientRepository
	passwordCost int
	latency      Latency
	metrics      *metrics.Metrics
}

func NewPatientService(repository *repositories.PatientRepository, passwordCost int, latency Latency, m *metrics.Metrics) *PatientService {
	return &PatientService{
		repository:   repository,
		passwordCost: passwordCost,
		latency:      latency,
		metrics:      m,
	}
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.PatientView, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.repository.GetAll(ctx)
}

func (s *PatientService) GetByID(ctx context.Context, id int64) (models.PatientView, error) {
	if err := s.latency.wait(ctx, lookupDelay); err != nil {
		return models.PatientView{}, err
	}
	return s.repository.GetByID(ctx, id)
}

func (s *PatientService) GetByUserID(ctx context.Context, userID int64) (models.PatientView, error) {
	if err := s.latency.wait(ctx, lookupDelay); err != nil {
		return models.PatientView{}, err
	}
	return s.repository.GetByUserID(ctx, userID)
}

func (s *PatientService) Create(ctx context.Context, in models.NewPatient) (models.PatientView, error) {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return models.PatientView{}, err
	}
	if err := utils.ValidateNewPatient(in); err != nil {
		return models.PatientView{}, err
	}
	patient, err := s.repository.Create(ctx, in)
	if err != nil {
		return models.PatientView{}, err
	}
	log.Info().Int64("patient_id", patient.ID).Int64("user_id", patient.UserID).Msg("Patient created")
	return patient, nil
}

func (s *PatientService) Register(ctx context.Context, in models.PatientRegistration) (models.PatientView, error) {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return models.PatientView{}, err
	}
	if err := utils.ValidatePatientRegistration(in); err != nil {
		return models.PatientView{}, err
	}

	hash, err := utils.HashPassword(in.Password, s.passwordCost)
	if err != nil {
		return models.PatientView{}, err
	}
	user := models.User{Name: in.Name, Email: in.Email, PasswordHash: hash}
	patient, err := s.repository.Register(ctx, user, models.NewPatient{
		Age:     in.Age,
		Gender:  in.Gender,
		Phone:   in.Phone,
		Address: in.Address,
	})
	if err != nil {
		return models.PatientView{}, err
	}
	log.Info().Int64("patient_id", patient.ID).Int64("user_id", patient.UserID).Msg("Patient registered")
	return patient, nil
}

func (s *PatientService) Update(ctx context.Context, id int64, in models.PatientUpdate) (models.PatientView, error) {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return models.PatientView{}, err
	}
	if err := utils.ValidatePatientUpdate(in); err != nil {
		return models.PatientView{}, err
	}
	return s.repository.Update(ctx, id, in)
}

func (s *PatientService) Delete(ctx context.Context, id int64) error {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.Deleted("patient")
	log.Info().Int64("patient_id", id).Msg("Patient deleted")
	return nil
}
