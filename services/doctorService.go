package services

import (
	"context"

	"MediCare/metrics"
	"MediCare/models"
	"MediCare/repositories"
	"MediCare/utils"

	"github.com/rs/zerolog/log"
)

type DoctorService struct {
	repository   *repositories.DoctorRepository
	passwordCost int
	latency      Latency
	metrics      *metrics.Metrics
}

func NewDoctorService(repository *repositories.DoctorRepository, passwordCost int, latency Latency, m *metrics.Metrics) *DoctorService {
	return &DoctorService{
		repository:   repository,
		passwordCost: passwordCost,
		latency:      latency,
		metrics:      m,
	}
}

func (s *DoctorService) GetAll(ctx context.Context) ([]models.DoctorView, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.repository.GetAll(ctx)
}

func (s *DoctorService) GetByID(ctx context.Context, id int64) (models.DoctorView, error) {
	if err := s.latency.wait(ctx, lookupDelay); err != nil {
		return models.DoctorView{}, err
	}
	return s.repository.GetByID(ctx, id)
}

func (s *DoctorService) GetByUserID(ctx context.Context, userID int64) (models.DoctorView, error) {
	if err := s.latency.wait(ctx, lookupDelay); err != nil {
		return models.DoctorView{}, err
	}
	return s.repository.GetByUserID(ctx, userID)
}

func (s *DoctorService) GetByDepartment(ctx context.Context, departmentID int64) ([]models.DoctorView, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.repository.GetByDepartment(ctx, departmentID)
}

// Create adds the doctor record of an existing doctor account.
func (s *DoctorService) Create(ctx context.Context, in models.NewDoctor) (models.DoctorView, error) {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return models.DoctorView{}, err
	}
	if err := utils.ValidateNewDoctor(in); err != nil {
		return models.DoctorView{}, err
	}
	doctor, err := s.repository.Create(ctx, in)
	if err != nil {
		return models.DoctorView{}, err
	}
	log.Info().Int64("doctor_id", doctor.ID).Int64("user_id", doctor.UserID).Msg("Doctor created")
	return doctor, nil
}

// Register creates a doctor account and its doctor record in one step.
func (s *DoctorService) Register(ctx context.Context, in models.DoctorRegistration) (models.DoctorView, error) {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return models.DoctorView{}, err
	}
	if err := utils.ValidateDoctorRegistration(in); err != nil {
		return models.DoctorView{}, err
	}

	hash, err := utils.HashPassword(in.Password, s.passwordCost)
	if err != nil {
		return models.DoctorView{}, err
	}
	user := models.User{Name: in.Name, Email: in.Email, PasswordHash: hash}
	doctor, err := s.repository.Register(ctx, user, models.NewDoctor{
		DepartmentID:   in.DepartmentID,
		Specialization: in.Specialization,
		Fee:            in.Fee,
	})
	if err != nil {
		return models.DoctorView{}, err
	}
	log.Info().Int64("doctor_id", doctor.ID).Int64("user_id", doctor.UserID).Msg("Doctor registered")
	return doctor, nil
}

func (s *DoctorService) Update(ctx context.Context, id int64, in models.DoctorUpdate) (models.DoctorView, error) {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return models.DoctorView{}, err
	}
	if err := utils.ValidateDoctorUpdate(in); err != nil {
		return models.DoctorView{}, err
	}
	return s.repository.Update(ctx, id, in)
}

func (s *DoctorService) Delete(ctx context.Context, id int64) error {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.Deleted("doctor")
	log.Info().Int64("doctor_id", id).Msg("Doctor deleted")
	return nil
}

// Earnings totals the fees of a doctor's completed appointments.
func (s *DoctorService) Earnings(ctx context.Context, id int64) (models.Earnings, error) {
	if err := s.latency.wait(ctx, lookupDelay); err != nil {
		return models.Earnings{}, err
	}
	return s.repository.Earnings(ctx, id)
}
