package services

import (
	"context"

	"MediCare/metrics"
	"MediCare/models"
	"MediCare/repositories"
	"MediCare/utils"

	"github.com/rs/zerolog/log"
)

type DepartmentService struct {
	repository *repositories.DepartmentRepository
	latency    Latency
	metrics    *metrics.Metrics
}

func NewDepartmentService(repository *repositories.DepartmentRepository, latency Latency, m *metrics.Metrics) *DepartmentService {
	return &DepartmentService{repository: repository, latency: latency, metrics: m}
}

func (s *DepartmentService) GetAll(ctx context.Context) ([]models.DepartmentSummary, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.repository.GetAll(ctx)
}

func (s *DepartmentService) GetByID(ctx context.Context, id int64) (models.DepartmentDetail, error) {
	if err := s.latency.wait(ctx, lookupDelay); err != nil {
		return models.DepartmentDetail{}, err
	}
	return s.repository.GetByID(ctx, id)
}

func (s *DepartmentService) Create(ctx context.Context, in models.DepartmentInput) (models.DepartmentSummary, error) {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return models.DepartmentSummary{}, err
	}
	if err := utils.ValidateDepartment(in); err != nil {
		return models.DepartmentSummary{}, err
	}
	dept, err := s.repository.Create(ctx, in)
	if err != nil {
		return models.DepartmentSummary{}, err
	}
	log.Info().Int64("department_id", dept.ID).Str("name", dept.Name).Msg("Department created")
	return dept, nil
}

func (s *DepartmentService) Update(ctx context.Context, id int64, in models.DepartmentInput) (models.DepartmentSummary, error) {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return models.DepartmentSummary{}, err
	}
	if err := utils.ValidateDepartment(in); err != nil {
		return models.DepartmentSummary{}, err
	}
	return s.repository.Update(ctx, id, in)
}

func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.Deleted("department")
	log.Info().Int64("department_id", id).Msg("Department deleted")
	return nil
}
