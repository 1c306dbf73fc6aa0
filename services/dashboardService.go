package services

import (
	"context"

	"MediCare/models"
	"MediCare/repositories"
)

type DashboardService struct {
	repository *repositories.DashboardRepository
	latency    Latency
}

func NewDashboardService(repository *repositories.DashboardRepository, latency Latency) *DashboardService {
	return &DashboardService{repository: repository, latency: latency}
}

func (s *DashboardService) Summary(ctx context.Context) (models.DashboardSummary, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return models.DashboardSummary{}, err
	}
	return s.repository.Summary(ctx)
}
