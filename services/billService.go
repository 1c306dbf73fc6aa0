package services

import (
	"context"

	"MediCare/metrics"
	"MediCare/models"
	"MediCare/repositories"
	"MediCare/utils"

	"github.com/rs/zerolog/log"
)

type BillService struct {
	repository *repositories.BillingRepository
	latency    Latency
	metrics    *metrics.Metrics
}

func NewBillService(repository *repositories.BillingRepository, latency Latency, m *metrics.Metrics) *BillService {
	return &BillService{repository: repository, latency: latency, metrics: m}
}

func (s *BillService) GetAll(ctx context.Context) ([]models.BillView, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.repository.GetAll(ctx)
}

func (s *BillService) GetByID(ctx context.Context, id int64) (models.BillView, error) {
	if err := s.latency.wait(ctx, lookupDelay); err != nil {
		return models.BillView{}, err
	}
	return s.repository.GetByID(ctx, id)
}

// GetByAppointment returns nil when the appointment has no bill.
func (s *BillService) GetByAppointment(ctx context.Context, appointmentID int64) (*models.BillView, error) {
	if err := s.latency.wait(ctx, lookupDelay); err != nil {
		return nil, err
	}
	return s.repository.GetByAppointment(ctx, appointmentID)
}

func (s *BillService) GetByPatient(ctx context.Context, patientID int64) ([]models.BillView, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.repository.GetByPatient(ctx, patientID)
}

func (s *BillService) UpdateStatus(ctx context.Context, id int64, status models.BillStatus) (models.BillView, error) {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return models.BillView{}, err
	}
	if err := utils.ValidateBillStatus(status); err != nil {
		return models.BillView{}, err
	}
	bill, err := s.repository.UpdateStatus(ctx, id, status)
	if err != nil {
		return models.BillView{}, err
	}
	s.metrics.BillStatusChanged(string(status))
	log.Info().Int64("bill_id", id).Str("status", string(status)).Msg("Bill status updated")
	return bill, nil
}

// GetTotalRevenue folds every bill into paid and pending totals.
func (s *BillService) GetTotalRevenue(ctx context.Context) (models.Revenue, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return models.Revenue{}, err
	}
	return s.repository.Revenue(ctx)
}
