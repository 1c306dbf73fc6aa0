package repositories

import (
	"context"

	"MediCare/database"
	"MediCare/models"
)

type BillingRepository struct {
	store *database.Store
}

func NewBillingRepository(store *database.Store) *BillingRepository {
	return &BillingRepository{store: store}
}

func (r *BillingRepository) GetAll(ctx context.Context) ([]models.BillView, error) {
	var out []models.BillView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		out = billViews(tx, tx.Bills.List())
		return nil
	})
	return out, err
}

func (r *BillingRepository) GetByID(ctx context.Context, id int64) (models.BillView, error) {
	var out models.BillView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		b, ok := tx.Bills.Get(id)
		if !ok {
			return models.NotFound("Bill")
		}
		out = billView(tx, b)
		return nil
	})
	return out, err
}

// GetByAppointment returns the lowest-id bill of the appointment, or nil.
func (r *BillingRepository) GetByAppointment(ctx context.Context, appointmentID int64) (*models.BillView, error) {
	var out *models.BillView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		if b := firstBill(tx, appointmentID); b != nil {
			v := billView(tx, *b)
			out = &v
		}
		return nil
	})
	return out, err
}

func (r *BillingRepository) GetByPatient(ctx context.Context, patientID int64) ([]models.BillView, error) {
	var out []models.BillView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		appts := appointmentIDs(tx, func(a models.Appointment) bool { return a.PatientID == patientID })
		out = billViews(tx, tx.Bills.Filter(func(b models.Bill) bool { return appts[b.AppointmentID] }))
		return nil
	})
	return out, err
}

func (r *BillingRepository) UpdateStatus(ctx context.Context, id int64, status models.BillStatus) (models.BillView, error) {
	var out models.BillView
	err := r.store.Update(ctx, func(tx *database.Tx) error {
		b, ok := tx.Bills.Get(id)
		if !ok {
			return models.NotFound("Bill")
		}
		b.Status = status
		tx.Bills.Put(id, b)
		out = billView(tx, b)
		return nil
	})
	return out, err
}

// Revenue folds every bill into paid and pending totals.
func (r *BillingRepository) Revenue(ctx context.Context) (models.Revenue, error) {
	var out models.Revenue
	err := r.store.View(ctx, func(tx *database.Tx) error {
		for _, b := range tx.Bills.List() {
			out = out.Add(b)
		}
		return nil
	})
	return out, err
}
