package repositories

import (
	"context"

	"MediCare/database"
	"MediCare/models"
)

type DashboardRepository struct {
	store *database.Store
}

func NewDashboardRepository(store *database.Store) *DashboardRepository {
	return &DashboardRepository{store: store}
}

// Summary counts rows and folds revenue from one consistent view.
func (r *DashboardRepository) Summary(ctx context.Context) (models.DashboardSummary, error) {
	var out models.DashboardSummary
	err := r.store.View(ctx, func(tx *database.Tx) error {
		out = models.DashboardSummary{
			Doctors:      tx.Doctors.Len(),
			Patients:     tx.Patients.Len(),
			Departments:  tx.Departments.Len(),
			Appointments: tx.Appointments.Len(),
			ByStatus:     make(map[models.AppointmentStatus]int, len(models.AppointmentStatuses)),
		}
		for _, s := range models.AppointmentStatuses {
			out.ByStatus[s] = 0
		}
		for _, a := range tx.Appointments.List() {
			out.ByStatus[a.Status]++
		}
		for _, b := range tx.Bills.List() {
			out.Revenue = out.Revenue.Add(b)
		}
		return nil
	})
	return out, err
}
