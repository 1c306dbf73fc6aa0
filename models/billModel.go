package models

import "time"

// BillStatus is the payment state of a bill.
type BillStatus string

const (
	BillPending BillStatus = "Pending"
	BillPaid    BillStatus = "Paid"
)

// BillStatuses lists every valid bill status.
var BillStatuses = []BillStatus{BillPending, BillPaid}

// Bill model. Amount is the doctor's fee at booking time.
type Bill struct {
	ID            int64      `json:"id"`
	AppointmentID int64      `json:"appointment_id"`
	Amount        float64    `json:"amount"`
	Status        BillStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Revenue totals bill amounts by payment state.
type Revenue struct {
	TotalPaid    float64 `json:"totalPaid"`
	TotalPending float64 `json:"totalPending"`
	Total        float64 `json:"total"`
}

// Add folds one bill into the totals.
func (r Revenue) Add(b Bill) Revenue {
	switch b.Status {
	case BillPaid:
		r.TotalPaid += b.Amount
	case BillPending:
		r.TotalPending += b.Amount
	}
	r.Total = r.TotalPaid + r.TotalPending
	return r
}
