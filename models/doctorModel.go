package models

// Doctor model. UserID is the owning account and must have role doctor.
type Doctor struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"user_id"`
	DepartmentID   int64   `json:"department_id"`
	Specialization string  `json:"specialization"`
	Fee            float64 `json:"fee"`
	Avatar         *string `json:"avatar"`
}

// NewDoctor is the input for creating a doctor record for an existing user.
type NewDoctor struct {
	UserID         int64   `json:"user_id"`
	DepartmentID   int64   `json:"department_id"`
	Specialization string  `json:"specialization"`
	Fee            float64 `json:"fee"`
	Avatar         *string `json:"avatar"`
}

// DoctorUpdate patches a doctor; nil fields are left untouched and an empty
// Avatar clears it.
type DoctorUpdate struct {
	DepartmentID   *int64   `json:"department_id"`
	Specialization *string  `json:"specialization"`
	Fee            *float64 `json:"fee"`
	Avatar         *string  `json:"avatar"`
}

// DoctorRegistration creates the user account and the doctor record together.
type DoctorRegistration struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	DepartmentID   int64   `json:"department_id"`
	Specialization string  `json:"specialization"`
	Fee            float64 `json:"fee"`
}

// Earnings summarises what a doctor billed for completed consultations.
type Earnings struct {
	DoctorID          int64   `json:"doctor_id"`
	Fee               float64 `json:"fee"`
	CompletedSessions int     `json:"completedSessions"`
	TotalEarnings     float64 `json:"totalEarnings"`
}
