package models

import "time"

// UserView is a user as returned to callers: never with a password.
type UserView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// DoctorProfile is a doctor joined with its owning user.
type DoctorProfile struct {
	Doctor
	User *UserView `json:"user"`
}

// DoctorView is a doctor joined with its user and department.
type DoctorView struct {
	Doctor
	User       *UserView   `json:"user"`
	Department *Department `json:"department"`
}

// PatientView is a patient joined with its owning user.
type PatientView struct {
	Patient
	User *UserView `json:"user"`
}

// DepartmentSummary is a department row in listings.
type DepartmentSummary struct {
	Department
	DoctorCount int `json:"doctorCount"`
}

// DepartmentDetail is a department with its doctors.
type DepartmentDetail struct {
	Department
	Doctors []DoctorProfile `json:"doctors"`
}

// AppointmentView is an appointment with every related row attached.
type AppointmentView struct {
	Appointment
	Patient      *PatientView   `json:"patient"`
	Doctor       *DoctorProfile `json:"doctor"`
	Prescription *Prescription  `json:"prescription"`
	Bill         *Bill          `json:"bill"`
}

// AppointmentSummary is the appointment attached to a bill. It stops at
// patient and doctor so bills and appointments do not nest each other.
type AppointmentSummary struct {
	Appointment
	Patient *PatientView   `json:"patient"`
	Doctor  *DoctorProfile `json:"doctor"`
}

// BillView is a bill with its appointment.
type BillView struct {
	Bill
	Appointment *AppointmentSummary `json:"appointment"`
}

// PrescriptionView is a prescription with the appointment it was written for.
type PrescriptionView struct {
	Prescription
	Appointment *AppointmentSummary `json:"appointment"`
}

// DashboardSummary holds the admin dashboard headline numbers.
type DashboardSummary struct {
	Doctors      int                       `json:"doctors"`
	Patients     int                       `json:"patients"`
	Departments  int                       `json:"departments"`
	Appointments int                       `json:"appointments"`
	ByStatus     map[AppointmentStatus]int `json:"appointmentsByStatus"`
	Revenue      Revenue                   `json:"revenue"`
}
