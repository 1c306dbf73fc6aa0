package repositories

import (
	"MediCare/database"
	"MediCare/models"
)

// Joins attach related rows to a base row. A reference to a missing row is
// rendered as nil rather than treated as an error.

func joinUser(tx *database.Tx, id int64) *models.UserView {
	u, ok := tx.Users.Get(id)
	if !ok {
		return nil
	}
	v := u.View()
	return &v
}

func joinDepartment(tx *database.Tx, id int64) *models.Department {
	d, ok := tx.Departments.Get(id)
	if !ok {
		return nil
	}
	return &d
}

func doctorProfile(tx *database.Tx, d models.Doctor) models.DoctorProfile {
	return models.DoctorProfile{Doctor: d, User: joinUser(tx, d.UserID)}
}

func doctorView(tx *database.Tx, d models.Doctor) models.DoctorView {
	return models.DoctorView{
		Doctor:     d,
		User:       joinUser(tx, d.UserID),
		Department: joinDepartment(tx, d.DepartmentID),
	}
}

func doctorViews(tx *database.Tx, doctors []models.Doctor) []models.DoctorView {
	out := make([]models.DoctorView, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, doctorView(tx, d))
	}
	return out
}

func joinDoctorProfile(tx *database.Tx, id int64) *models.DoctorProfile {
	d, ok := tx.Doctors.Get(id)
	if !ok {
		return nil
	}
	p := doctorProfile(tx, d)
	return &p
}

func patientView(tx *database.Tx, p models.Patient) models.PatientView {
	return models.PatientView{Patient: p, User: joinUser(tx, p.UserID)}
}

func patientViews(tx *database.Tx, patients []models.Patient) []models.PatientView {
	out := make([]models.PatientView, 0, len(patients))
	for _, p := range patients {
		out = append(out, patientView(tx, p))
	}
	return out
}

func joinPatient(tx *database.Tx, id int64) *models.PatientView {
	p, ok := tx.Patients.Get(id)
	if !ok {
		return nil
	}
	v := patientView(tx, p)
	return &v
}

func firstPrescription(tx *database.Tx, appointmentID int64) *models.Prescription {
	p, ok := tx.Prescriptions.First(func(p models.Prescription) bool {
		return p.AppointmentID == appointmentID
	})
	if !ok {
		return nil
	}
	return &p
}

func firstBill(tx *database.Tx, appointmentID int64) *models.Bill {
	b, ok := tx.Bills.First(func(b models.Bill) bool {
		return b.AppointmentID == appointmentID
	})
	if !ok {
		return nil
	}
	return &b
}

func appointmentView(tx *database.Tx, a models.Appointment) models.AppointmentView {
	return models.AppointmentView{
		Appointment:  a,
		Patient:      joinPatient(tx, a.PatientID),
		Doctor:       joinDoctorProfile(tx, a.DoctorID),
		Prescription: firstPrescription(tx, a.ID),
		Bill:         firstBill(tx, a.ID),
	}
}

func appointmentViews(tx *database.Tx, appointments []models.Appointment) []models.AppointmentView {
	out := make([]models.AppointmentView, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, appointmentView(tx, a))
	}
	return out
}

// joinAppointmentSummary stops at patient and doctor so a bill never carries
// the appointment's bill back.
func joinAppointmentSummary(tx *database.Tx, id int64) *models.AppointmentSummary {
	a, ok := tx.Appointments.Get(id)
	if !ok {
		return nil
	}
	return &models.AppointmentSummary{
		Appointment: a,
		Patient:     joinPatient(tx, a.PatientID),
		Doctor:      joinDoctorProfile(tx, a.DoctorID),
	}
}

func billView(tx *database.Tx, b models.Bill) models.BillView {
	return models.BillView{Bill: b, Appointment: joinAppointmentSummary(tx, b.AppointmentID)}
}

func billViews(tx *database.Tx, bills []models.Bill) []models.BillView {
	out := make([]models.BillView, 0, len(bills))
	for _, b := range bills {
		out = append(out, billView(tx, b))
	}
	return out
}

func prescriptionView(tx *database.Tx, p models.Prescription) models.PrescriptionView {
	return models.PrescriptionView{Prescription: p, Appointment: joinAppointmentSummary(tx, p.AppointmentID)}
}

func prescriptionViews(tx *database.Tx, prescriptions []models.Prescription) []models.PrescriptionView {
	out := make([]models.PrescriptionView, 0, len(prescriptions))
	for _, p := range prescriptions {
		out = append(out, prescriptionView(tx, p))
	}
	return out
}

func departmentSummary(tx *database.Tx, d models.Department) models.DepartmentSummary {
	return models.DepartmentSummary{
		Department: d,
		DoctorCount: tx.Doctors.Count(func(doc models.Doctor) bool {
			return doc.DepartmentID == d.ID
		}),
	}
}

func departmentDetail(tx *database.Tx, d models.Department) models.DepartmentDetail {
	doctors := tx.Doctors.Filter(func(doc models.Doctor) bool {
		return doc.DepartmentID == d.ID
	})
	detail := models.DepartmentDetail{Department: d, Doctors: make([]models.DoctorProfile, 0, len(doctors))}
	for _, doc := range doctors {
		detail.Doctors = append(detail.Doctors, doctorProfile(tx, doc))
	}
	return detail
}

// appointmentIDs returns the ids of appointments matching keep.
func appointmentIDs(tx *database.Tx, keep func(models.Appointment) bool) map[int64]bool {
	ids := make(map[int64]bool)
	for _, a := range tx.Appointments.Filter(keep) {
		ids[a.ID] = true
	}
	return ids
}
