package repositories

import (
	"MediCare/database"
	"MediCare/models"
)

// references applies the delete policy to rows that point at a row being
// deleted. Every method runs inside the caller's Update, so a rejected or
// failed cascade leaves the store untouched.
type references struct {
	policy models.DeletePolicy
}

func newReferences(policy models.DeletePolicy) references {
	if policy == "" {
		policy = models.DeleteDangle
	}
	return references{policy: policy}
}

func (r references) deleteUser(tx *database.Tx, id int64) error {
	if !tx.Users.Has(id) {
		return models.NotFound("User")
	}
	doctors := tx.Doctors.Filter(func(d models.Doctor) bool { return d.UserID == id })
	patients := tx.Patients.Filter(func(p models.Patient) bool { return p.UserID == id })

	switch r.policy {
	case models.DeleteRestrict:
		if len(doctors) > 0 {
			return models.Conflict("user %d is referenced by doctor %d", id, doctors[0].ID)
		}
		if len(patients) > 0 {
			return models.Conflict("user %d is referenced by patient %d", id, patients[0].ID)
		}
	case models.DeleteCascade:
		for _, d := range doctors {
			if err := r.deleteDoctor(tx, d.ID); err != nil {
				return err
			}
		}
		for _, p := range patients {
			if err := r.deletePatient(tx, p.ID); err != nil {
				return err
			}
		}
	}
	tx.Users.Delete(id)
	return nil
}

func (r references) deleteDepartment(tx *database.Tx, id int64) error {
	if !tx.Departments.Has(id) {
		return models.NotFound("Department")
	}
	doctors := tx.Doctors.Filter(func(d models.Doctor) bool { return d.DepartmentID == id })

	switch r.policy {
	case models.DeleteRestrict:
		if len(doctors) > 0 {
			return models.Conflict("department %d still has %d doctors", id, len(doctors))
		}
	case models.DeleteCascade:
		for _, d := range doctors {
			if err := r.deleteDoctor(tx, d.ID); err != nil {
				return err
			}
		}
	}
	tx.Departments.Delete(id)
	return nil
}

// deleteDoctor never removes the owning user account.
func (r references) deleteDoctor(tx *database.Tx, id int64) error {
	if !tx.Doctors.Has(id) {
		return models.NotFound("Doctor")
	}
	if err := r.appointmentsOf(tx, "doctor", id, func(a models.Appointment) bool { return a.DoctorID == id }); err != nil {
		return err
	}
	tx.Doctors.Delete(id)
	return nil
}

func (r references) deletePatient(tx *database.Tx, id int64) error {
	if !tx.Patients.Has(id) {
		return models.NotFound("Patient")
	}
	if err := r.appointmentsOf(tx, "patient", id, func(a models.Appointment) bool { return a.PatientID == id }); err != nil {
		return err
	}
	tx.Patients.Delete(id)
	return nil
}

func (r references) appointmentsOf(tx *database.Tx, owner string, id int64, keep func(models.Appointment) bool) error {
	appointments := tx.Appointments.Filter(keep)
	switch r.policy {
	case models.DeleteRestrict:
		if len(appointments) > 0 {
			return models.Conflict("%s %d has %d appointments", owner, id, len(appointments))
		}
	case models.DeleteCascade:
		for _, a := range appointments {
			if err := r.deleteAppointment(tx, a.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r references) deleteAppointment(tx *database.Tx, id int64) error {
	if !tx.Appointments.Has(id) {
		return models.NotFound("Appointment")
	}
	bills := tx.Bills.Filter(func(b models.Bill) bool { return b.AppointmentID == id })
	prescriptions := tx.Prescriptions.Filter(func(p models.Prescription) bool { return p.AppointmentID == id })

	switch r.policy {
	case models.DeleteRestrict:
		if len(bills) > 0 {
			return models.Conflict("appointment %d has bill %d", id, bills[0].ID)
		}
		if len(prescriptions) > 0 {
			return models.Conflict("appointment %d has prescription %d", id, prescriptions[0].ID)
		}
	case models.DeleteCascade:
		for _, b := range bills {
			tx.Bills.Delete(b.ID)
		}
		for _, p := range prescriptions {
			tx.Prescriptions.Delete(p.ID)
		}
	}
	tx.Appointments.Delete(id)
	return nil
}
