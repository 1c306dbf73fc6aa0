package models

import "time"

// Vitals recorded while writing a prescription. Values are free text
// ("120/80 mmHg", "98.6 °F").
type Vitals struct {
	BP     string `json:"bp,omitempty"`
	Temp   string `json:"temp,omitempty"`
	Pulse  string `json:"pulse,omitempty"`
	Weight string `json:"weight,omitempty"`
	Height string `json:"height,omitempty"`
}

// Medicine is one line of a prescription.
type Medicine struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// Prescription model. Seed rows carry only diagnosis and note; rows written by
// doctors carry the structured fields as well.
type Prescription struct {
	ID             int64      `json:"id"`
	AppointmentID  int64      `json:"appointment_id"`
	Diagnosis      string     `json:"diagnosis"`
	Note           string     `json:"note"`
	ChiefComplaint string     `json:"chief_complaint,omitempty"`
	Vitals         *Vitals    `json:"vitals,omitempty"`
	Medicines      []Medicine `json:"medicines,omitempty"`
	Tests          string     `json:"tests,omitempty"`
	Advice         string     `json:"advice,omitempty"`
	FollowUpDate   string     `json:"follow_up_date,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// Clone copies the prescription so the copy shares no slices or pointers.
func (p Prescription) Clone() Prescription {
	if p.Vitals != nil {
		v := *p.Vitals
		p.Vitals = &v
	}
	if p.Medicines != nil {
		p.Medicines = append([]Medicine(nil), p.Medicines...)
	}
	if p.CreatedAt != nil {
		t := *p.CreatedAt
		p.CreatedAt = &t
	}
	return p
}

// NewPrescription is the prescription writer's input. DoctorID, when set,
// must be the doctor of the appointment.
type NewPrescription struct {
	AppointmentID  int64      `json:"appointment_id"`
	DoctorID       int64      `json:"doctor_id,omitempty"`
	Diagnosis      string     `json:"diagnosis"`
	Note           string     `json:"note"`
	ChiefComplaint string     `json:"chief_complaint"`
	Vitals         *Vitals    `json:"vitals"`
	Medicines      []Medicine `json:"medicines"`
	Tests          string     `json:"tests"`
	Advice         string     `json:"advice"`
	FollowUpDate   string     `json:"follow_up_date"`
}
