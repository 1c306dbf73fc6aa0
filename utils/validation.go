package utils

import (
	"errors"

	"MediCare/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	DateLayout        = "2006-01-02"
	TimeLayout        = "15:04"
	MinPasswordLength = 6
)

var (
	nameRules     = []validation.Rule{validation.Required, validation.Length(2, 100)}
	emailRules    = []validation.Rule{validation.Required, validation.Length(3, 254), is.Email}
	passwordRules = []validation.Rule{validation.Required, validation.Length(MinPasswordLength, 72)}
	feeRules      = []validation.Rule{validation.Required, validation.Min(0.0).Exclusive()}
	ageRules      = []validation.Rule{validation.Min(0), validation.Max(130)}
	phoneRules    = []validation.Rule{validation.Required, validation.Length(3, 32)}
	addressRules  = []validation.Rule{validation.Required, validation.Length(3, 200)}
)

func roleIn() validation.Rule {
	values := make([]interface{}, len(models.Roles))
	for i, r := range models.Roles {
		values[i] = r
	}
	return validation.In(values...).Error("must be one of admin, doctor, patient")
}

func genderIn() validation.Rule {
	values := make([]interface{}, len(models.Genders))
	for i, g := range models.Genders {
		values[i] = g
	}
	return validation.In(values...).Error("must be one of Male, Female, Other")
}

func appointmentStatusIn() validation.Rule {
	values := make([]interface{}, len(models.AppointmentStatuses))
	for i, s := range models.AppointmentStatuses {
		values[i] = s
	}
	return validation.In(values...).Error("must be one of Scheduled, Completed, Cancelled")
}

func billStatusIn() validation.Rule {
	values := make([]interface{}, len(models.BillStatuses))
	for i, s := range models.BillStatuses {
		values[i] = s
	}
	return validation.In(values...).Error("must be one of Pending, Paid")
}

// ValidateLogin checks a login request before any lookup.
func ValidateLogin(email, password string) error {
	return models.Invalid(validation.Errors{
		"email":    validation.Validate(email, validation.Required),
		"password": validation.Validate(password, validation.Required),
	}.Filter())
}

func ValidateNewUser(u models.NewUser) error {
	return models.Invalid(validation.ValidateStruct(&u,
		validation.Field(&u.Name, nameRules...),
		validation.Field(&u.Email, emailRules...),
		validation.Field(&u.Password, passwordRules...),
		validation.Field(&u.Role, validation.Required, roleIn()),
	))
}

func ValidateUserUpdate(u models.UserUpdate) error {
	return models.Invalid(validation.ValidateStruct(&u,
		validation.Field(&u.Name, append([]validation.Rule{validation.NilOrNotEmpty}, nameRules[1:]...)...),
		validation.Field(&u.Email, append([]validation.Rule{validation.NilOrNotEmpty}, emailRules[1:]...)...),
		validation.Field(&u.Password, append([]validation.Rule{validation.NilOrNotEmpty}, passwordRules[1:]...)...),
	))
}

func ValidateDepartment(d models.DepartmentInput) error {
	return models.Invalid(validation.ValidateStruct(&d,
		validation.Field(&d.Name, nameRules...),
	))
}

func ValidateNewDoctor(d models.NewDoctor) error {
	return models.Invalid(validation.ValidateStruct(&d,
		validation.Field(&d.UserID, validation.Required),
		validation.Field(&d.DepartmentID, validation.Required),
		validation.Field(&d.Specialization, nameRules...),
		validation.Field(&d.Fee, feeRules...),
		validation.Field(&d.Avatar, is.URL),
	))
}

func ValidateDoctorUpdate(d models.DoctorUpdate) error {
	return models.Invalid(validation.ValidateStruct(&d,
		validation.Field(&d.DepartmentID, validation.NilOrNotEmpty),
		validation.Field(&d.Specialization, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&d.Fee, validation.NilOrNotEmpty, validation.Min(0.0).Exclusive()),
		validation.Field(&d.Avatar, is.URL),
	))
}

func ValidateDoctorRegistration(r models.DoctorRegistration) error {
	return models.Invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Name, nameRules...),
		validation.Field(&r.Email, emailRules...),
		validation.Field(&r.Password, passwordRules...),
		validation.Field(&r.DepartmentID, validation.Required),
		validation.Field(&r.Specialization, nameRules...),
		validation.Field(&r.Fee, feeRules...),
	))
}

func ValidateNewPatient(p models.NewPatient) error {
	return models.Invalid(validation.ValidateStruct(&p,
		validation.Field(&p.UserID, validation.Required),
		validation.Field(&p.Age, ageRules...),
		validation.Field(&p.Gender, validation.Required, genderIn()),
		validation.Field(&p.Phone, phoneRules...),
		validation.Field(&p.Address, addressRules...),
	))
}

func ValidatePatientUpdate(p models.PatientUpdate) error {
	return models.Invalid(validation.ValidateStruct(&p,
		validation.Field(&p.Age, ageRules...),
		validation.Field(&p.Gender, validation.NilOrNotEmpty, genderIn()),
		validation.Field(&p.Phone, validation.NilOrNotEmpty, validation.Length(3, 32)),
		validation.Field(&p.Address, validation.NilOrNotEmpty, validation.Length(3, 200)),
	))
}

func ValidatePatientRegistration(r models.PatientRegistration) error {
	return models.Invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Name, nameRules...),
		validation.Field(&r.Email, emailRules...),
		validation.Field(&r.Password, passwordRules...),
		validation.Field(&r.Age, ageRules...),
		validation.Field(&r.Gender, validation.Required, genderIn()),
		validation.Field(&r.Phone, phoneRules...),
		validation.Field(&r.Address, addressRules...),
	))
}

func ValidateBooking(b models.Booking) error {
	return models.Invalid(validation.ValidateStruct(&b,
		validation.Field(&b.PatientID, validation.Required),
		validation.Field(&b.DoctorID, validation.Required),
		validation.Field(&b.AppointmentDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&b.AppointmentTime, validation.Required, validation.Date(TimeLayout)),
	))
}

func ValidateAppointmentStatus(status models.AppointmentStatus) error {
	return models.Invalid(validation.Errors{
		"status": validation.Validate(status, validation.Required, appointmentStatusIn()),
	}.Filter())
}

func ValidateBillStatus(status models.BillStatus) error {
	return models.Invalid(validation.Errors{
		"status": validation.Validate(status, validation.Required, billStatusIn()),
	}.Filter())
}

func ValidateNewPrescription(p models.NewPrescription) error {
	return models.Invalid(validation.ValidateStruct(&p,
		validation.Field(&p.AppointmentID, validation.Required),
		validation.Field(&p.Diagnosis, validation.Required, validation.Length(2, 200)),
		validation.Field(&p.Note, validation.Length(0, 2000)),
		validation.Field(&p.Medicines, validation.Each(validation.By(validateMedicine))),
		validation.Field(&p.FollowUpDate, validation.Date(DateLayout)),
	))
}

func validateMedicine(value interface{}) error {
	m, ok := value.(models.Medicine)
	if !ok {
		return errors.New("must be a medicine")
	}
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required, validation.Length(1, 100)),
	)
}
