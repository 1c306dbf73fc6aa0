package models

// Patient model
type Patient struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Genders accepted on patient records.
var Genders = []string{"Male", "Female", "Other"}

// NewPatient is the input for creating a patient record for an existing user.
type NewPatient struct {
	UserID  int64  `json:"user_id"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PatientUpdate patches a patient; nil fields are left untouched.
type PatientUpdate struct {
	Age     *int    `json:"age"`
	Gender  *string `json:"gender"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// PatientRegistration creates the user account and the patient record together.
type PatientRegistration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}
