package models

// Department groups doctors by clinical speciality.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DepartmentInput carries the writable department fields.
type DepartmentInput struct {
	Name string `json:"name"`
}
