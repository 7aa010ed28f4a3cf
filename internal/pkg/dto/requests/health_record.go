package requests

import "mime/multipart"

type CreateHealthRecord struct {
	Type         string   `json:"type" validate:"required"`
	Title        string   `json:"title" validate:"required,min=2,max=200"`
	DoctorName   string   `json:"doctor_name" validate:"omitempty,max=100"`
	HospitalName string   `json:"hospital_name" validate:"omitempty,max=200"`
	VisitDate    string   `json:"visit_date" validate:"required"`
	Notes        string   `json:"notes" validate:"omitempty,max=5000"`
	Tags         []string `json:"tags" validate:"omitempty,dive,max=50"`

	Attachment *multipart.FileHeader `json:"-"`
}

// UpdateHealthRecord carries the mutable fields only. Pointers
// distinguish "not sent" from "set to empty".
type UpdateHealthRecord struct {
	Type         *string   `json:"type"`
	Title        *string   `json:"title"`
	DoctorName   *string   `json:"doctor_name"`
	HospitalName *string   `json:"hospital_name"`
	VisitDate    *string   `json:"visit_date"`
	Notes        *string   `json:"notes"`
	Tags         *[]string `json:"tags"`
}

type SearchHealthRecords struct {
	Type     string
	Doctor   string
	Hospital string
	Tag      string
	From     string
	To       string
}
