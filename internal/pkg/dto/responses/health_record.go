package responses

import "time"

type HealthRecord struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	DoctorName    string    `json:"doctor_name,omitempty"`
	HospitalName  string    `json:"hospital_name,omitempty"`
	VisitDate     time.Time `json:"visit_date"`
	Notes         string    `json:"notes,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
