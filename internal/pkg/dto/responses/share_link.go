package responses

import "time"

type ShareLink struct {
	Token     string    `json:"token"`
	ShareURL  string    `json:"share_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SharedRecordOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type SharedRecord struct {
	Record *HealthRecord      `json:"record"`
	Owner  *SharedRecordOwner `json:"owner"`
}
