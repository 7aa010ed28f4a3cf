package responses

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Language  string    `json:"language,omitempty"`
	HealthID  string    `json:"health_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type HealthID struct {
	HealthID string `json:"health_id"`
}
