package models

import "time"

type ShareLink struct {
	ID        string    `bson:"_id,omitempty"`
	Token     string    `bson:"token"`
	RecordID  string    `bson:"recordId"`
	CreatedBy string    `bson:"createdBy"`
	ExpiresAt time.Time `bson:"expiresAt"`
	TimeModel `bson:",inline"`
}

func (s *ShareLink) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
