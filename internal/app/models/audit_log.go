package models

import "time"

type AuditLog struct {
	ID        string    `bson:"_id,omitempty"`
	UserID    string    `bson:"userId"`
	Action    string    `bson:"action"`
	RecordID  string    `bson:"recordId,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}
