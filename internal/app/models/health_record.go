package models

import (
	"strings"
	"time"
)

type RecordType string

const (
	RecordTypeDoctorVisit  RecordType = "doctor_visit"
	RecordTypeLabReport    RecordType = "lab_report"
	RecordTypeVaccination  RecordType = "vaccination"
	RecordTypePrescription RecordType = "prescription"
)

// NormalizeRecordType maps user supplied spellings onto the canonical
// record type. Older clients sent values like "Lab-report" and
// "Doctor Visit", those still resolve.
func NormalizeRecordType(raw string) (RecordType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	recordType := RecordType(normalized)
	switch recordType {
	case RecordTypeDoctorVisit, RecordTypeLabReport, RecordTypeVaccination, RecordTypePrescription:
		return recordType, true
	}
	return "", false
}

type HealthRecord struct {
	ID             string     `bson:"_id,omitempty"`
	OwnerID        string     `bson:"ownerId"`
	Type           RecordType `bson:"type"`
	Title          string     `bson:"title"`
	DoctorName     string     `bson:"doctorName,omitempty"`
	HospitalName   string     `bson:"hospitalName,omitempty"`
	VisitDate      time.Time  `bson:"visitDate"`
	Notes          string     `bson:"notes,omitempty"`
	Tags           []string   `bson:"tags,omitempty"`
	AttachmentName string     `bson:"attachmentName,omitempty"`
	TimeModel      `bson:",inline"`
}
