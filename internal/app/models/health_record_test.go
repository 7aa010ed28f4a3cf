package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRecordType(t *testing.T) {
	t.Run("Canonical Values", func(t *testing.T) {
		for _, raw := range []string{"doctor_visit", "lab_report", "vaccination", "prescription"} {
			recordType, ok := NormalizeRecordType(raw)
			assert.True(t, ok, "%q should be accepted", raw)
			assert.Equal(t, RecordType(raw), recordType)
		}
	})

	t.Run("Legacy Spellings", func(t *testing.T) {
		cases := map[string]RecordType{
			"Lab-report":     RecordTypeLabReport,
			"Doctor Visit":   RecordTypeDoctorVisit,
			"VACCINATION":    RecordTypeVaccination,
			" prescription ": RecordTypePrescription,
		}
		for raw, expected := range cases {
			recordType, ok := NormalizeRecordType(raw)
			assert.True(t, ok, "%q should resolve", raw)
			assert.Equal(t, expected, recordType, "%q should map to %s", raw, expected)
		}
	})

	t.Run("Unknown Values", func(t *testing.T) {
		for _, raw := range []string{"", "surgery", "doctor visit report"} {
			_, ok := NormalizeRecordType(raw)
			assert.False(t, ok, "%q should be rejected", raw)
		}
	})
}
