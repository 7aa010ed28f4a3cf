package utils

import (
	"arogya-service/internal/pkg/constvars"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateHealthID builds a public migrant identifier of the form
// MIG-xxxxxxxx using the first hex characters of a fresh UUID.
func GenerateHealthID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return constvars.HealthIDPrefix + raw[:constvars.HealthIDLength]
}

// GenerateShareToken returns a hex encoded random token. The 16 random
// bytes encode to 32 characters on the wire.
func GenerateShareToken() (string, error) {
	buf := make([]byte, constvars.ShareTokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateFileName(prefix, ownerID, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, ownerID, timestamp, fileExtension)
}
