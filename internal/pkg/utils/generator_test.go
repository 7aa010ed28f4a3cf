package utils

import (
	"regexp"
	"strings"
	"testing"

	"arogya-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHealthID(t *testing.T) {
	re := regexp.MustCompile(constvars.RegexHealthID)

	t.Run("Format", func(t *testing.T) {
		healthID := GenerateHealthID()
		assert.True(t, re.MatchString(healthID), "health ID %q should match MIG-xxxxxxxx", healthID)
	})

	t.Run("Uniqueness", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			healthID := GenerateHealthID()
			assert.False(t, seen[healthID], "health ID %q generated twice", healthID)
			seen[healthID] = true
		}
	})
}

func TestGenerateShareToken(t *testing.T) {
	re := regexp.MustCompile(constvars.RegexShareToken)

	t.Run("Format", func(t *testing.T) {
		token, err := GenerateShareToken()
		assert.NoError(t, err)
		assert.Len(t, token, 32, "token should be 32 hex characters")
		assert.True(t, re.MatchString(token), "token %q should be lowercase hex", token)
	})

	t.Run("Distinct Tokens", func(t *testing.T) {
		first, err := GenerateShareToken()
		assert.NoError(t, err)
		second, err := GenerateShareToken()
		assert.NoError(t, err)
		assert.NotEqual(t, first, second, "two tokens should never collide")
	})
}

func TestGenerateFileName(t *testing.T) {
	fileName := GenerateFileName("record", "user-123", ".pdf")
	assert.True(t, strings.HasPrefix(fileName, "record_user-123_"), "file name should carry prefix and owner")
	assert.True(t, strings.HasSuffix(fileName, ".pdf"), "file name should keep the extension")
}
