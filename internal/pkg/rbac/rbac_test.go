package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowed(t *testing.T) {
	t.Run("Record Operations", func(t *testing.T) {
		assert.True(t, IsAllowed("migrant", OpRecordCreate))
		assert.True(t, IsAllowed("doctor", OpRecordCreate))
		assert.True(t, IsAllowed("admin", OpRecordCreate))
		assert.False(t, IsAllowed("govt", OpRecordCreate), "govt accounts are read only on records")

		assert.True(t, IsAllowed("govt", OpRecordRead))
		assert.False(t, IsAllowed("govt", OpRecordUpdate))
		assert.False(t, IsAllowed("govt", OpRecordDelete))
	})

	t.Run("Audit Operations", func(t *testing.T) {
		for _, role := range []string{"migrant", "doctor", "govt", "admin"} {
			assert.True(t, IsAllowed(role, OpAuditReadSelf), "role %s should read its own trail", role)
		}
		assert.True(t, IsAllowed("admin", OpAuditReadAll))
		assert.False(t, IsAllowed("doctor", OpAuditReadAll), "only admin may read the full audit trail")
		assert.False(t, IsAllowed("govt", OpAuditReadAll))
	})

	t.Run("Migrant Dashboards", func(t *testing.T) {
		assert.False(t, IsAllowed("migrant", OpMigrantsRead), "migrants cannot browse the migrant directory")
		assert.True(t, IsAllowed("doctor", OpMigrantsRead))
		assert.True(t, IsAllowed("govt", OpMigrantsAnalytics))
	})

	t.Run("Fails Closed", func(t *testing.T) {
		assert.False(t, IsAllowed("superuser", OpRecordRead), "unknown role should be denied")
		assert.False(t, IsAllowed("", OpRecordRead), "empty role should be denied")
		assert.False(t, IsAllowed("admin", Operation("records:purge")), "unknown operation should be denied")
	})
}
