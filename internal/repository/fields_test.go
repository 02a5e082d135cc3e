package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedUpdateDropsUnknownFields(t *testing.T) {
	raw := map[string]interface{}{
		"name":   "CBC",
		"price":  49.5,
		"role":   "admin", // not updatable through the test endpoint
		"_id":    "abc",
		"bogus":  true,
		"status": "block",
	}

	update := AllowedUpdate(KindTest, raw)

	assert.Equal(t, "CBC", update["name"])
	assert.Equal(t, 49.5, update["price"])
	assert.NotContains(t, update, "role")
	assert.NotContains(t, update, "_id")
	assert.NotContains(t, update, "bogus")
	assert.NotContains(t, update, "status")
}

func TestAllowedUpdateSkipsOmittedFields(t *testing.T) {
	update := AllowedUpdate(KindUser, map[string]interface{}{"district": "Dhaka"})

	assert.Len(t, update, 1)
	assert.Equal(t, "Dhaka", update["district"])
}

func TestAllowedUpdateUnknownKind(t *testing.T) {
	update := AllowedUpdate("banner", map[string]interface{}{"isActive": "true"})

	assert.Empty(t, update)
}
