//go:build unit

package webhook_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-payments/internal/domain/webhook"
)

func TestIdempotencyKey(t *testing.T) {
	t.Run("matches the canonical fingerprint", func(t *testing.T) {
		sum := sha256.Sum256([]byte("TX-1|ORD-1|50000|COMPLETED"))
		expected := hex.EncodeToString(sum[:])

		assert.Equal(t, expected, webhook.IdempotencyKey("TX-1", "ORD-1", 50000, "COMPLETED"))
	})

	t.Run("state is case insensitive", func(t *testing.T) {
		a := webhook.IdempotencyKey("TX-1", "ORD-1", 50000, "completed")
		b := webhook.IdempotencyKey("TX-1", "ORD-1", 50000, "COMPLETED")
		assert.Equal(t, a, b)
	})

	t.Run("any field change yields a different key", func(t *testing.T) {
		base := webhook.IdempotencyKey("TX-1", "ORD-1", 50000, "COMPLETED")

		assert.NotEqual(t, base, webhook.IdempotencyKey("TX-2", "ORD-1", 50000, "COMPLETED"))
		assert.NotEqual(t, base, webhook.IdempotencyKey("TX-1", "ORD-2", 50000, "COMPLETED"))
		assert.NotEqual(t, base, webhook.IdempotencyKey("TX-1", "ORD-1", 50001, "COMPLETED"))
		assert.NotEqual(t, base, webhook.IdempotencyKey("TX-1", "ORD-1", 50000, "CANCELED"))
	})
}
