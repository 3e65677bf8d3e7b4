//go:build unit

package webhook_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-payments/internal/domain/webhook"
)

func TestVerifySignature(t *testing.T) {
	secret := "webhook-secret"
	body := []byte(`{"event":"payment.completed","payload":{"transactionId":"TX-1"}}`)

	t.Run("accepts own signature", func(t *testing.T) {
		sig := webhook.Sign(secret, body)
		assert.True(t, webhook.VerifySignature(secret, body, sig))
	})

	t.Run("accepts sha256= prefixed header", func(t *testing.T) {
		sig := "sha256=" + webhook.Sign(secret, body)
		assert.True(t, webhook.VerifySignature(secret, body, sig))
	})

	t.Run("accepts uppercase hex", func(t *testing.T) {
		sig := strings.ToUpper(webhook.Sign(secret, body))
		assert.True(t, webhook.VerifySignature(secret, body, sig))
	})

	t.Run("rejects empty signature", func(t *testing.T) {
		assert.False(t, webhook.VerifySignature(secret, body, ""))
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		sig := webhook.Sign("other-secret", body)
		assert.False(t, webhook.VerifySignature(secret, body, sig))
	})

	t.Run("rejects tampered body", func(t *testing.T) {
		sig := webhook.Sign(secret, body)
		tampered := []byte(`{"event":"payment.completed","payload":{"transactionId":"TX-2"}}`)
		assert.False(t, webhook.VerifySignature(secret, tampered, sig))
	})
}
