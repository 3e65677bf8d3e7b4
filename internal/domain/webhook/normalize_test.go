//go:build unit

package webhook_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-payments/internal/domain/webhook"
	"storefront-payments/internal/pkg/errs"
)

func TestNormalize(t *testing.T) {
	t.Run("camelCase payload with minor-unit amount", func(t *testing.T) {
		body := []byte(`{
			"event": "payment.status_changed",
			"payload": {
				"transactionId": "TX-1001",
				"orderId": "ORD-42",
				"state": "completed",
				"amount": 50000,
				"currency": "pln",
				"sessionId": "5f0a2e7e-9b1c-4f3d-8a6b-2c1d0e9f8a7b"
			}
		}`)

		n, err := webhook.Normalize(body)
		require.NoError(t, err)

		expected := &webhook.Notification{
			Event:         "payment.status_changed",
			TransactionID: "TX-1001",
			OrderID:       "ORD-42",
			State:         "COMPLETED",
			AmountCents:   50000,
			Currency:      "PLN",
			SessionID:     "5f0a2e7e-9b1c-4f3d-8a6b-2c1d0e9f8a7b",
		}
		if diff := cmp.Diff(expected, n); diff != "" {
			t.Errorf("Notification mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("snake_case and alias fields", func(t *testing.T) {
		body := []byte(`{
			"event": "payment.completed",
			"payload": {
				"paymentId": "PAY-7",
				"merchantTransactionId": "ORD-77",
				"status": "paid",
				"amount": "120",
				"checkoutSessionId": "sess-9"
			}
		}`)

		n, err := webhook.Normalize(body)
		require.NoError(t, err)

		assert.Equal(t, "PAY-7", n.TransactionID)
		assert.Equal(t, "ORD-77", n.OrderID)
		assert.Equal(t, "PAID", n.State)
		assert.Equal(t, int64(120), n.AmountCents)
		assert.Equal(t, "sess-9", n.SessionID)
	})

	t.Run("decimal amount converts to cents", func(t *testing.T) {
		body := []byte(`{
			"event": "payment.completed",
			"payload": {"transactionId": "TX-1", "state": "COMPLETED", "amount": "500.00"}
		}`)

		n, err := webhook.Normalize(body)
		require.NoError(t, err)
		assert.Equal(t, int64(50000), n.AmountCents)
	})

	t.Run("decimal amount with sub-unit precision", func(t *testing.T) {
		body := []byte(`{
			"event": "payment.completed",
			"payload": {"transactionId": "TX-1", "state": "COMPLETED", "amount": "19.99"}
		}`)

		n, err := webhook.Normalize(body)
		require.NoError(t, err)
		assert.Equal(t, int64(1999), n.AmountCents)
	})

	t.Run("transactionId wins over paymentId", func(t *testing.T) {
		body := []byte(`{
			"event": "payment.completed",
			"payload": {"transactionId": "TX-A", "paymentId": "PAY-B", "state": "COMPLETED", "amount": 1}
		}`)

		n, err := webhook.Normalize(body)
		require.NoError(t, err)
		assert.Equal(t, "TX-A", n.TransactionID)
	})

	t.Run("invalid payloads", func(t *testing.T) {
		cases := []struct {
			name string
			body string
		}{
			{"not json", `{{{`},
			{"missing event", `{"payload": {"transactionId": "TX", "state": "OK", "amount": 1}}`},
			{"missing payload", `{"event": "payment.completed"}`},
			{"no identifiers", `{"event": "e", "payload": {"state": "OK", "amount": 1}}`},
			{"missing state", `{"event": "e", "payload": {"transactionId": "TX", "amount": 1}}`},
			{"missing amount", `{"event": "e", "payload": {"transactionId": "TX", "state": "OK"}}`},
			{"negative amount", `{"event": "e", "payload": {"transactionId": "TX", "state": "OK", "amount": -5}}`},
			{"non-numeric amount", `{"event": "e", "payload": {"transactionId": "TX", "state": "OK", "amount": "abc"}}`},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := webhook.Normalize([]byte(tc.body))
				require.Error(t, err)
				assert.True(t, errors.Is(err, errs.ErrInvalidPayload))
			})
		}
	})
}
