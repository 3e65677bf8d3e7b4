//go:build unit

package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-payments/internal/provider"
)

func TestGenericClassification(t *testing.T) {
	r := provider.NewRegistry()

	tests := []struct {
		state string
		want  provider.Outcome
	}{
		{"COMPLETED", provider.OutcomeSuccess},
		{"PAID", provider.OutcomeSuccess},
		{"CAPTURED", provider.OutcomeSuccess},
		{"FAILED", provider.OutcomeFailure},
		{"CANCELED", provider.OutcomeFailure},
		{"CANCELLED", provider.OutcomeFailure},
		{"CHARGEBACK", provider.OutcomeFailure},
		{"PENDING", provider.OutcomePending},
		{"WAITING_FOR_CONFIRMATION", provider.OutcomePending},
		{"AUTHORIZED", provider.OutcomePending},
		{"SOMETHING_ELSE", provider.OutcomeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Classify("generic", tt.state))
		})
	}
}

func TestClassificationNormalizesInput(t *testing.T) {
	r := provider.NewRegistry()

	assert.Equal(t, provider.OutcomeSuccess, r.Classify("generic", "completed"))
	assert.Equal(t, provider.OutcomeSuccess, r.Classify("generic", "  Completed  "))
	assert.Equal(t, provider.OutcomeUnknown, r.Classify("generic", ""))
}

func TestProviderSpecificVocabularies(t *testing.T) {
	r := provider.NewRegistry()

	// payu's SUCCESS is not in its table even though generic accepts it
	assert.Equal(t, provider.OutcomeUnknown, r.Classify("payu", "SUCCESS"))
	assert.Equal(t, provider.OutcomeSuccess, r.Classify("payu", "COMPLETED"))
	assert.Equal(t, provider.OutcomeFailure, r.Classify("payu", "REJECTED"))

	assert.Equal(t, provider.OutcomeSuccess, r.Classify("przelewy24", "VERIFIED"))
	assert.Equal(t, provider.OutcomeFailure, r.Classify("przelewy24", "RETURNED"))
	assert.Equal(t, provider.OutcomePending, r.Classify("przelewy24", "REGISTERED"))
}

func TestUnknownProviderFallsBackToGeneric(t *testing.T) {
	r := provider.NewRegistry()

	assert.Equal(t, provider.OutcomeSuccess, r.Classify("stripe-like", "SUCCEEDED"))
	assert.Equal(t, provider.OutcomeFailure, r.Classify("", "DECLINED"))
}
