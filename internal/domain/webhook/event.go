package webhook

import (
	"time"

	"github.com/google/uuid"
)

// RawWebhookEvent is the durable staging record for one gateway delivery.
// Rows are created at ingestion, mutated only by the processor, and purged
// after the retention window.
type RawWebhookEvent struct {
	ID               uuid.UUID
	Provider         string
	RawPayload       []byte
	ReceivedAt       time.Time
	IdempotencyKey   string
	CorrelationID    string
	Processed        bool
	ProcessedReason  *string
	Processing       bool
	LeaseExpiresAt   *time.Time
	RetryCount       int32
	RetryAfter       *time.Time
	LastError        *string
	DeadLetter       bool
	RequiresManual   bool
	InvalidSignature bool
}

// Terminal reasons recorded when an event is marked processed
const (
	ReasonConfirmed           = "confirmed"
	ReasonCancelled           = "cancelled"
	ReasonAlreadyConfirmed    = "already_confirmed"
	ReasonAlreadyCancelled    = "already_cancelled"
	ReasonPaymentNotCompleted = "payment_not_completed"
	ReasonInvalidPayload      = "invalid_payload"
	ReasonInvalidSignature    = "invalid_signature"
	ReasonEmergencyOrder      = "emergency_order_created"
	ReasonOrderNotFound       = "order_not_found"
	ReasonDuplicateDelivery   = "duplicate_delivery"
)
