package order

import (
	"time"

	"github.com/google/uuid"

	"storefront-payments/internal/pkg/errs"
)

type Item struct {
	ProductID      uuid.UUID
	Size           string
	Qty            int32
	UnitPriceCents int32
}

type Order struct {
	ID                   uuid.UUID
	OrderNumber          string
	Status               Status
	PaymentStatus        PaymentStatus
	GatewayTransactionID *string
	SessionID            *uuid.UUID
	Items                []Item
	TotalCents           int64
	Currency             string
	Source               string
	RecoveryMethod       *string
	RequiresManual       bool
	CancelReason         *string
	ConfirmedAt          *time.Time
	CancelledAt          *time.Time
	CreatedAt            time.Time
}

func (o *Order) IsDraft() bool {
	return o.Status == StatusDraft
}

// Confirm validates the DRAFT precondition; persistence enforces it again
// with a conditional update, this catches misuse before touching the store.
func (o *Order) Confirm(txID string, now time.Time) error {
	if !o.Status.CanTransitionTo(StatusConfirmed) {
		return errs.Mark(errs.New("confirm from "+string(o.Status)), errs.ErrInvalidTransition)
	}
	o.Status = StatusConfirmed
	o.PaymentStatus = PaymentPaid
	o.GatewayTransactionID = &txID
	o.ConfirmedAt = &now
	return nil
}

func (o *Order) Cancel(reason string, now time.Time) error {
	if !o.Status.CanTransitionTo(StatusCancelled) {
		return errs.Mark(errs.New("cancel from "+string(o.Status)), errs.ErrInvalidTransition)
	}
	o.Status = StatusCancelled
	o.PaymentStatus = PaymentFailed
	o.CancelReason = &reason
	o.CancelledAt = &now
	return nil
}

// NewEmergencyOrder represents money received for an order we cannot find.
// It is always flagged for manual processing; silently dropping a payment
// is never acceptable.
func NewEmergencyOrder(txID string, amountCents int64, currency string, now time.Time) *Order {
	method := RecoveryMethodEmergencyCreation
	return &Order{
		ID:                   uuid.New(),
		OrderNumber:          "EMG-" + now.Format("20060102") + "-" + txID,
		Status:               StatusConfirmed,
		PaymentStatus:        PaymentPaid,
		GatewayTransactionID: &txID,
		TotalCents:           amountCents,
		Currency:             currency,
		Source:               SourceWebhook,
		RecoveryMethod:       &method,
		RequiresManual:       true,
		ConfirmedAt:          &now,
		CreatedAt:            now,
	}
}
