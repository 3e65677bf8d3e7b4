package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/infra"
	"storefront-payments/internal/pkg/clock"
	"storefront-payments/internal/pkg/errs"
)

// FinalizeOutcome is the terminal result of one finalization attempt.
type FinalizeOutcome string

const (
	OutcomeConfirmed        FinalizeOutcome = "confirmed"
	OutcomeCancelled        FinalizeOutcome = "cancelled"
	OutcomeAlreadyConfirmed FinalizeOutcome = "already_confirmed"
	OutcomeAlreadyCancelled FinalizeOutcome = "already_cancelled"
	OutcomeCancelledStock   FinalizeOutcome = "cancelled_out_of_stock"
)

type PaymentInfo struct {
	TransactionID  string
	AmountCents    int64
	Currency       string
	RecoveryMethod *string
}

type FinalizeResult struct {
	Outcome FinalizeOutcome
	OrderID uuid.UUID
}

// Finalizer is the single commit path for order finalization. Both the
// webhook processor and the reconciliation job call it; there is no other
// code that moves an order out of DRAFT on payment success.
//
//go:generate mockgen -source=finalize.go -destination=../../../tests/mock/commands/finalize_mock.go -package=commandsmock
type Finalizer interface {
	Finalize(ctx context.Context, orderID uuid.UUID, payment PaymentInfo) (*FinalizeResult, error)
	CancelAndRelease(ctx context.Context, orderID uuid.UUID, reason string) (*FinalizeResult, error)
}

type finalizerImpl struct {
	orders  OrderStore
	stocks  StockStore
	refunds RefundNotifier
	clock   clock.Clock
}

func NewFinalizer(orders OrderStore, stocks StockStore, refunds RefundNotifier, clk clock.Clock) Finalizer {
	return &finalizerImpl{
		orders:  orders,
		stocks:  stocks,
		refunds: refunds,
		clock:   clk,
	}
}

// Finalize must be called while holding the per-order lock. It guarantees
// exactly one of: CONFIRMED with all stock committed, or CANCELLED with
// reservations returned. Never a partial state.
func (f *finalizerImpl) Finalize(ctx context.Context, orderID uuid.UUID, payment PaymentInfo) (*FinalizeResult, error) {
	o, err := f.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrTransientInfra)
	}

	// The DRAFT precondition, re-checked under the lock, decides the winner
	// between concurrent finalizers.
	if !o.IsDraft() {
		return &FinalizeResult{Outcome: existingOutcome(o), OrderID: o.ID}, nil
	}

	committed, failed := f.commitItems(ctx, o)
	if failed != nil {
		f.compensate(ctx, o, committed)
		return f.cancelOutOfStock(ctx, o, payment)
	}

	ok, err := f.orders.ConfirmIfDraft(ctx, o.ID, payment.TransactionID, payment.RecoveryMethod, f.clock.Now())
	if err != nil {
		f.compensate(ctx, o, committed)
		return nil, errs.Mark(err, errs.ErrTransientInfra)
	}
	if !ok {
		// Lost the conditional update to a concurrent caller; undo our commits
		// and report whatever state won.
		f.compensate(ctx, o, committed)
		current, readErr := f.orders.FindByID(ctx, o.ID)
		if readErr != nil {
			return nil, errs.Mark(readErr, errs.ErrTransientInfra)
		}
		return &FinalizeResult{Outcome: existingOutcome(current), OrderID: o.ID}, nil
	}

	slog.Info("order confirmed",
		"order_id", o.ID,
		"order_number", o.OrderNumber,
		"transaction_id", payment.TransactionID,
		"amount_cents", payment.AmountCents)

	return &FinalizeResult{Outcome: OutcomeConfirmed, OrderID: o.ID}, nil
}

// CancelAndRelease moves a DRAFT order to CANCELLED and returns its active
// reservations. Terminal orders are a no-op.
func (f *finalizerImpl) CancelAndRelease(ctx context.Context, orderID uuid.UUID, reason string) (*FinalizeResult, error) {
	o, err := f.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrTransientInfra)
	}

	if !o.IsDraft() {
		return &FinalizeResult{Outcome: existingOutcome(o), OrderID: o.ID}, nil
	}

	ok, err := f.orders.CancelIfDraft(ctx, o.ID, reason, f.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTransientInfra)
	}
	if !ok {
		current, readErr := f.orders.FindByID(ctx, o.ID)
		if readErr != nil {
			return nil, errs.Mark(readErr, errs.ErrTransientInfra)
		}
		return &FinalizeResult{Outcome: existingOutcome(current), OrderID: o.ID}, nil
	}

	released, err := f.stocks.ReleaseActiveByOrder(ctx, o.ID)
	if err != nil {
		// The order is already terminal; the expiry sweep will return
		// whatever this call missed.
		slog.Error("failed to release reservations after cancel",
			"order_id", o.ID, "error", err)
	}

	slog.Info("order cancelled",
		"order_id", o.ID,
		"reason", reason,
		"reservations_released", released)

	return &FinalizeResult{Outcome: OutcomeCancelled, OrderID: o.ID}, nil
}

// committedItem records one succeeded step for compensating reversal.
type committedItem struct {
	reservationID *uuid.UUID // nil when the commit was a guarded decrement
	item          order.Item
}

func (f *finalizerImpl) commitItems(ctx context.Context, o *order.Order) ([]committedItem, error) {
	var committed []committedItem

	for _, item := range o.Items {
		res, err := f.stocks.FindActiveByOrderItem(ctx, o.ID, item.ProductID, item.Size)
		switch {
		case err == nil:
			if commitErr := f.stocks.Commit(ctx, res.ID); commitErr != nil {
				return committed, commitErr
			}
			id := res.ID
			committed = append(committed, committedItem{reservationID: &id, item: item})

		case infra.IsKind(err, infra.KindNotFound):
			// No reservation survived (expired, or checkout predates the
			// reservation flow): guarded decrement against unreserved stock.
			if decErr := f.stocks.GuardedDecrement(ctx, item.ProductID, item.Size, item.Qty); decErr != nil {
				return committed, decErr
			}
			committed = append(committed, committedItem{item: item})

		default:
			return committed, err
		}
	}

	return committed, nil
}

func (f *finalizerImpl) compensate(ctx context.Context, o *order.Order, committed []committedItem) {
	for i := len(committed) - 1; i >= 0; i-- {
		c := committed[i]
		var err error
		if c.reservationID != nil {
			err = f.stocks.RevertCommit(ctx, *c.reservationID)
		} else {
			err = f.stocks.GuardedIncrement(ctx, c.item.ProductID, c.item.Size, c.item.Qty)
		}
		if err != nil {
			slog.Error("compensating reversal failed",
				"order_id", o.ID,
				"product_id", c.item.ProductID,
				"size", c.item.Size,
				"error", err)
		}
	}
}

func (f *finalizerImpl) cancelOutOfStock(ctx context.Context, o *order.Order, payment PaymentInfo) (*FinalizeResult, error) {
	now := f.clock.Now()

	ok, err := f.orders.CancelIfDraft(ctx, o.ID, order.CancelReasonOutOfStock, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTransientInfra)
	}
	if !ok {
		current, readErr := f.orders.FindByID(ctx, o.ID)
		if readErr != nil {
			return nil, errs.Mark(readErr, errs.ErrTransientInfra)
		}
		return &FinalizeResult{Outcome: existingOutcome(current), OrderID: o.ID}, nil
	}

	if _, relErr := f.stocks.ReleaseActiveByOrder(ctx, o.ID); relErr != nil {
		slog.Error("failed to release reservations after stock cancel",
			"order_id", o.ID, "error", relErr)
	}

	// Money was received for an order we cannot fulfill: the refund workflow
	// takes over and operators get paged through the alert log.
	if refundErr := f.refunds.RequestRefund(ctx, o.ID, payment.TransactionID, payment.AmountCents); refundErr != nil {
		slog.Error("failed to trigger refund workflow",
			"order_id", o.ID,
			"transaction_id", payment.TransactionID,
			"error", refundErr)
	}
	slog.Error("ALERT: order cancelled due to stock conflict after payment",
		"order_id", o.ID,
		"order_number", o.OrderNumber,
		"transaction_id", payment.TransactionID,
		"amount_cents", payment.AmountCents)

	return &FinalizeResult{Outcome: OutcomeCancelledStock, OrderID: o.ID}, nil
}

func existingOutcome(o *order.Order) FinalizeOutcome {
	if o.Status == order.StatusConfirmed {
		return OutcomeAlreadyConfirmed
	}
	return OutcomeAlreadyCancelled
}
