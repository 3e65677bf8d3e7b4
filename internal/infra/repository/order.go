package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/infra"
)

const orderColumns = `
	id, order_number, status, payment_status, gateway_transaction_id, session_id,
	total_cents, currency, source, recovery_method, requires_manual, cancel_reason,
	confirmed_at, cancelled_at, created_at`

// OrderRepository touches only the finalization-owned columns; the catalog
// CRUD layer owns the rest of the schema.
type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

func (r *OrderRepository) FindByTransactionID(ctx context.Context, txID string) (*order.Order, error) {
	return r.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE gateway_transaction_id = $1`, txID)
}

// FindBySessionID is the secondary recovery index: a webhook that carries no
// known transaction id may still name the checkout session that created the order.
func (r *OrderRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*order.Order, error) {
	return r.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE session_id = $1`, sessionID)
}

func (r *OrderRepository) findOne(ctx context.Context, query string, arg any) (*order.Order, error) {
	row := r.db.QueryRow(ctx, query, arg)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	items, err := r.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orderID uuid.UUID) ([]order.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT product_id, size, qty, unit_price_cents
		FROM order_items WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order items", err)
	}
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		var it order.Item
		if err := rows.Scan(&it.ProductID, &it.Size, &it.Qty, &it.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}
	return items, nil
}

// ConfirmIfDraft performs the atomic DRAFT→CONFIRMED commit. The status
// predicate in the WHERE clause is what makes concurrent finalizers safe:
// exactly one caller observes a row change.
func (r *OrderRepository) ConfirmIfDraft(ctx context.Context, id uuid.UUID, txID string, recoveryMethod *string, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $2, payment_status = $3,
		    gateway_transaction_id = COALESCE(gateway_transaction_id, $4),
		    recovery_method = COALESCE($5, recovery_method),
		    confirmed_at = $6
		WHERE id = $1 AND status = $7`,
		id, order.StatusConfirmed, order.PaymentPaid, txID, recoveryMethod, now, order.StatusDraft,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to confirm order", err)
	}
	return tag.RowsAffected() == 1, nil
}

// CancelIfDraft is the atomic DRAFT→CANCELLED counterpart.
func (r *OrderRepository) CancelIfDraft(ctx context.Context, id uuid.UUID, reason string, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $2, payment_status = $3, cancel_reason = $4, cancelled_at = $5
		WHERE id = $1 AND status = $6`,
		id, order.StatusCancelled, order.PaymentFailed, reason, now, order.StatusDraft,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel order", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ExpireIfDraft force-expires an abandoned draft past the hard ceiling.
func (r *OrderRepository) ExpireIfDraft(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $2, payment_status = $3, cancel_reason = $4, cancelled_at = $5
		WHERE id = $1 AND status = $6`,
		id, order.StatusExpired, order.PaymentFailed, order.CancelReasonAbandoned, now, order.StatusDraft,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to expire order", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OrderRepository) SetRequiresManual(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE orders SET requires_manual = true WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to flag order for manual processing", err)
	}
	return nil
}

// CreateEmergency inserts a confirmed order for money that arrived without
// a matching draft.
func (r *OrderRepository) CreateEmergency(ctx context.Context, o *order.Order) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		o.ID, o.OrderNumber, o.Status, o.PaymentStatus, o.GatewayTransactionID, o.SessionID,
		o.TotalCents, o.Currency, o.Source, o.RecoveryMethod, o.RequiresManual, o.CancelReason,
		o.ConfirmedAt, o.CancelledAt, o.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create emergency order", err)
	}
	return nil
}

// ListReconcilable selects DRAFT orders whose webhook may have been lost:
// pending payment, older than the lookback window, younger than the ceiling.
func (r *OrderRepository) ListReconcilable(ctx context.Context, olderThan, youngerThan time.Time, limit int32) ([]*order.Order, error) {
	return r.listDrafts(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE status = $1 AND payment_status = $2
		  AND created_at < $3 AND created_at >= $4
		ORDER BY created_at
		LIMIT $5`,
		order.StatusDraft, order.PaymentPending, olderThan, youngerThan, limit,
	)
}

// ListAbandoned selects drafts past the hard ceiling, due for force-cancel.
func (r *OrderRepository) ListAbandoned(ctx context.Context, ceiling time.Time, limit int32) ([]*order.Order, error) {
	return r.listDrafts(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE status = $1 AND payment_status = $2 AND created_at < $3
		ORDER BY created_at
		LIMIT $4`,
		order.StatusDraft, order.PaymentPending, ceiling, limit,
	)
}

func (r *OrderRepository) ListEmergency(ctx context.Context, limit int32) ([]*order.Order, error) {
	return r.listDrafts(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE requires_manual AND recovery_method = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		order.RecoveryMethodEmergencyCreation, limit,
	)
}

func (r *OrderRepository) listDrafts(ctx context.Context, query string, args ...any) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var result []*order.Order
	for rows.Next() {
		o, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan order", scanErr)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}

	for _, o := range result {
		items, itemsErr := r.loadItems(ctx, o.ID)
		if itemsErr != nil {
			return nil, itemsErr
		}
		o.Items = items
	}
	return result, nil
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var o order.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.Status, &o.PaymentStatus, &o.GatewayTransactionID, &o.SessionID,
		&o.TotalCents, &o.Currency, &o.Source, &o.RecoveryMethod, &o.RequiresManual, &o.CancelReason,
		&o.ConfirmedAt, &o.CancelledAt, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
