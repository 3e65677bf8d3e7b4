package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-payments/internal/domain/stock"
	"storefront-payments/internal/infra"
)

// StockRepository owns every mutation of the (stock, reserved) counters.
// Each transition is a single conditional UPDATE so the invariant
// committed + active-reserved ≤ stock holds at every observable instant;
// nothing is ever cached in process memory.
type StockRepository struct {
	db *pgxpool.Pool
}

func NewStockRepository(db *pgxpool.Pool) *StockRepository {
	return &StockRepository{db: db}
}

// Reserve increments the reserved counter iff stock can cover it, and
// records the reservation in the same transaction.
func (r *StockRepository) Reserve(ctx context.Context, res *stock.Reservation) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE product_sizes SET reserved = reserved + $3
			WHERE product_id = $1 AND size = $2 AND reserved + $3 <= stock`,
			res.ProductID, res.Size, res.Qty,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to reserve stock", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("insufficient stock to reserve", nil, infra.KindConflict)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO stock_reservations (id, order_id, product_id, size, qty, status, expires_at, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			res.ID, res.OrderID, res.ProductID, res.Size, res.Qty, stock.StatusActive, res.ExpiresAt, res.CreatedAt,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert reservation", err)
		}
		return nil
	})
}

// Commit moves a reservation's quantity into permanent deduction.
// Idempotent: committing an already-committed reservation is a no-op.
func (r *StockRepository) Commit(ctx context.Context, reservationID uuid.UUID) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		res, err := r.swapStatus(ctx, tx, reservationID, stock.StatusActive, stock.StatusCommitted)
		if err != nil {
			return err
		}
		if res == nil {
			// CAS lost; a committed row means a duplicate call, anything else is a conflict
			current, findErr := r.findStatus(ctx, tx, reservationID)
			if findErr != nil {
				return findErr
			}
			if current == stock.StatusCommitted {
				return nil
			}
			return infra.WrapRepoErr("reservation not active: "+string(current), nil, infra.KindConflict)
		}

		tag, err := tx.Exec(ctx, `
			UPDATE product_sizes
			SET stock = stock - $3, reserved = reserved - $3
			WHERE product_id = $1 AND size = $2 AND stock >= $3 AND reserved >= $3`,
			res.ProductID, res.Size, res.Qty,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to deduct committed stock", err)
		}
		if tag.RowsAffected() == 0 {
			// Rolls back the status swap too
			return infra.WrapRepoErr("stock counters cannot cover commit", nil, infra.KindConflict)
		}
		return nil
	})
}

// RevertCommit is the compensating reversal used when a later item in the
// same finalization fails: the deduction is undone and the reservation
// returns to active so the cancel path can release it.
func (r *StockRepository) RevertCommit(ctx context.Context, reservationID uuid.UUID) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		res, err := r.swapStatus(ctx, tx, reservationID, stock.StatusCommitted, stock.StatusActive)
		if err != nil {
			return err
		}
		if res == nil {
			return nil // nothing committed, nothing to revert
		}

		_, err = tx.Exec(ctx, `
			UPDATE product_sizes SET stock = stock + $3, reserved = reserved + $3
			WHERE product_id = $1 AND size = $2`,
			res.ProductID, res.Size, res.Qty,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to restore stock counters", err)
		}
		return nil
	})
}

// Release returns an active reservation's quantity to the pool. Idempotent:
// duplicate invocations and races with the expiry sweep both resolve to a
// single decrement because only one caller wins the status swap.
func (r *StockRepository) Release(ctx context.Context, reservationID uuid.UUID) error {
	return r.transitionOut(ctx, reservationID, stock.StatusReleased)
}

// Expire is the sweep's variant of Release; the distinct terminal status
// keeps operator reporting honest about why stock came back.
func (r *StockRepository) Expire(ctx context.Context, reservationID uuid.UUID) error {
	return r.transitionOut(ctx, reservationID, stock.StatusExpired)
}

func (r *StockRepository) transitionOut(ctx context.Context, reservationID uuid.UUID, to stock.ReservationStatus) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		res, err := r.swapStatus(ctx, tx, reservationID, stock.StatusActive, to)
		if err != nil {
			return err
		}
		if res == nil {
			return nil // already out of active; someone else won the swap
		}

		_, err = tx.Exec(ctx, `
			UPDATE product_sizes SET reserved = reserved - $3
			WHERE product_id = $1 AND size = $2 AND reserved >= $3`,
			res.ProductID, res.Size, res.Qty,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to return reserved stock", err)
		}
		return nil
	})
}

// ReleaseActiveByOrder releases every still-active reservation of an order,
// used when a payment fails or the order is force-cancelled.
func (r *StockRepository) ReleaseActiveByOrder(ctx context.Context, orderID uuid.UUID) (int, error) {
	reservations, err := r.ListByOrder(ctx, orderID)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		if err := r.Release(ctx, res.ID); err != nil {
			return released, err
		}
		released++
	}
	return released, nil
}

// GuardedDecrement covers line items that never got a reservation: it
// deducts directly iff unreserved stock can satisfy the quantity, failing
// atomically otherwise.
func (r *StockRepository) GuardedDecrement(ctx context.Context, productID uuid.UUID, size string, qty int32) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE product_sizes SET stock = stock - $3
		WHERE product_id = $1 AND size = $2 AND stock - reserved >= $3`,
		productID, size, qty,
	)
	if err != nil {
		return infra.WrapRepoErr("failed guarded stock decrement", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("insufficient unreserved stock", nil, infra.KindConflict)
	}
	return nil
}

// GuardedIncrement compensates a prior GuardedDecrement.
func (r *StockRepository) GuardedIncrement(ctx context.Context, productID uuid.UUID, size string, qty int32) error {
	_, err := r.db.Exec(ctx, `
		UPDATE product_sizes SET stock = stock + $3
		WHERE product_id = $1 AND size = $2`,
		productID, size, qty,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to compensate stock decrement", err)
	}
	return nil
}

func (r *StockRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*stock.Reservation, error) {
	return r.list(ctx, `
		SELECT id, order_id, product_id, size, qty, status, expires_at, created_at
		FROM stock_reservations WHERE order_id = $1`,
		orderID,
	)
}

func (r *StockRepository) ListExpiredActive(ctx context.Context, now time.Time, limit int32) ([]*stock.Reservation, error) {
	return r.list(ctx, `
		SELECT id, order_id, product_id, size, qty, status, expires_at, created_at
		FROM stock_reservations
		WHERE status = $1 AND expires_at < $2
		ORDER BY expires_at
		LIMIT $3`,
		stock.StatusActive, now, limit,
	)
}

func (r *StockRepository) FindActiveByOrderItem(ctx context.Context, orderID, productID uuid.UUID, size string) (*stock.Reservation, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, order_id, product_id, size, qty, status, expires_at, created_at
		FROM stock_reservations
		WHERE order_id = $1 AND product_id = $2 AND size = $3 AND status = $4
		LIMIT 1`,
		orderID, productID, size, stock.StatusActive,
	)

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no active reservation for item", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

// ListTimedOutSessions finds checkout sessions past timeout_at that still
// hold stock.
func (r *StockRepository) ListTimedOutSessions(ctx context.Context, now time.Time, limit int32) ([]*stock.CheckoutSession, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, stock_reserved, status, timeout_at, expires_at
		FROM checkout_sessions
		WHERE status = $1 AND stock_reserved AND timeout_at < $2
		ORDER BY timeout_at
		LIMIT $3`,
		stock.SessionOpen, now, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list timed-out sessions", err)
	}
	defer rows.Close()

	var sessions []*stock.CheckoutSession
	for rows.Next() {
		var s stock.CheckoutSession
		if err := rows.Scan(&s.ID, &s.OrderID, &s.StockReserved, &s.Status, &s.TimeoutAt, &s.ExpiresAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan session", err)
		}
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sessions", err)
	}
	return sessions, nil
}

// ExpireSession flips the session open→expired and drops the reserved flag.
// Only the caller that wins this swap may release the session's stock, which
// is what keeps concurrent sweeps from double-releasing.
func (r *StockRepository) ExpireSession(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE checkout_sessions
		SET status = $2, stock_reserved = false
		WHERE id = $1 AND status = $3 AND stock_reserved`,
		sessionID, stock.SessionExpired, stock.SessionOpen,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to expire session", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *StockRepository) list(ctx context.Context, query string, args ...any) ([]*stock.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*stock.Reservation
	for rows.Next() {
		res, scanErr := scanReservation(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", scanErr)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}

// swapStatus is the CAS every reservation transition goes through.
// Returns nil (no error) when the swap was lost.
func (r *StockRepository) swapStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to stock.ReservationStatus) (*stock.Reservation, error) {
	row := tx.QueryRow(ctx, `
		UPDATE stock_reservations SET status = $3
		WHERE id = $1 AND status = $2
		RETURNING id, order_id, product_id, size, qty, status, expires_at, created_at`,
		id, from, to,
	)

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed reservation status swap", err)
	}
	return res, nil
}

func (r *StockRepository) findStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID) (stock.ReservationStatus, error) {
	var status stock.ReservationStatus
	err := tx.QueryRow(ctx, `SELECT status FROM stock_reservations WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to read reservation status", err)
	}
	return status, nil
}

func (r *StockRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}

	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr)
			}
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}

func scanReservation(row pgx.Row) (*stock.Reservation, error) {
	var res stock.Reservation
	err := row.Scan(&res.ID, &res.OrderID, &res.ProductID, &res.Size, &res.Qty, &res.Status, &res.ExpiresAt, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
