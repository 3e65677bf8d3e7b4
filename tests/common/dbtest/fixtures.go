//go:build e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"storefront-payments/internal/domain/order"
)

// DBLike is the minimal surface the fixtures need; *pgxpool.Pool and pgx.Tx
// both satisfy it.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func SeedProductSize(t *testing.T, db DBLike, productID uuid.UUID, size string, stock int32) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO product_sizes (product_id, size, stock, reserved)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (product_id, size) DO UPDATE SET stock = $3, reserved = 0`,
		productID, size, stock,
	)
	require.NoError(t, err)
}

// CreateDraftOrder inserts a pending-payment draft the way checkout would.
func CreateDraftOrder(t *testing.T, db DBLike, orderNumber string, txID *string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO orders (id, order_number, status, payment_status, gateway_transaction_id,
		                    total_cents, currency, source, created_at)
		VALUES ($1, $2, $3, $4, $5, 50000, 'PLN', 'web', $6)`,
		id, orderNumber, order.StatusDraft, order.PaymentPending, txID, createdAt,
	)
	require.NoError(t, err)
	return id
}

func OrderStatus(t *testing.T, db DBLike, id uuid.UUID) (string, string) {
	t.Helper()

	var status, paymentStatus string
	err := db.QueryRow(context.Background(),
		`SELECT status, payment_status FROM orders WHERE id = $1`, id,
	).Scan(&status, &paymentStatus)
	require.NoError(t, err)
	return status, paymentStatus
}

// StockCounters reads the live (stock, reserved) pair for assertions on the
// counter invariant.
func StockCounters(t *testing.T, db DBLike, productID uuid.UUID, size string) (int32, int32) {
	t.Helper()

	var stockCount, reserved int32
	err := db.QueryRow(context.Background(),
		`SELECT stock, reserved FROM product_sizes WHERE product_id = $1 AND size = $2`,
		productID, size,
	).Scan(&stockCount, &reserved)
	require.NoError(t, err)
	return stockCount, reserved
}

func ReservationState(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		`SELECT status FROM stock_reservations WHERE id = $1`, id,
	).Scan(&status)
	require.NoError(t, err)
	return status
}
