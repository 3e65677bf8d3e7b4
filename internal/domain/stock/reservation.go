package stock

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus moves active → committed | released | expired.
// Every transition out of active is a compare-and-swap in the store so that
// two concurrent sweeps or duplicate releases can never return the same
// unit of stock twice.
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusCommitted ReservationStatus = "committed"
	StatusReleased  ReservationStatus = "released"
	StatusExpired   ReservationStatus = "expired"
)

type Reservation struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Size      string
	Qty       int32
	Status    ReservationStatus
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

func (r *Reservation) IsExpired(now time.Time) bool {
	return r.Status == StatusActive && now.After(r.ExpiresAt)
}

type SessionStatus string

const (
	SessionOpen     SessionStatus = "open"
	SessionComplete SessionStatus = "complete"
	SessionExpired  SessionStatus = "expired"
)

// CheckoutSession drives reservation creation and guarantees a single
// release on timeout. TimeoutAt never exceeds ExpiresAt.
type CheckoutSession struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	StockReserved bool
	Status        SessionStatus
	TimeoutAt     time.Time
	ExpiresAt     time.Time
}
