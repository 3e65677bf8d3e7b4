//go:build e2e

package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"storefront-payments/internal/domain/stock"
	"storefront-payments/internal/infra"
	"storefront-payments/internal/infra/repository"
	"storefront-payments/tests/common/dbtest"
)

type StockRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.StockRepository

	productID uuid.UUID
	orderID   uuid.UUID
}

func (s *StockRepositorySuite) SetupSuite() {
	s.pool = dbtest.NewPool(s.T())
	s.repo = repository.NewStockRepository(s.pool)
}

func (s *StockRepositorySuite) SetupTest() {
	dbtest.Reset(s.T(), s.pool)
	s.productID = uuid.New()
	s.orderID = uuid.New()
	dbtest.SeedProductSize(s.T(), s.pool, s.productID, "M", 5)
}

func TestStockRepositorySuite(t *testing.T) {
	suite.Run(t, new(StockRepositorySuite))
}

func (s *StockRepositorySuite) reserve(qty int32) *stock.Reservation {
	res := &stock.Reservation{
		ID:        uuid.New(),
		OrderID:   s.orderID,
		ProductID: s.productID,
		Size:      "M",
		Qty:       qty,
		Status:    stock.StatusActive,
		ExpiresAt: time.Now().Add(15 * time.Minute),
		CreatedAt: time.Now(),
	}
	s.Require().NoError(s.repo.Reserve(context.Background(), res))
	return res
}

func (s *StockRepositorySuite) TestReserveRespectsStockCeiling() {
	s.reserve(3)

	over := &stock.Reservation{
		ID: uuid.New(), OrderID: s.orderID, ProductID: s.productID,
		Size: "M", Qty: 3, Status: stock.StatusActive,
		ExpiresAt: time.Now().Add(15 * time.Minute), CreatedAt: time.Now(),
	}
	err := s.repo.Reserve(context.Background(), over)
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindConflict))

	stockCount, reserved := dbtest.StockCounters(s.T(), s.pool, s.productID, "M")
	s.Equal(int32(5), stockCount)
	s.Equal(int32(3), reserved)
}

func (s *StockRepositorySuite) TestCommitDeductsExactlyOnce() {
	res := s.reserve(2)

	s.Require().NoError(s.repo.Commit(context.Background(), res.ID))
	stockCount, reserved := dbtest.StockCounters(s.T(), s.pool, s.productID, "M")
	s.Equal(int32(3), stockCount)
	s.Equal(int32(0), reserved)

	// Duplicate commit is a no-op, not a second deduction
	s.Require().NoError(s.repo.Commit(context.Background(), res.ID))
	stockCount, reserved = dbtest.StockCounters(s.T(), s.pool, s.productID, "M")
	s.Equal(int32(3), stockCount)
	s.Equal(int32(0), reserved)
}

func (s *StockRepositorySuite) TestConcurrentCommitAndExpireResolveToOneTransition() {
	res := s.reserve(2)

	var wg sync.WaitGroup
	errors := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		errors[0] = s.repo.Commit(context.Background(), res.ID)
	}()
	go func() {
		defer wg.Done()
		errors[1] = s.repo.Expire(context.Background(), res.ID)
	}()
	wg.Wait()

	// Expire losing the CAS is silent; Commit losing it reports a conflict
	// unless the row already reads committed. Either way exactly one
	// transition may touch the counters.
	state := dbtest.ReservationState(s.T(), s.pool, res.ID)
	stockCount, reserved := dbtest.StockCounters(s.T(), s.pool, s.productID, "M")

	switch state {
	case string(stock.StatusCommitted):
		s.NoError(errors[0])
		s.NoError(errors[1])
		s.Equal(int32(3), stockCount)
		s.Equal(int32(0), reserved)
	case string(stock.StatusExpired):
		s.NoError(errors[1])
		s.Require().Error(errors[0])
		s.True(infra.IsKind(errors[0], infra.KindConflict))
		s.Equal(int32(5), stockCount)
		s.Equal(int32(0), reserved)
	default:
		s.Failf("unexpected terminal state", "reservation ended as %q", state)
	}
}

func (s *StockRepositorySuite) TestRevertCommitRestoresCounters() {
	res := s.reserve(2)
	s.Require().NoError(s.repo.Commit(context.Background(), res.ID))

	s.Require().NoError(s.repo.RevertCommit(context.Background(), res.ID))
	stockCount, reserved := dbtest.StockCounters(s.T(), s.pool, s.productID, "M")
	s.Equal(int32(5), stockCount)
	s.Equal(int32(2), reserved)
	s.Equal(string(stock.StatusActive), dbtest.ReservationState(s.T(), s.pool, res.ID))

	// Reverting a reservation that is back to active does nothing
	s.Require().NoError(s.repo.RevertCommit(context.Background(), res.ID))
	stockCount, reserved = dbtest.StockCounters(s.T(), s.pool, s.productID, "M")
	s.Equal(int32(5), stockCount)
	s.Equal(int32(2), reserved)
}

func (s *StockRepositorySuite) TestDuplicateReleaseDecrementsOnce() {
	res := s.reserve(2)

	s.Require().NoError(s.repo.Release(context.Background(), res.ID))
	s.Require().NoError(s.repo.Release(context.Background(), res.ID))

	stockCount, reserved := dbtest.StockCounters(s.T(), s.pool, s.productID, "M")
	s.Equal(int32(5), stockCount)
	s.Equal(int32(0), reserved)
}

func (s *StockRepositorySuite) TestConcurrentReleaseAndExpireReturnStockOnce() {
	res := s.reserve(3)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = s.repo.Release(context.Background(), res.ID)
	}()
	go func() {
		defer wg.Done()
		_ = s.repo.Expire(context.Background(), res.ID)
	}()
	wg.Wait()

	stockCount, reserved := dbtest.StockCounters(s.T(), s.pool, s.productID, "M")
	s.Equal(int32(5), stockCount)
	s.Equal(int32(0), reserved, "double release would drive reserved negative")
}

func (s *StockRepositorySuite) TestGuardedDecrementHonorsReservedStock() {
	s.reserve(3)

	// 5 total, 3 reserved by someone else: only 2 are free
	err := s.repo.GuardedDecrement(context.Background(), s.productID, "M", 3)
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindConflict))

	s.Require().NoError(s.repo.GuardedDecrement(context.Background(), s.productID, "M", 2))
	stockCount, reserved := dbtest.StockCounters(s.T(), s.pool, s.productID, "M")
	s.Equal(int32(3), stockCount)
	s.Equal(int32(3), reserved)
}

func (s *StockRepositorySuite) TestReleaseActiveByOrderSkipsCommitted() {
	kept := s.reserve(1)
	s.Require().NoError(s.repo.Commit(context.Background(), kept.ID))
	s.reserve(2)

	released, err := s.repo.ReleaseActiveByOrder(context.Background(), s.orderID)
	s.Require().NoError(err)
	s.Equal(1, released)

	stockCount, reserved := dbtest.StockCounters(s.T(), s.pool, s.productID, "M")
	s.Equal(int32(4), stockCount)
	s.Equal(int32(0), reserved)
	s.Equal(string(stock.StatusCommitted), dbtest.ReservationState(s.T(), s.pool, kept.ID))
}

func (s *StockRepositorySuite) TestExpireSessionHasSingleWinner() {
	sessionID := uuid.New()
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO checkout_sessions (id, order_id, stock_reserved, status, timeout_at, expires_at)
		VALUES ($1, $2, true, $3, $4, $5)`,
		sessionID, s.orderID, stock.SessionOpen,
		time.Now().Add(-time.Minute), time.Now().Add(time.Hour),
	)
	s.Require().NoError(err)

	var wg sync.WaitGroup
	wins := make([]bool, 2)
	wg.Add(2)
	for i := range 2 {
		go func() {
			defer wg.Done()
			ok, expErr := s.repo.ExpireSession(context.Background(), sessionID)
			s.NoError(expErr)
			wins[i] = ok
		}()
	}
	wg.Wait()

	s.NotEqual(wins[0], wins[1], "exactly one sweep may win the session swap")
}
