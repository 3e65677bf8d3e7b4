//go:build e2e

package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/infra"
	"storefront-payments/internal/infra/repository"
	"storefront-payments/tests/common/dbtest"
)

type OrderRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.OrderRepository
}

func (s *OrderRepositorySuite) SetupSuite() {
	s.pool = dbtest.NewPool(s.T())
	s.repo = repository.NewOrderRepository(s.pool)
}

func (s *OrderRepositorySuite) SetupTest() {
	dbtest.Reset(s.T(), s.pool)
}

func TestOrderRepositorySuite(t *testing.T) {
	suite.Run(t, new(OrderRepositorySuite))
}

func (s *OrderRepositorySuite) TestConfirmIfDraftHasSingleWinner() {
	txID := "TX-CONTEND"
	id := dbtest.CreateDraftOrder(s.T(), s.pool, "ORD-200", &txID, time.Now())
	now := time.Now()

	const contenders = 8
	var wg sync.WaitGroup
	wins := make([]bool, contenders)
	wg.Add(contenders)
	for i := range contenders {
		go func() {
			defer wg.Done()
			ok, err := s.repo.ConfirmIfDraft(context.Background(), id, txID, nil, now)
			s.NoError(err)
			wins[i] = ok
		}()
	}
	wg.Wait()

	winners := 0
	for _, w := range wins {
		if w {
			winners++
		}
	}
	s.Equal(1, winners, "exactly one finalizer may flip DRAFT to CONFIRMED")

	status, paymentStatus := dbtest.OrderStatus(s.T(), s.pool, id)
	s.Equal(string(order.StatusConfirmed), status)
	s.Equal(string(order.PaymentPaid), paymentStatus)
}

func (s *OrderRepositorySuite) TestCancelLosesAfterConfirm() {
	txID := "TX-201"
	id := dbtest.CreateDraftOrder(s.T(), s.pool, "ORD-201", &txID, time.Now())

	ok, err := s.repo.ConfirmIfDraft(context.Background(), id, txID, nil, time.Now())
	s.Require().NoError(err)
	s.Require().True(ok)

	ok, err = s.repo.CancelIfDraft(context.Background(), id, order.CancelReasonPaymentFailed, time.Now())
	s.Require().NoError(err)
	s.False(ok, "a confirmed order must never be cancelled by the draft path")

	status, _ := dbtest.OrderStatus(s.T(), s.pool, id)
	s.Equal(string(order.StatusConfirmed), status)
}

func (s *OrderRepositorySuite) TestConcurrentConfirmAndExpireHasSingleWinner() {
	txID := "TX-202"
	id := dbtest.CreateDraftOrder(s.T(), s.pool, "ORD-202", &txID, time.Now().Add(-time.Hour))

	var wg sync.WaitGroup
	var confirmed, expired bool
	wg.Add(2)
	go func() {
		defer wg.Done()
		ok, err := s.repo.ConfirmIfDraft(context.Background(), id, txID, nil, time.Now())
		s.NoError(err)
		confirmed = ok
	}()
	go func() {
		defer wg.Done()
		ok, err := s.repo.ExpireIfDraft(context.Background(), id, time.Now())
		s.NoError(err)
		expired = ok
	}()
	wg.Wait()

	s.NotEqual(confirmed, expired, "late webhook and hard-ceiling expiry must not both win")

	status, _ := dbtest.OrderStatus(s.T(), s.pool, id)
	if confirmed {
		s.Equal(string(order.StatusConfirmed), status)
	} else {
		s.Equal(string(order.StatusExpired), status)
	}
}

func (s *OrderRepositorySuite) TestFindByTransactionID() {
	txID := "TX-203"
	id := dbtest.CreateDraftOrder(s.T(), s.pool, "ORD-203", &txID, time.Now())

	o, err := s.repo.FindByTransactionID(context.Background(), txID)
	s.Require().NoError(err)
	s.Equal(id, o.ID)
	s.True(o.IsDraft())

	_, err = s.repo.FindByTransactionID(context.Background(), "TX-UNKNOWN")
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *OrderRepositorySuite) TestListReconcilableWindowsByAge() {
	old := "TX-OLD"
	fresh := "TX-FRESH"
	ancient := "TX-ANCIENT"
	now := time.Now()

	oldID := dbtest.CreateDraftOrder(s.T(), s.pool, "ORD-OLD", &old, now.Add(-10*time.Minute))
	dbtest.CreateDraftOrder(s.T(), s.pool, "ORD-FRESH", &fresh, now.Add(-1*time.Minute))
	dbtest.CreateDraftOrder(s.T(), s.pool, "ORD-ANCIENT", &ancient, now.Add(-2*time.Hour))

	candidates, err := s.repo.ListReconcilable(context.Background(),
		now.Add(-5*time.Minute), now.Add(-30*time.Minute), 10)
	s.Require().NoError(err)
	s.Require().Len(candidates, 1)
	s.Equal(oldID, candidates[0].ID)
}

func (s *OrderRepositorySuite) TestCreateEmergencyRoundTrip() {
	o := order.NewEmergencyOrder("TX-204", 50000, "PLN", time.Now())
	s.Require().NoError(s.repo.CreateEmergency(context.Background(), o))

	found, err := s.repo.FindByTransactionID(context.Background(), "TX-204")
	s.Require().NoError(err)
	s.Equal(o.ID, found.ID)
	s.Equal(order.StatusConfirmed, found.Status)
	s.True(found.RequiresManual)
}
