//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"storefront-payments/internal/domain/stock"
	"storefront-payments/internal/pkg/clock"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/usecase/commands"
	commandsmock "storefront-payments/tests/mock/commands"
)

type SweepTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	events *commandsmock.MockEventStore
	stocks *commandsmock.MockStockStore
	idem   *commandsmock.MockIdempotencyStore
	cfg    config.ProcessorConfig
	sweep  commands.SweepCommands

	now time.Time
}

func (s *SweepTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.events = commandsmock.NewMockEventStore(s.ctrl)
	s.stocks = commandsmock.NewMockStockStore(s.ctrl)
	s.idem = commandsmock.NewMockIdempotencyStore(s.ctrl)
	s.cfg = config.NewTestConfig().Processor
	s.now = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	s.sweep = commands.NewSweepUseCase(s.events, s.stocks, s.idem, s.cfg, clock.NewMockClock(s.now))
}

func (s *SweepTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSweepSuite(t *testing.T) {
	suite.Run(t, new(SweepTestSuite))
}

func (s *SweepTestSuite) TestFullPass() {
	resID := uuid.New()
	sessID := uuid.New()
	orderID := uuid.New()

	s.events.EXPECT().ReapExpiredLeases(gomock.Any(), s.now).Return(int64(2), nil)
	s.stocks.EXPECT().ListExpiredActive(gomock.Any(), s.now, int32(200)).
		Return([]*stock.Reservation{{ID: resID, Status: stock.StatusActive}}, nil)
	s.stocks.EXPECT().Expire(gomock.Any(), resID).Return(nil)
	s.stocks.EXPECT().ListTimedOutSessions(gomock.Any(), s.now, int32(200)).
		Return([]*stock.CheckoutSession{{ID: sessID, OrderID: orderID}}, nil)
	s.stocks.EXPECT().ExpireSession(gomock.Any(), sessID).Return(true, nil)
	s.stocks.EXPECT().ReleaseActiveByOrder(gomock.Any(), orderID).Return(3, nil)
	s.idem.EXPECT().DeleteExpired(gomock.Any(), s.now).Return(int64(5), nil)
	s.events.EXPECT().DeleteProcessedBefore(gomock.Any(), s.now.Add(-s.cfg.RecordRetention)).Return(int64(7), nil)

	stats, err := s.sweep.SweepExpired(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(2), stats.LeasesReaped)
	s.Equal(1, stats.ReservationsExpired)
	s.Equal(1, stats.SessionsExpired)
	s.Equal(int64(5), stats.RecordsPurged)
	s.Equal(int64(7), stats.EventsPurged)
}

func (s *SweepTestSuite) TestSessionRaceLostSkipsRelease() {
	sessID := uuid.New()

	s.events.EXPECT().ReapExpiredLeases(gomock.Any(), s.now).Return(int64(0), nil)
	s.stocks.EXPECT().ListExpiredActive(gomock.Any(), s.now, int32(200)).Return(nil, nil)
	s.stocks.EXPECT().ListTimedOutSessions(gomock.Any(), s.now, int32(200)).
		Return([]*stock.CheckoutSession{{ID: sessID, OrderID: uuid.New()}}, nil)
	s.stocks.EXPECT().ExpireSession(gomock.Any(), sessID).Return(false, nil)
	s.idem.EXPECT().DeleteExpired(gomock.Any(), s.now).Return(int64(0), nil)
	s.events.EXPECT().DeleteProcessedBefore(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	stats, err := s.sweep.SweepExpired(context.Background())
	s.Require().NoError(err)
	s.Equal(0, stats.SessionsExpired)
}

func (s *SweepTestSuite) TestReservationExpireFailureContinues() {
	failing := uuid.New()
	ok := uuid.New()

	s.events.EXPECT().ReapExpiredLeases(gomock.Any(), s.now).Return(int64(0), nil)
	s.stocks.EXPECT().ListExpiredActive(gomock.Any(), s.now, int32(200)).
		Return([]*stock.Reservation{{ID: failing}, {ID: ok}}, nil)
	s.stocks.EXPECT().Expire(gomock.Any(), failing).Return(errors.New("deadlock"))
	s.stocks.EXPECT().Expire(gomock.Any(), ok).Return(nil)
	s.stocks.EXPECT().ListTimedOutSessions(gomock.Any(), s.now, int32(200)).Return(nil, nil)
	s.idem.EXPECT().DeleteExpired(gomock.Any(), s.now).Return(int64(0), nil)
	s.events.EXPECT().DeleteProcessedBefore(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	stats, err := s.sweep.SweepExpired(context.Background())
	s.Require().NoError(err)
	s.Equal(1, stats.ReservationsExpired)
}
