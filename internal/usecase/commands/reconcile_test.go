//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/pkg/clock"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
	"storefront-payments/internal/provider"
	"storefront-payments/internal/usecase/commands"
	commandsmock "storefront-payments/tests/mock/commands"
	providermock "storefront-payments/tests/mock/provider"
)

type ReconcileTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	orders    *commandsmock.MockOrderStore
	stocks    *commandsmock.MockStockStore
	finalizer *commandsmock.MockFinalizer
	client    *providermock.MockStatusClient
	locker    *commandsmock.MockLocker
	cfg       config.ReconcileConfig
	reconcile commands.ReconcileCommands

	now time.Time
}

func (s *ReconcileTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.orders = commandsmock.NewMockOrderStore(s.ctrl)
	s.stocks = commandsmock.NewMockStockStore(s.ctrl)
	s.finalizer = commandsmock.NewMockFinalizer(s.ctrl)
	s.client = providermock.NewMockStatusClient(s.ctrl)
	s.locker = commandsmock.NewMockLocker(s.ctrl)
	s.cfg = config.NewTestConfig().Reconcile
	s.now = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	s.reconcile = commands.NewReconcileUseCase(
		s.orders, s.stocks, s.finalizer, s.client, s.locker,
		s.cfg, clock.NewMockClock(s.now),
	)
}

func (s *ReconcileTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReconcileSuite(t *testing.T) {
	suite.Run(t, new(ReconcileTestSuite))
}

func (s *ReconcileTestSuite) draftOrder(txID string) *order.Order {
	o := &order.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-100",
		Status:      order.StatusDraft,
		CreatedAt:   s.now.Add(-10 * time.Minute),
	}
	if txID != "" {
		o.GatewayTransactionID = &txID
	}
	return o
}

func (s *ReconcileTestSuite) expectNoAbandoned() {
	s.orders.EXPECT().
		ListAbandoned(gomock.Any(), s.now.Add(-s.cfg.HardCeiling()), int32(s.cfg.MaxOrdersPerRun)).
		Return(nil, nil)
}

func (s *ReconcileTestSuite) expectCandidates(orders ...*order.Order) {
	s.orders.EXPECT().
		ListReconcilable(gomock.Any(),
			s.now.Add(-s.cfg.Lookback()),
			s.now.Add(-s.cfg.HardCeiling()),
			int32(s.cfg.MaxOrdersPerRun)).
		Return(orders, nil)
}

func (s *ReconcileTestSuite) expectLockPassthrough(orderID uuid.UUID) {
	s.locker.EXPECT().WithLock(gomock.Any(), "order:"+orderID.String(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func (s *ReconcileTestSuite) TestRecoversLostWebhook() {
	o := s.draftOrder("TX-7")

	s.expectNoAbandoned()
	s.expectCandidates(o)
	s.client.EXPECT().FetchStatus(gomock.Any(), s.cfg.ProviderName, "TX-7").
		Return(&provider.PaymentStatus{
			TransactionID: "TX-7",
			Outcome:       provider.OutcomeSuccess,
			AmountCents:   50000,
			Currency:      "PLN",
		}, nil)
	s.expectLockPassthrough(o.ID)
	s.finalizer.EXPECT().Finalize(gomock.Any(), o.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, info commands.PaymentInfo) (*commands.FinalizeResult, error) {
			s.Equal("TX-7", info.TransactionID)
			s.Require().NotNil(info.RecoveryMethod)
			s.Equal(order.RecoveryMethodReconciliation, *info.RecoveryMethod)
			return &commands.FinalizeResult{Outcome: commands.OutcomeConfirmed, OrderID: o.ID}, nil
		})

	stats, err := s.reconcile.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Equal(1, stats.Scanned)
	s.Equal(1, stats.Confirmed)
	s.Equal(0, stats.Errors)
}

func (s *ReconcileTestSuite) TestFallsBackToOrderNumberWithoutTransactionID() {
	o := s.draftOrder("")

	s.expectNoAbandoned()
	s.expectCandidates(o)
	s.client.EXPECT().FetchStatus(gomock.Any(), s.cfg.ProviderName, "ORD-100").
		Return(&provider.PaymentStatus{Outcome: provider.OutcomePending}, nil)
	s.expectLockPassthrough(o.ID)

	stats, err := s.reconcile.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Equal(1, stats.Skipped)
}

func (s *ReconcileTestSuite) TestCancelsFailedPayment() {
	o := s.draftOrder("TX-8")

	s.expectNoAbandoned()
	s.expectCandidates(o)
	s.client.EXPECT().FetchStatus(gomock.Any(), s.cfg.ProviderName, "TX-8").
		Return(&provider.PaymentStatus{TransactionID: "TX-8", Outcome: provider.OutcomeFailure}, nil)
	s.expectLockPassthrough(o.ID)
	s.finalizer.EXPECT().CancelAndRelease(gomock.Any(), o.ID, order.CancelReasonPaymentFailed).
		Return(&commands.FinalizeResult{Outcome: commands.OutcomeCancelled, OrderID: o.ID}, nil)

	stats, err := s.reconcile.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Equal(1, stats.Cancelled)
}

func (s *ReconcileTestSuite) TestSkipsPaymentUnknownToProvider() {
	o := s.draftOrder("TX-9")

	s.expectNoAbandoned()
	s.expectCandidates(o)
	s.client.EXPECT().FetchStatus(gomock.Any(), s.cfg.ProviderName, "TX-9").
		Return(nil, errs.ErrOrderNotFound)

	stats, err := s.reconcile.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Equal(1, stats.Skipped)
	s.Equal(0, stats.Errors)
}

func (s *ReconcileTestSuite) TestAbortsPassWhenCircuitOpen() {
	a := s.draftOrder("TX-10")
	b := s.draftOrder("TX-11")

	s.expectNoAbandoned()
	s.expectCandidates(a, b)
	s.client.EXPECT().FetchStatus(gomock.Any(), s.cfg.ProviderName, "TX-10").
		Return(nil, errs.ErrProviderUnavailable)

	stats, err := s.reconcile.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Equal(1, stats.Scanned)
	s.Equal(0, stats.Confirmed)
}

func (s *ReconcileTestSuite) TestForceExpiresAbandonedDrafts() {
	o := s.draftOrder("TX-12")

	s.orders.EXPECT().
		ListAbandoned(gomock.Any(), s.now.Add(-s.cfg.HardCeiling()), int32(s.cfg.MaxOrdersPerRun)).
		Return([]*order.Order{o}, nil)
	s.orders.EXPECT().ExpireIfDraft(gomock.Any(), o.ID, s.now).Return(true, nil)
	s.stocks.EXPECT().ReleaseActiveByOrder(gomock.Any(), o.ID).Return(2, nil)
	s.expectCandidates()

	stats, err := s.reconcile.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Equal(1, stats.ForceExpired)
}

func (s *ReconcileTestSuite) TestExpiryRaceLostToFinalizer() {
	o := s.draftOrder("TX-13")

	s.orders.EXPECT().
		ListAbandoned(gomock.Any(), s.now.Add(-s.cfg.HardCeiling()), int32(s.cfg.MaxOrdersPerRun)).
		Return([]*order.Order{o}, nil)
	s.orders.EXPECT().ExpireIfDraft(gomock.Any(), o.ID, s.now).Return(false, nil)
	s.expectCandidates()

	stats, err := s.reconcile.RunOnce(context.Background())
	s.Require().NoError(err)
	s.Equal(0, stats.ForceExpired)
}
