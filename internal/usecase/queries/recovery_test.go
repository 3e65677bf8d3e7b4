//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/domain/webhook"
	"storefront-payments/internal/usecase/queries"
	queriesmock "storefront-payments/tests/mock/queries"
)

type RecoveryQueriesTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	events *queriesmock.MockDeadLetterReadStore
	orders *queriesmock.MockEmergencyOrderReadStore
	q      queries.RecoveryQueries
}

func (s *RecoveryQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.events = queriesmock.NewMockDeadLetterReadStore(s.ctrl)
	s.orders = queriesmock.NewMockEmergencyOrderReadStore(s.ctrl)
	s.q = queries.NewRecoveryQueries(s.events, s.orders)
}

func (s *RecoveryQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRecoveryQueriesSuite(t *testing.T) {
	suite.Run(t, new(RecoveryQueriesTestSuite))
}

func (s *RecoveryQueriesTestSuite) TestDeadLetterProjection() {
	lastErr := "lock timeout"
	ev := &webhook.RawWebhookEvent{
		ID:             uuid.New(),
		Provider:       "payu",
		RawPayload:     []byte(`{"event":"x"}`),
		IdempotencyKey: "abc",
		CorrelationID:  "corr-1",
		RetryCount:     5,
		LastError:      &lastErr,
		ReceivedAt:     time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
	}
	s.events.EXPECT().ListDeadLetters(gomock.Any(), int32(50)).
		Return([]*webhook.RawWebhookEvent{ev}, nil)

	views, err := s.q.ListDeadLetters(context.Background(), 0)
	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal(ev.ID, views[0].ID)
	s.Equal("payu", views[0].Provider)
	s.JSONEq(`{"event":"x"}`, string(views[0].Payload))
	s.Equal(&lastErr, views[0].LastError)
}

func (s *RecoveryQueriesTestSuite) TestLimitClamping() {
	s.events.EXPECT().ListDeadLetters(gomock.Any(), int32(200)).Return(nil, nil)
	_, err := s.q.ListDeadLetters(context.Background(), 5000)
	s.Require().NoError(err)

	s.events.EXPECT().ListDeadLetters(gomock.Any(), int32(50)).Return(nil, nil)
	_, err = s.q.ListDeadLetters(context.Background(), -1)
	s.Require().NoError(err)
}

func (s *RecoveryQueriesTestSuite) TestEmergencyOrderProjection() {
	txID := "TX-99"
	o := &order.Order{
		ID:                   uuid.New(),
		OrderNumber:          "EMG-20260401-TX-99",
		GatewayTransactionID: &txID,
		TotalCents:           50000,
		Currency:             "PLN",
		CreatedAt:            time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
	}
	s.orders.EXPECT().ListEmergency(gomock.Any(), int32(25)).
		Return([]*order.Order{o}, nil)

	views, err := s.q.ListEmergencyOrders(context.Background(), 25)
	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal("EMG-20260401-TX-99", views[0].OrderNumber)
	s.Equal(int64(50000), views[0].TotalCents)
}
