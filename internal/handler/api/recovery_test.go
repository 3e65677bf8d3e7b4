//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"storefront-payments/internal/domain/webhook"
	"storefront-payments/internal/handler/api"
	"storefront-payments/internal/handler/middleware"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
	"storefront-payments/internal/usecase/queries"
	commandsmock "storefront-payments/tests/mock/commands"
	queriesmock "storefront-payments/tests/mock/queries"
)

const operatorToken = "test-operator-token"

type RecoveryHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockProcessor *commandsmock.MockProcessorCommands
	mockQueries   *queriesmock.MockRecoveryQueries
	handler       *api.RecoveryHandler
}

func (s *RecoveryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockProcessor = commandsmock.NewMockProcessorCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRecoveryQueries(s.mockCtrl)
	s.handler = api.NewRecoveryHandler(s.mockProcessor, s.mockQueries)

	operator := middleware.NewOperatorMiddleware(config.RecoveryConfig{OperatorToken: operatorToken})
	group := s.router.Group("/recovery", operator.RequireOperator())
	group.GET("/dead-letters", s.handler.ListDeadLetters)
	group.GET("/emergency-orders", s.handler.ListEmergencyOrders)
	group.POST("/events/:id/replay", s.handler.ReplayEvent)
}

func (s *RecoveryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRecoveryHandlerSuite(t *testing.T) {
	suite.Run(t, new(RecoveryHandlerTestSuite))
}

func (s *RecoveryHandlerTestSuite) request(method, url, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// ================================================================================
// Operator auth
// ================================================================================

func (s *RecoveryHandlerTestSuite) TestRejectsMissingToken() {
	w := s.request(http.MethodGet, "/recovery/dead-letters", "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RecoveryHandlerTestSuite) TestRejectsWrongToken() {
	w := s.request(http.MethodGet, "/recovery/dead-letters", "not-the-token")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RecoveryHandlerTestSuite) TestRejectsMalformedAuthorizationHeader() {
	req := httptest.NewRequest(http.MethodGet, "/recovery/dead-letters", nil)
	req.Header.Set("Authorization", operatorToken) // missing Bearer prefix
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

// ================================================================================
// Dead letters
// ================================================================================

func (s *RecoveryHandlerTestSuite) TestListDeadLetters() {
	lastErr := "provider timeout"
	s.mockQueries.EXPECT().ListDeadLetters(gomock.Any(), 0).
		Return([]*queries.DeadLetterView{{
			ID:         uuid.New(),
			Provider:   "generic",
			Payload:    []byte(`{"event":"x"}`),
			RetryCount: 5,
			LastError:  &lastErr,
			ReceivedAt: time.Now(),
		}}, nil)

	w := s.request(http.MethodGet, "/recovery/dead-letters", operatorToken)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"dead_letters"`)
	s.Contains(w.Body.String(), "provider timeout")
}

func (s *RecoveryHandlerTestSuite) TestListDeadLettersForwardsLimit() {
	s.mockQueries.EXPECT().ListDeadLetters(gomock.Any(), 10).
		Return([]*queries.DeadLetterView{}, nil)

	w := s.request(http.MethodGet, "/recovery/dead-letters?limit=10", operatorToken)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RecoveryHandlerTestSuite) TestListEmergencyOrders() {
	txID := "TX-99"
	s.mockQueries.EXPECT().ListEmergencyOrders(gomock.Any(), 0).
		Return([]*queries.EmergencyOrderView{{
			ID:                   uuid.New(),
			OrderNumber:          "EMG-20260401-TX-99",
			GatewayTransactionID: &txID,
			TotalCents:           50000,
			Currency:             "PLN",
		}}, nil)

	w := s.request(http.MethodGet, "/recovery/emergency-orders", operatorToken)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "EMG-20260401-TX-99")
}

// ================================================================================
// Replay
// ================================================================================

func (s *RecoveryHandlerTestSuite) TestReplaySucceeds() {
	id := uuid.New()
	s.mockProcessor.EXPECT().ProcessOne(gomock.Any(), id).
		Return(webhook.ReasonConfirmed, nil)

	w := s.request(http.MethodPost, "/recovery/events/"+id.String()+"/replay", operatorToken)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"outcome":"confirmed"`)
}

func (s *RecoveryHandlerTestSuite) TestReplayInvalidID() {
	w := s.request(http.MethodPost, "/recovery/events/not-a-uuid/replay", operatorToken)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RecoveryHandlerTestSuite) TestReplayUnknownEvent() {
	id := uuid.New()
	s.mockProcessor.EXPECT().ProcessOne(gomock.Any(), id).
		Return("", errs.Mark(errs.New("no rows"), errs.ErrEventNotFound))

	w := s.request(http.MethodPost, "/recovery/events/"+id.String()+"/replay", operatorToken)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RecoveryHandlerTestSuite) TestReplayContendedEvent() {
	id := uuid.New()
	s.mockProcessor.EXPECT().ProcessOne(gomock.Any(), id).
		Return("", errs.Mark(errs.New("held elsewhere"), errs.ErrLockNotAcquired))

	w := s.request(http.MethodPost, "/recovery/events/"+id.String()+"/replay", operatorToken)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *RecoveryHandlerTestSuite) TestReplayDeadLettersAgain() {
	id := uuid.New()
	s.mockProcessor.EXPECT().ProcessOne(gomock.Any(), id).
		Return("", errs.Mark(errs.New("still broken"), errs.ErrManualIntervention))

	w := s.request(http.MethodPost, "/recovery/events/"+id.String()+"/replay", operatorToken)

	s.Equal(http.StatusConflict, w.Code)
	s.Contains(w.Body.String(), "dead-lettered again")
}
