//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"storefront-payments/internal/handler/api"
	"storefront-payments/internal/usecase/commands"
	commandsmock "storefront-payments/tests/mock/commands"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockIngest *commandsmock.MockIngestCommands
	handler    *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockIngest = commandsmock.NewMockIngestCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockIngest)

	s.router.POST("/webhooks/:provider", s.handler.Receive)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) post(body, signature, correlationID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/generic", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Webhook-Signature", signature)
	}
	if correlationID != "" {
		req.Header.Set("X-Correlation-ID", correlationID)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *WebhookHandlerTestSuite) TestAcknowledgesStagedDelivery() {
	s.mockIngest.EXPECT().
		Ingest(gomock.Any(), "generic", []byte(`{"event":"x"}`), "sha256=abc", "corr-1").
		Return(&commands.IngestResult{EventID: uuid.New(), Staged: true}, nil)

	w := s.post(`{"event":"x"}`, "sha256=abc", "corr-1")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"received":true`)
}

func (s *WebhookHandlerTestSuite) TestAcknowledgesDuplicateDelivery() {
	s.mockIngest.EXPECT().
		Ingest(gomock.Any(), "generic", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&commands.IngestResult{EventID: uuid.New(), Duplicate: true, Reason: "duplicate_delivery"}, nil)

	w := s.post(`{"event":"x"}`, "sha256=abc", "")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"received":true`)
}

func (s *WebhookHandlerTestSuite) TestAcknowledgesInvalidSignature() {
	// Business rejection is still an HTTP 200; the delivery is quarantined
	s.mockIngest.EXPECT().
		Ingest(gomock.Any(), "generic", gomock.Any(), "sha256=bogus", gomock.Any()).
		Return(&commands.IngestResult{EventID: uuid.New(), Reason: "invalid_signature"}, nil)

	w := s.post(`{"event":"x"}`, "sha256=bogus", "")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"received":true`)
}

func (s *WebhookHandlerTestSuite) TestStagingFailureAsksGatewayToRetry() {
	s.mockIngest.EXPECT().
		Ingest(gomock.Any(), "generic", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection pool exhausted"))

	w := s.post(`{"event":"x"}`, "sha256=abc", "")

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Contains(w.Body.String(), `"received":false`)
}

func (s *WebhookHandlerTestSuite) TestForwardsCorrelationID() {
	s.mockIngest.EXPECT().
		Ingest(gomock.Any(), "generic", gomock.Any(), gomock.Any(), "corr-42").
		Return(&commands.IngestResult{EventID: uuid.New(), Staged: true}, nil)

	w := s.post(`{"event":"x"}`, "", "corr-42")

	s.Equal(http.StatusOK, w.Code)
}
