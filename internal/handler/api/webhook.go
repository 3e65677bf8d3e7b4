package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-payments/internal/handler/middleware"
	"storefront-payments/internal/usecase/commands"
)

// Gateways abandon endpoints that reject bodies; 1 MiB is far beyond any
// legitimate payment notification.
const maxWebhookBodyBytes = 1 << 20

type WebhookHandler struct {
	ingest commands.IngestCommands
}

func NewWebhookHandler(ingest commands.IngestCommands) *WebhookHandler {
	return &WebhookHandler{ingest: ingest}
}

// @Summary Receive payment webhook
// @Description Accept a gateway delivery, stage it durably and acknowledge immediately
// @Tags webhooks
// @Accept json
// @Produce json
// @Param provider path string true "Payment provider name"
// @Param X-Webhook-Signature header string false "HMAC-SHA256 signature of the body"
// @Success 200 {object} map[string]bool
// @Router /webhooks/{provider} [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	provider := c.Param("provider")
	requestID := middleware.GetRequestID(c)

	correlationID := c.GetHeader("X-Correlation-ID")
	if correlationID == "" {
		correlationID = requestID
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		// Still acknowledge: a retried delivery with a readable body will land
		slog.Error("failed to read webhook body",
			"provider", provider, "request_id", requestID, "error", err)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	signature := c.GetHeader("X-Webhook-Signature")

	result, err := h.ingest.Ingest(c.Request.Context(), provider, body, signature, correlationID)
	if err != nil {
		// The gateway retries on non-200; staging failure is our problem,
		// not theirs, and their retry is exactly the recovery we want here.
		slog.Error("webhook staging failed",
			"provider", provider, "request_id", requestID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"received": false})
		return
	}

	slog.Info("webhook acknowledged",
		"provider", provider,
		"request_id", requestID,
		"event_id", result.EventID,
		"staged", result.Staged,
		"duplicate", result.Duplicate,
		"reason", result.Reason)

	c.JSON(http.StatusOK, gin.H{"received": true})
}
