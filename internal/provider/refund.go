package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
)

type refundRequest struct {
	TransactionID string `json:"transactionId"`
	AmountCents   int64  `json:"amount"`
	Reference     string `json:"reference"`
}

// RefundClient asks the gateway to return a captured payment. Used when an
// order is cancelled after the money already arrived, typically because stock
// ran out between reservation and commit.
type RefundClient struct {
	http *resty.Client
	cfg  config.ProviderConfig
}

func NewRefundClient(cfg config.ProviderConfig) *RefundClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &RefundClient{http: client, cfg: cfg}
}

func (c *RefundClient) RequestRefund(ctx context.Context, orderID uuid.UUID, transactionID string, amountCents int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Merchant-ID", c.cfg.MerchantID).
		SetHeader("X-Checksum", merchantChecksum(c.cfg, transactionID)).
		SetBody(refundRequest{
			TransactionID: transactionID,
			AmountCents:   amountCents,
			Reference:     orderID.String(),
		}).
		SetPathParam("txID", transactionID).
		Post("/v1/payments/{txID}/refund")
	if err != nil {
		return errs.Mark(errs.Wrap(err, "refund request failed"), errs.ErrTransientInfra)
	}

	switch {
	case resp.StatusCode() == http.StatusOK, resp.StatusCode() == http.StatusAccepted:
		slog.Info("refund requested",
			"order_id", orderID,
			"transaction_id", transactionID,
			"amount_cents", amountCents)
		return nil
	case resp.StatusCode() == http.StatusConflict:
		// Already refunded: duplicate compensations collapse here
		slog.Info("refund already in progress at provider",
			"order_id", orderID, "transaction_id", transactionID)
		return nil
	case resp.StatusCode() >= 500:
		return errs.Mark(
			errs.New(fmt.Sprintf("provider returned %d for refund", resp.StatusCode())),
			errs.ErrTransientInfra,
		)
	default:
		return errs.Mark(
			errs.New(fmt.Sprintf("provider rejected refund with %d", resp.StatusCode())),
			errs.ErrValidation,
		)
	}
}
