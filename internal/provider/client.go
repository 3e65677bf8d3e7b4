package provider

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
)

// PaymentStatus is the provider's answer to "what happened to this payment".
type PaymentStatus struct {
	TransactionID string
	OrderID       string
	State         string
	Outcome       Outcome
	AmountCents   int64
	Currency      string
}

//go:generate mockgen -source=client.go -destination=../../tests/mock/provider/client_mock.go -package=providermock

// StatusClient queries the gateway's status API. The reconciliation job and
// the replay surface never talk to the network except through this port.
type StatusClient interface {
	FetchStatus(ctx context.Context, providerName, merchantTxID string) (*PaymentStatus, error)
}

type statusResponse struct {
	TransactionID string `json:"transactionId"`
	OrderID       string `json:"orderId"`
	Status        string `json:"status"`
	AmountCents   int64  `json:"amount"`
	Currency      string `json:"currency"`
}

type restClient struct {
	http     *resty.Client
	registry *Registry
	cfg      config.ProviderConfig
}

func NewStatusClient(cfg config.ProviderConfig, registry *Registry) StatusClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &restClient{
		http:     client,
		registry: registry,
		cfg:      cfg,
	}
}

func (c *restClient) FetchStatus(ctx context.Context, providerName, merchantTxID string) (*PaymentStatus, error) {
	var body statusResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Merchant-ID", c.cfg.MerchantID).
		SetHeader("X-Checksum", merchantChecksum(c.cfg, merchantTxID)).
		SetPathParam("txID", merchantTxID).
		SetResult(&body).
		Get("/v1/payments/{txID}/status")
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "provider status call failed"), errs.ErrTransientInfra)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, errs.Mark(errs.New("transaction unknown to provider"), errs.ErrOrderNotFound)
	case resp.StatusCode() >= 500:
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("provider returned %d", resp.StatusCode())),
			errs.ErrTransientInfra,
		)
	case resp.StatusCode() != http.StatusOK:
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("provider rejected status request with %d", resp.StatusCode())),
			errs.ErrValidation,
		)
	}

	return &PaymentStatus{
		TransactionID: body.TransactionID,
		OrderID:       body.OrderID,
		State:         strings.ToUpper(body.Status),
		Outcome:       c.registry.Classify(providerName, body.Status),
		AmountCents:   body.AmountCents,
		Currency:      strings.ToUpper(body.Currency),
	}, nil
}

// merchantChecksum authenticates the merchant to the gateway API per its
// contract: sha256(merchantId|merchantTxId|secret).
func merchantChecksum(cfg config.ProviderConfig, merchantTxID string) string {
	material := strings.Join([]string{cfg.MerchantID, merchantTxID, cfg.MerchantSecret}, "|")
	sum := sha256.Sum256([]byte(material))
	return hex.EncodeToString(sum[:])
}
