package webhook

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"storefront-payments/internal/pkg/errs"
)

// Notification is the single canonical representation every delivery is
// collapsed into at the boundary. Gateways disagree about field names and
// nesting; nothing past this point sees their raw shapes.
type Notification struct {
	Event         string
	TransactionID string
	OrderID       string
	State         string
	AmountCents   int64
	Currency      string
	SessionID     string
}

type rawEnvelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// rawPayload accepts every field layout observed from the gateways.
type rawPayload struct {
	OrderID               string      `json:"orderId"`
	OrderIDSnake          string      `json:"order_id"`
	MerchantTransactionID string      `json:"merchantTransactionId"`
	TransactionID         string      `json:"transactionId"`
	PaymentID             string      `json:"paymentId"`
	State                 string      `json:"state"`
	Status                string      `json:"status"`
	Amount                json.Number `json:"amount"`
	Currency              string      `json:"currency"`
	SessionID             string      `json:"sessionId"`
	CheckoutSessionID     string      `json:"checkoutSessionId"`
}

// Normalize parses a raw delivery body into the canonical form.
// Failures here are ValidationErrors: the event is stored for audit and
// marked processed with reason invalid_payload, never retried.
func Normalize(body []byte) (*Notification, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var env rawEnvelope
	if err := dec.Decode(&env); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "malformed envelope"), errs.ErrInvalidPayload)
	}
	if env.Event == "" || len(env.Payload) == 0 {
		return nil, errs.Mark(errs.New("envelope missing event or payload"), errs.ErrInvalidPayload)
	}

	var p rawPayload
	if err := json.Unmarshal(env.Payload, &p); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "malformed payload"), errs.ErrInvalidPayload)
	}

	n := &Notification{
		Event:         env.Event,
		TransactionID: firstNonEmpty(p.TransactionID, p.PaymentID),
		OrderID:       firstNonEmpty(p.OrderID, p.OrderIDSnake, p.MerchantTransactionID),
		State:         strings.ToUpper(firstNonEmpty(p.State, p.Status)),
		Currency:      strings.ToUpper(p.Currency),
		SessionID:     firstNonEmpty(p.SessionID, p.CheckoutSessionID),
	}

	if n.TransactionID == "" && n.OrderID == "" {
		return nil, errs.Mark(errs.New("payload carries neither transaction nor order id"), errs.ErrInvalidPayload)
	}
	if n.State == "" {
		return nil, errs.Mark(errs.New("payload missing state"), errs.ErrInvalidPayload)
	}

	amount, err := parseAmountCents(p.Amount)
	if err != nil {
		return nil, err
	}
	n.AmountCents = amount

	return n, nil
}

// Amounts arrive either as minor units ("50000") or as a decimal major-unit
// string ("500.00"); both map to cents.
func parseAmountCents(num json.Number) (int64, error) {
	s := num.String()
	if s == "" {
		return 0, errs.Mark(errs.New("payload missing amount"), errs.ErrInvalidPayload)
	}

	if !strings.Contains(s, ".") {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < 0 {
			return 0, errs.Mark(errs.New("invalid amount "+s), errs.ErrInvalidPayload)
		}
		return v, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, errs.Mark(errs.New("invalid amount "+s), errs.ErrInvalidPayload)
	}
	return int64(math.Round(f * 100)), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
