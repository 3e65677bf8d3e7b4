package webhook

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// IdempotencyKey collapses duplicate deliveries of the same gateway event.
// The fingerprint is the canonical transactionId|orderId|amount|state tuple;
// any redelivery of the same payment outcome hashes to the same key.
func IdempotencyKey(transactionID, orderID string, amountCents int64, state string) string {
	material := strings.Join([]string{
		transactionID,
		orderID,
		fmt.Sprintf("%d", amountCents),
		strings.ToUpper(state),
	}, "|")
	sum := sha256.Sum256([]byte(material))
	return hex.EncodeToString(sum[:])
}
