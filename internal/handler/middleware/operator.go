package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-payments/internal/handler/httperr"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
)

// OperatorMiddleware gates the manual recovery surface behind a shared
// bearer token. Replays and dead-letter inspection are operator actions,
// never gateway-facing.
type OperatorMiddleware struct {
	token string
}

func NewOperatorMiddleware(cfg config.RecoveryConfig) *OperatorMiddleware {
	return &OperatorMiddleware{token: cfg.OperatorToken}
}

func (m *OperatorMiddleware) RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		presented, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || presented == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("missing operator token"), "Unauthorized", nil)
			return
		}

		if subtle.ConstantTimeCompare([]byte(presented), []byte(m.token)) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("invalid operator token"), "Unauthorized", nil)
			return
		}

		c.Next()
	}
}
