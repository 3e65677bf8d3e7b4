package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope every endpoint of this service returns.
// Gateways never see it (webhook responses are plain received flags); it
// serves the operator recovery surface.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the public envelope and records the underlying error
// on the context so the logging middleware can emit it. msg is what the
// caller sees; err is what the logs see.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
