package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the logging middleware stores the
// request id under.
const RequestIDKey = "request_id"

type Message struct {
	Message string `json:"message"`
}

// Response is the body of every error reply. RequestID repeats the
// X-Request-ID header so a pasted body can be matched to its log lines.
type Response struct {
	Status    int     `json:"-"`
	Error     Message `json:"error"`
	Detail    any     `json:"detail,omitempty"`
	RequestID string  `json:"requestId,omitempty"`
}

func New(c *gin.Context, status int, msg string, detail any) Response {
	return Response{
		Status:    status,
		Error:     Message{Message: msg},
		Detail:    detail,
		RequestID: c.GetString(RequestIDKey),
	}
}

func Internal(c *gin.Context) Response {
	return New(c, http.StatusInternalServerError, "Internal server error", nil)
}

// AbortWithError records err on the context for the logging middleware and
// replies with msg. err never reaches the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(c, status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
