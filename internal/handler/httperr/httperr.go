package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgValidationFailed = "Validation failed"
	MsgInternal         = "Internal server error"
)

// Response is the error body: {"error":{"message":...},"detail":[...]}.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func New(status int, msg string, detail any) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	return resp
}

func Internal() Response {
	return New(http.StatusInternalServerError, MsgInternal, nil)
}

// AbortWithError records err on the context for the logging middleware and
// writes the response. err itself never reaches the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortValidation answers 400 with one message per failed rule.
func AbortValidation(c *gin.Context, err error, messages []string) {
	AbortWithError(c, http.StatusBadRequest, err, MsgValidationFailed, messages)
}

func AbortInternal(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, err, MsgInternal, nil)
}
