package middleware

import (
	"log/slog"
	"net/http"

	"order-time-checker/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the last public httperr.Response when the handler chain
// recorded one without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if len(c.Errors) == 0 {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Internal())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
			}
		}()
		c.Next()
	}
}
