package middleware

import (
	"log/slog"
	"net/http"

	"field-reservation/internal/handler/httperr"
	"field-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the envelope of the most recent public error when a
// handler recorded one without writing a response itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, unknownFailure())
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic", "panic", rec, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, unknownFailure())
			}
		}()
		c.Next()
	}
}

func unknownFailure() httperr.Response {
	return httperr.NewResponse(http.StatusInternalServerError, "Internal server error",
		&httperr.Detail{Kind: errs.KindUnknown.String()})
}
