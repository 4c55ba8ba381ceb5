//go:build unit

package middleware_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"field-reservation/internal/handler/httperr"
	"field-reservation/internal/handler/middleware"
	"field-reservation/internal/pkg/config"
	"field-reservation/internal/pkg/errs"
	"field-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddlewareRecordsErrorKind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logFile := filepath.Join(t.TempDir(), "requests.log")
	logger := middleware.NewLogger(config.LogConfig{
		Level:      "info",
		TimeZone:   "UTC",
		TimeFormat: "2006-01-02 15:04:05.000",
		File:       logFile,
		MaxSizeMB:  1,
	})

	router := gin.New()
	router.Use(logger.LoggingMiddleware())
	router.POST("/reservations/:id/cancel", func(c *gin.Context) {
		httperr.AbortWithKind(c, http.StatusConflict, errs.Wrap(errs.ErrAlreadyTerminal, "cancelled"),
			"Reservation already closed", errs.KindAlreadyTerminal)
	})

	rec := httptest.PerformRequest(t, router, http.MethodPost, "/reservations/abc/cancel", nil, "")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	out, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(out), "error_kind=AlreadyTerminal")
	assert.Contains(t, string(out), "resource_id=abc")
	assert.Contains(t, string(out), "status_code=409")
}
