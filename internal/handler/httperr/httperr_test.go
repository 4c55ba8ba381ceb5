//go:build unit

package httperr_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"field-reservation/internal/handler/httperr"
	"field-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithKind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/reservations", nil)

	cause := errs.Wrap(errs.ErrSlotConflict, "slot taken")
	httperr.AbortWithKind(c, http.StatusConflict, cause, "Slot already booked", errs.KindSlotConflict)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusConflict, rec.Code)

	last := c.Errors.Last()
	require.NotNil(t, last)
	assert.True(t, last.IsType(gin.ErrorTypePublic))
	assert.Equal(t, errs.KindSlotConflict, errs.KindOf(last.Err))

	resp, ok := last.Meta.(httperr.Response)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, resp.Status)
	require.NotNil(t, resp.Detail)
	assert.Equal(t, "SlotConflict", resp.Detail.Kind)
}

func TestAbortWithErrorCarriesNoKind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/reservations", nil)

	httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing token"), "Access token required")

	last := c.Errors.Last()
	require.NotNil(t, last)
	assert.True(t, last.IsType(gin.ErrorTypePublic))
	assert.NotContains(t, rec.Body.String(), "detail")
}
