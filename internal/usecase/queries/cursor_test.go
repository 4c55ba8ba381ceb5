//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	t.Run("round trip keeps microsecond precision", func(t *testing.T) {
		at := time.Date(2025, 6, 1, 8, 0, 0, 123456789, time.UTC)
		id := uuid.New()

		gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.True(t, gotAt.Equal(at.Truncate(time.Microsecond)))
	})

	invalid := map[string]string{
		"not base64":      "%%%",
		"wrong version":   base64.RawURLEncoding.EncodeToString([]byte("v0:1-" + uuid.NewString())),
		"missing id":      base64.RawURLEncoding.EncodeToString([]byte("v1:1717228800000000")),
		"bad timestamp":   base64.RawURLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		"bad uuid":        base64.RawURLEncoding.EncodeToString([]byte("v1:1717228800000000-nope")),
		"empty after tag": "",
	}
	for name, cursor := range invalid {
		t.Run(name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(cursor)
			assert.ErrorIs(t, err, queries.ErrInvalidCursor)
			assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-3))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
