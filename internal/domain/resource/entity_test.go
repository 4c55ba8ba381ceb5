//go:build unit

package resource_test

import (
	"strings"
	"testing"
	"time"

	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newField(t *testing.T, now time.Time) *resource.Field {
	t.Helper()
	f, err := resource.NewField("  Court A ", " North ", money.MustParse("40.00"), now)
	require.NoError(t, err)
	return f
}

func TestNewField(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	f := newField(t, now)
	assert.Equal(t, "Court A", f.Name())
	assert.Equal(t, "North", f.Location())
	assert.Equal(t, resource.StatusActive, f.Status())
	assert.True(t, f.IsBookable())

	_, err := resource.NewField("   ", "", money.MustParse("0"), now)
	assert.ErrorIs(t, err, resource.ErrEmptyFieldName)

	_, err = resource.NewField(strings.Repeat("x", resource.MaxFieldNameLength+1), "", money.MustParse("0"), now)
	assert.ErrorIs(t, err, resource.ErrFieldNameTooLong)
}

func TestFieldApply(t *testing.T) {
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	t.Run("only supplied members change", func(t *testing.T) {
		f := newField(t, created)
		err := f.Apply(resource.FieldChanges{HourlyPrice: ptr(money.MustParse("55.50"))}, later)
		require.NoError(t, err)

		assert.Equal(t, int64(5550), f.HourlyPrice().Cents())
		assert.Equal(t, "Court A", f.Name())
		assert.Equal(t, "North", f.Location())
		assert.Equal(t, resource.StatusActive, f.Status())
		assert.Equal(t, later, f.UpdatedAt())
		assert.Equal(t, created, f.CreatedAt())
	})

	t.Run("status and name", func(t *testing.T) {
		f := newField(t, created)
		err := f.Apply(resource.FieldChanges{
			Name:   ptr(" Court B "),
			Status: ptr(resource.StatusInactive),
		}, later)
		require.NoError(t, err)
		assert.Equal(t, "Court B", f.Name())
		assert.False(t, f.IsBookable())
	})

	cases := []struct {
		name    string
		changes resource.FieldChanges
		errIs   error
	}{
		{name: "empty", changes: resource.FieldChanges{}, errIs: resource.ErrNoChanges},
		{name: "blank name", changes: resource.FieldChanges{Name: ptr("  ")}, errIs: resource.ErrEmptyFieldName},
		{name: "long name", changes: resource.FieldChanges{Name: ptr(strings.Repeat("x", 256))}, errIs: resource.ErrFieldNameTooLong},
		{
			name:    "unknown status",
			changes: resource.FieldChanges{Status: ptr(resource.Status("archived")), Location: ptr("South")},
			errIs:   resource.ErrInvalidStatus,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newField(t, created)
			err := f.Apply(c.changes, later)
			assert.ErrorIs(t, err, c.errIs)
			assert.Equal(t, "North", f.Location(), "rejected update must not be partially applied")
			assert.Equal(t, created, f.UpdatedAt())
		})
	}
}

func TestFieldDeactivate(t *testing.T) {
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	f := newField(t, created)

	f.Deactivate(created.Add(time.Minute))
	assert.Equal(t, resource.StatusInactive, f.Status())
	assert.Equal(t, created.Add(time.Minute), f.UpdatedAt())

	f.Deactivate(created.Add(time.Hour))
	assert.Equal(t, created.Add(time.Minute), f.UpdatedAt(), "deactivating twice is a no-op")
}
