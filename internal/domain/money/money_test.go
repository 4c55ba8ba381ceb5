//go:build unit

package money_test

import (
	"testing"

	"field-reservation/internal/domain/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "75", want: "75.00"},
		{in: "1.005", want: "1.01"},
		{in: "1.004", want: "1.00"},
		{in: "24.9975", want: "25.00"},
		{in: "0", want: "0.00"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			m, err := money.FromDecimal(decimal.RequireFromString(c.in))
			require.NoError(t, err)
			assert.Equal(t, c.want, m.String())
		})
	}

	t.Run("negative", func(t *testing.T) {
		_, err := money.FromDecimal(decimal.RequireFromString("-0.01"))
		assert.ErrorIs(t, err, money.ErrNegativeAmount)
	})
}

func TestParse(t *testing.T) {
	m, err := money.Parse("12.34")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), m.Cents())
	assert.Equal(t, int64(1334), m.Add(money.MustParse("1.00")).Cents())

	_, err = money.Parse("twelve")
	assert.Error(t, err)

	_, err = money.FromCents(-1)
	assert.ErrorIs(t, err, money.ErrNegativeAmount)
}
