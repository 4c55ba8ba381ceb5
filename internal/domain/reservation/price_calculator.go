package reservation

import (
	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/resource"

	"github.com/shopspring/decimal"
)

type PriceCalculator interface {
	CalculatePrice(field *resource.Field, durationMinutes int) money.Money
}

// HourlyPriceCalculator prices a booking pro rata on the field's hourly price.
type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

var sixty = decimal.NewFromInt(60)

func (pc *HourlyPriceCalculator) CalculatePrice(field *resource.Field, durationMinutes int) money.Money {
	amount := field.HourlyPrice().Decimal().
		Mul(decimal.NewFromInt(int64(durationMinutes))).
		Div(sixty)
	m, err := money.FromDecimal(amount)
	if err != nil {
		// hourly price and duration are both non-negative
		panic(err)
	}
	return m
}
