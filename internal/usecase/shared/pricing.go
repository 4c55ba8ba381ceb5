package shared

import (
	"context"

	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

type PricingService struct {
	calc reservation.PriceCalculator
}

func NewPricingService(calc reservation.PriceCalculator) *PricingService {
	return &PricingService{calc: calc}
}

// Price quotes a booking of durationMinutes on fieldID. An unknown field is a
// NotFound error rather than a zero price.
func (s *PricingService) Price(ctx context.Context, reads CommandReads, fieldID uuid.UUID, durationMinutes int) (money.Money, error) {
	field, err := reads.FieldByID(ctx, fieldID)
	if err != nil {
		return money.Money{}, Persistence(err)
	}
	return s.calc.CalculatePrice(field, durationMinutes), nil
}
