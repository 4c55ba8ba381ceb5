package request

import (
	"strings"

	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/resource"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/commands"
)

type CreateFieldRequest struct {
	Name        string `json:"name" binding:"required" example:"Court A"`
	Location    string `json:"location" example:"North wing"`
	HourlyPrice string `json:"hourly_price" binding:"required" example:"50.00"`
	Status      string `json:"status,omitempty" example:"active"`
}

func (r CreateFieldRequest) ToCommand() (commands.CreateFieldRequest, error) {
	price, err := parsePrice(r.HourlyPrice)
	if err != nil {
		return commands.CreateFieldRequest{}, err
	}
	return commands.CreateFieldRequest{
		Name:        r.Name,
		Location:    r.Location,
		HourlyPrice: price,
		Status:      resource.Status(strings.TrimSpace(r.Status)),
	}, nil
}

// UpdateFieldRequest is a partial update; omitted members are left unchanged.
type UpdateFieldRequest struct {
	Name        *string `json:"name,omitempty" example:"Court B"`
	Location    *string `json:"location,omitempty"`
	HourlyPrice *string `json:"hourly_price,omitempty" example:"65.00"`
	Status      *string `json:"status,omitempty" example:"inactive"`
}

func (r UpdateFieldRequest) ToChanges() (resource.FieldChanges, error) {
	changes := resource.FieldChanges{Name: r.Name, Location: r.Location}
	if r.HourlyPrice != nil {
		price, err := parsePrice(*r.HourlyPrice)
		if err != nil {
			return resource.FieldChanges{}, err
		}
		changes.HourlyPrice = &price
	}
	if r.Status != nil {
		status := resource.Status(strings.TrimSpace(*r.Status))
		changes.Status = &status
	}
	return changes, nil
}

func parsePrice(s string) (money.Money, error) {
	price, err := money.Parse(strings.TrimSpace(s))
	if err != nil {
		return money.Money{}, errs.Wrap(errs.Mark(err, errs.ErrInvalidInput), "hourly_price must be a non-negative decimal")
	}
	return price, nil
}
