package commands

import (
	"context"
	"log/slog"

	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/resource"
	"field-reservation/internal/pkg/clock"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateFieldRequest struct {
	Name        string
	Location    string
	HourlyPrice money.Money
	// Status defaults to active when empty.
	Status resource.Status
}

// FieldCommands manages the bookable catalogue. Every operation is admin-only.
type FieldCommands interface {
	Create(ctx context.Context, req CreateFieldRequest, actor shared.Actor) (*resource.Field, error)
	Update(ctx context.Context, fieldID uuid.UUID, changes resource.FieldChanges, actor shared.Actor) (*resource.Field, error)
	Deactivate(ctx context.Context, fieldID uuid.UUID, actor shared.Actor) (*resource.Field, error)
}

type fieldUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFieldUseCase(uow shared.UnitOfWork, clk clock.Clock) FieldCommands {
	return &fieldUseCaseImpl{uow: uow, clock: clk}
}

func (uc *fieldUseCaseImpl) Create(ctx context.Context, req CreateFieldRequest, actor shared.Actor) (*resource.Field, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	field, err := resource.NewField(req.Name, req.Location, req.HourlyPrice, now)
	if err != nil {
		return nil, markDomainErr(err)
	}
	if req.Status != "" && req.Status != field.Status() {
		if err := field.Apply(resource.FieldChanges{Status: &req.Status}, now); err != nil {
			return nil, markDomainErr(err)
		}
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Fields().Create(ctx, tx.DB(), field)
		return shared.Persistence(err)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "field created", "field_id", field.ID(), "status", field.Status())
	return field, nil
}

// Update leaves existing reservations untouched, including the price they were booked at.
func (uc *fieldUseCaseImpl) Update(ctx context.Context, fieldID uuid.UUID, changes resource.FieldChanges, actor shared.Actor) (*resource.Field, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	return uc.mutate(ctx, fieldID, func(field *resource.Field) error {
		return field.Apply(changes, uc.clock.Now())
	})
}

// Deactivate is a soft delete; reservation history keeps referencing the field.
func (uc *fieldUseCaseImpl) Deactivate(ctx context.Context, fieldID uuid.UUID, actor shared.Actor) (*resource.Field, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	field, err := uc.mutate(ctx, fieldID, func(field *resource.Field) error {
		field.Deactivate(uc.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "field deactivated", "field_id", fieldID)
	return field, nil
}

func (uc *fieldUseCaseImpl) mutate(ctx context.Context, fieldID uuid.UUID, change func(*resource.Field) error) (*resource.Field, error) {
	var updated *resource.Field
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated = nil
		field, err := tx.Reads().FieldByID(ctx, fieldID)
		if err != nil {
			return shared.Persistence(err)
		}
		if err := change(field); err != nil {
			return markDomainErr(err)
		}
		if err := tx.Fields().Update(ctx, tx.DB(), field); err != nil {
			return shared.Persistence(err)
		}
		updated = field
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func requireAdmin(actor shared.Actor) error {
	if !actor.IsAdmin() {
		return errs.Wrap(errs.ErrForbidden, "field management requires the admin role")
	}
	return nil
}
