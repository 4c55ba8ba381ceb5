package resource

import (
	"errors"
	"strings"
	"time"

	"field-reservation/internal/domain/money"
	"field-reservation/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyFieldName   = errors.New("field name cannot be empty")
	ErrFieldNameTooLong = errors.New("field name is too long (max 255 characters)")
	ErrInvalidStatus    = errors.New("invalid field status")
	ErrNoChanges        = errors.New("no field changes supplied")
)

const (
	MaxFieldNameLength = 255
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Field is a bookable physical resource priced per hour.
type Field struct {
	id          uuid.UUID
	name        string
	location    string
	hourlyPrice money.Money
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewField(name, location string, hourlyPrice money.Money, now time.Time) (*Field, error) {
	if err := validateFieldName(name); err != nil {
		return nil, err
	}

	return &Field{
		id:          uuid.New(),
		name:        strings.TrimSpace(name),
		location:    strings.TrimSpace(location),
		hourlyPrice: hourlyPrice,
		status:      StatusActive,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructField(id uuid.UUID, name, location string, hourlyPrice money.Money, status Status, createdAt, updatedAt time.Time) (*Field, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Field{
		id:          id,
		name:        name,
		location:    location,
		hourlyPrice: hourlyPrice,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// FieldChanges is a partial update. Nil members keep the current value.
type FieldChanges struct {
	Name        *string
	Location    *string
	HourlyPrice *money.Money
	Status      *Status
}

func (c FieldChanges) IsEmpty() bool {
	return c.Name == nil && c.Location == nil && c.HourlyPrice == nil && c.Status == nil
}

// Apply validates every supplied change before touching the field, so a
// rejected update leaves it unchanged. Existing reservations keep the price
// they were booked at.
func (f *Field) Apply(changes FieldChanges, now time.Time) error {
	if changes.IsEmpty() {
		return ErrNoChanges
	}
	name := patch.Trimmed(changes.Name, f.name)
	if err := validateFieldName(name); err != nil {
		return err
	}
	status := patch.Coalesce(changes.Status, f.status)
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	f.name = name
	f.location = patch.Trimmed(changes.Location, f.location)
	f.hourlyPrice = patch.Coalesce(changes.HourlyPrice, f.hourlyPrice)
	f.status = status
	f.updatedAt = now
	return nil
}

// Deactivate withdraws the field from booking. Reservations already held stay valid.
func (f *Field) Deactivate(now time.Time) {
	if f.status == StatusInactive {
		return
	}
	f.status = StatusInactive
	f.updatedAt = now
}

func (f *Field) IsBookable() bool {
	return f.status == StatusActive
}

func validateFieldName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyFieldName
	}
	if len(name) > MaxFieldNameLength {
		return ErrFieldNameTooLong
	}
	return nil
}

func (f *Field) ID() uuid.UUID            { return f.id }
func (f *Field) Name() string             { return f.name }
func (f *Field) Location() string         { return f.location }
func (f *Field) HourlyPrice() money.Money { return f.hourlyPrice }
func (f *Field) Status() Status           { return f.status }
func (f *Field) CreatedAt() time.Time     { return f.createdAt }
func (f *Field) UpdatedAt() time.Time     { return f.updatedAt }
