package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 200 characters)")
	ErrInvalidResourceType = errors.New("invalid resource type")
	ErrInvalidCapacity     = errors.New("capacity must be positive")
	ErrNegativePrice       = errors.New("price per hour cannot be negative")
)

const MaxResourceNameLength = 200

type Type string

const (
	TypeRoom      Type = "ROOM"
	TypeEquipment Type = "EQUIPMENT"
	TypeFacility  Type = "FACILITY"
	TypeService   Type = "SERVICE"
	TypeOther     Type = "OTHER"
)

func NewType(value string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(value)))
	switch t {
	case TypeRoom, TypeEquipment, TypeFacility, TypeService, TypeOther:
		return t, nil
	default:
		return "", ErrInvalidResourceType
	}
}

func (t Type) String() string { return string(t) }

// Resource is a bookable entity. The booking engine reads it; only
// administrative commands mutate it.
type Resource struct {
	id                uuid.UUID
	name              string
	description       string
	resourceType      Type
	capacity          int
	isAvailable       bool
	location          string
	pricePerHourCents *int64
	createdAt         time.Time
	updatedAt         time.Time
}

func NewResource(
	name, description string,
	resourceType Type,
	capacity int,
	isAvailable bool,
	location string,
	pricePerHourCents *int64,
) (*Resource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return nil, ErrResourceNameTooLong
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if pricePerHourCents != nil && *pricePerHourCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Resource{
		id:                uuid.New(),
		name:              name,
		description:       description,
		resourceType:      resourceType,
		capacity:          capacity,
		isAvailable:       isAvailable,
		location:          location,
		pricePerHourCents: pricePerHourCents,
	}, nil
}

func ReconstructResource(
	id uuid.UUID,
	name, description string,
	resourceType Type,
	capacity int,
	isAvailable bool,
	location string,
	pricePerHourCents *int64,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:                id,
		name:              name,
		description:       description,
		resourceType:      resourceType,
		capacity:          capacity,
		isAvailable:       isAvailable,
		location:          location,
		pricePerHourCents: pricePerHourCents,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// Update applies an administrative partial update. Nil fields are left
// untouched; supplied fields go through the same validation as NewResource.
func (r *Resource) Update(
	name, description *string,
	resourceType *Type,
	capacity *int,
	isAvailable *bool,
	location *string,
	pricePerHourCents *int64,
) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrEmptyResourceName
		}
		if len(trimmed) > MaxResourceNameLength {
			return ErrResourceNameTooLong
		}
		r.name = trimmed
	}
	if description != nil {
		r.description = *description
	}
	if resourceType != nil {
		r.resourceType = *resourceType
	}
	if capacity != nil {
		if *capacity < 1 {
			return ErrInvalidCapacity
		}
		r.capacity = *capacity
	}
	if isAvailable != nil {
		r.isAvailable = *isAvailable
	}
	if location != nil {
		r.location = *location
	}
	if pricePerHourCents != nil {
		if *pricePerHourCents < 0 {
			return ErrNegativePrice
		}
		r.pricePerHourCents = pricePerHourCents
	}
	return nil
}

func (r *Resource) ID() uuid.UUID             { return r.id }
func (r *Resource) Name() string              { return r.name }
func (r *Resource) Description() string       { return r.description }
func (r *Resource) ResourceType() Type        { return r.resourceType }
func (r *Resource) Capacity() int             { return r.capacity }
func (r *Resource) IsAvailable() bool         { return r.isAvailable }
func (r *Resource) Location() string          { return r.location }
func (r *Resource) PricePerHourCents() *int64 { return r.pricePerHourCents }
func (r *Resource) CreatedAt() time.Time      { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time      { return r.updatedAt }
