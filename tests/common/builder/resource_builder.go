//go:build unit || e2e

package builder

import (
	"time"

	"booking-system/internal/domain/resource"
	reqdto "booking-system/internal/handler/dto/request"
	"booking-system/internal/usecase/commands"
	"booking-system/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID           uuid.UUID
	Name         string
	Description  string
	ResourceType resource.Type
	Capacity     int
	IsAvailable  bool
	Location     string
	PriceCents   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	now := time.Now()
	price := int64(2000)
	return &ResourceBuilder{
		ID:           uuid.New(),
		Name:         "Conference Room A",
		Description:  "Large meeting room with projector",
		ResourceType: resource.TypeRoom,
		Capacity:     12,
		IsAvailable:  true,
		Location:     "Building 1, Floor 3",
		PriceCents:   &price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ResourceBuilder) BuildDomain() (*resource.Resource, error) {
	return resource.NewResource(
		r.Name, r.Description, r.ResourceType,
		r.Capacity, r.IsAvailable, r.Location, r.PriceCents,
	)
}

func (r *ResourceBuilder) BuildSnapshot() *commands.ResourceSnapshot {
	return &commands.ResourceSnapshot{
		ID:                r.ID,
		Name:              r.Name,
		IsAvailable:       r.IsAvailable,
		PricePerHourCents: r.PriceCents,
	}
}

func (r *ResourceBuilder) BuildView() *queries.ResourceView {
	var price *float64
	if r.PriceCents != nil {
		p := float64(*r.PriceCents) / 100.0
		price = &p
	}
	return &queries.ResourceView{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		ResourceType: r.ResourceType.String(),
		Capacity:     r.Capacity,
		IsAvailable:  r.IsAvailable,
		Location:     r.Location,
		PricePerHour: price,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *ResourceBuilder) BuildCreateRequestDTO() reqdto.CreateResourceRequest {
	var price *float64
	if r.PriceCents != nil {
		p := float64(*r.PriceCents) / 100.0
		price = &p
	}
	return reqdto.CreateResourceRequest{
		Name:         r.Name,
		Description:  r.Description,
		ResourceType: r.ResourceType.String(),
		Capacity:     r.Capacity,
		Location:     r.Location,
		PricePerHour: price,
	}
}

// Fluent builder methods
func (r *ResourceBuilder) WithID(id uuid.UUID) *ResourceBuilder {
	r.ID = id
	return r
}

func (r *ResourceBuilder) WithName(name string) *ResourceBuilder {
	r.Name = name
	return r
}

func (r *ResourceBuilder) WithType(t resource.Type) *ResourceBuilder {
	r.ResourceType = t
	return r
}

func (r *ResourceBuilder) WithCapacity(capacity int) *ResourceBuilder {
	r.Capacity = capacity
	return r
}

func (r *ResourceBuilder) WithAvailability(available bool) *ResourceBuilder {
	r.IsAvailable = available
	return r
}

func (r *ResourceBuilder) WithPriceCents(cents *int64) *ResourceBuilder {
	r.PriceCents = cents
	return r
}
