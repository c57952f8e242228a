package response

import (
	"time"

	"booking-system/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ResourceResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ResourceType string    `json:"resource_type"`
	Capacity     int       `json:"capacity"`
	IsAvailable  bool      `json:"is_available"`
	Location     string    `json:"location"`
	PricePerHour *float64  `json:"price_per_hour,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromResourceView(v *queries.ResourceView) *ResourceResponse {
	var resp ResourceResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromResourceList(views []*queries.ResourceView) []*ResourceResponse {
	res := make([]*ResourceResponse, len(views))
	for i, v := range views {
		res[i] = FromResourceView(v)
	}
	return res
}
