package request

type CreateResourceRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	ResourceType string   `json:"resource_type" binding:"required"`
	Capacity     int      `json:"capacity" binding:"required,min=1"`
	Location     string   `json:"location"`
	PricePerHour *float64 `json:"price_per_hour,omitempty"`
}

type UpdateResourceRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	ResourceType *string  `json:"resource_type,omitempty"`
	Capacity     *int     `json:"capacity,omitempty"`
	IsAvailable  *bool    `json:"is_available,omitempty"`
	Location     *string  `json:"location,omitempty"`
	PricePerHour *float64 `json:"price_per_hour,omitempty"`
}
