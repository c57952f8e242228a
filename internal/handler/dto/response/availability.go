package response

import (
	"booking-system/internal/usecase/queries"
)

type BookedSlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityResponse struct {
	Resource    *ResourceResponse    `json:"resource"`
	Date        string               `json:"date"`
	IsAvailable bool                 `json:"is_available"`
	BookedSlots []BookedSlotResponse `json:"booked_slots"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	slots := make([]BookedSlotResponse, len(v.BusySlots))
	for i, s := range v.BusySlots {
		slots[i] = BookedSlotResponse{StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return &AvailabilityResponse{
		Resource:    FromResourceView(v.Resource),
		Date:        v.Date,
		IsAvailable: v.IsAvailable,
		BookedSlots: slots,
	}
}
