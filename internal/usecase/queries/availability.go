package queries

import (
	"context"
	"sort"

	"booking-system/internal/domain/booking"
	"booking-system/internal/pkg/errs"

	"github.com/google/uuid"
)

type SlotView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityView struct {
	Resource    *ResourceView `json:"resource"`
	Date        string        `json:"date"`
	IsAvailable bool          `json:"is_available"`
	BusySlots   []SlotView    `json:"booked_slots"`
}

// ActiveSlotReader exposes the Pending/Confirmed intervals for one
// (resource, date) key. The same data feeds the conflict scan on the write
// side, so what this service reports as free is exactly what create would
// accept.
type ActiveSlotReader interface {
	ActiveSlots(ctx context.Context, resourceID uuid.UUID, date booking.Date) ([]booking.BookingSlot, error)
}

type AvailabilityQueries interface {
	GetDayAvailability(ctx context.Context, resourceID uuid.UUID, date string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	resources ResourceQueries
	slots     ActiveSlotReader
}

func NewAvailabilityQueries(resources ResourceQueries, slots ActiveSlotReader) AvailabilityQueries {
	return &availabilityQueriesImpl{
		resources: resources,
		slots:     slots,
	}
}

func (q *availabilityQueriesImpl) GetDayAvailability(ctx context.Context, resourceID uuid.UUID, date string) (*AvailabilityView, error) {
	day, err := booking.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDate)
	}

	resourceView, err := q.resources.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	active, err := q.slots.ActiveSlots(ctx, resourceID, day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].Slot.Start() < active[j].Slot.Start()
	})

	busy := make([]SlotView, len(active))
	for i, s := range active {
		busy[i] = SlotView{
			StartTime: s.Slot.Start().String(),
			EndTime:   s.Slot.End().String(),
		}
	}

	return &AvailabilityView{
		Resource:    resourceView,
		Date:        day.String(),
		IsAvailable: resourceView.IsAvailable,
		BusySlots:   busy,
	}, nil
}
