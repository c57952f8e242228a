package request

import (
	"strings"

	"booking-system/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	StartTime  string    `json:"start_time" binding:"required"`
	EndTime    string    `json:"end_time" binding:"required"`
	Notes      *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToSlot() (booking.TimeSlot, error) {
	return parseSlot(r.Date, r.StartTime, r.EndTime)
}

func (r CreateBookingRequest) ToNote() booking.Note {
	return trimmedNote(r.Notes)
}

// UpdateBookingRequest reschedules a booking. Every field is optional;
// omitted slot fields keep their current values, so a notes-only or
// time-only update is a valid request.
type UpdateBookingRequest struct {
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ToSlot builds the effective slot, filling omitted fields from current.
// Values are merged before interval validation so that moving only the end
// time past the current start still fails as an invalid interval.
func (r UpdateBookingRequest) ToSlot(current booking.TimeSlot) (booking.TimeSlot, error) {
	day := current.Date()
	start := current.Start()
	end := current.End()

	var err error
	if r.Date != nil {
		if day, err = booking.ParseDate(*r.Date); err != nil {
			return booking.TimeSlot{}, err
		}
	}
	if r.StartTime != nil {
		if start, err = booking.ParseTimeOfDay(*r.StartTime); err != nil {
			return booking.TimeSlot{}, err
		}
	}
	if r.EndTime != nil {
		if end, err = booking.ParseTimeOfDay(*r.EndTime); err != nil {
			return booking.TimeSlot{}, err
		}
	}
	return booking.NewTimeSlot(day, start, end)
}

func (r UpdateBookingRequest) ToNote() booking.Note {
	return trimmedNote(r.Notes)
}

type UpdateBookingStatusRequest struct {
	Status     string  `json:"status" binding:"required"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

func (r UpdateBookingStatusRequest) ToStatus() (booking.Status, error) {
	return booking.ParseStatus(r.Status)
}

func (r UpdateBookingStatusRequest) ToAdminNote() booking.Note {
	return trimmedNote(r.AdminNotes)
}

func parseSlot(date, startTime, endTime string) (booking.TimeSlot, error) {
	day, err := booking.ParseDate(date)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	start, err := booking.ParseTimeOfDay(startTime)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	end, err := booking.ParseTimeOfDay(endTime)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	return booking.NewTimeSlot(day, start, end)
}

func trimmedNote(s *string) booking.Note {
	if s == nil {
		return booking.NewNote("")
	}
	return booking.NewNote(strings.TrimSpace(*s))
}
