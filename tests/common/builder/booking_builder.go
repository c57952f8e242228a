//go:build unit || e2e

package builder

import (
	"time"

	"booking-system/internal/domain/booking"
	reqdto "booking-system/internal/handler/dto/request"
	"booking-system/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	ResourceName string
	UserID       uuid.UUID
	UserEmail    string
	Date         string
	StartTime    string
	EndTime      string
	Status       booking.Status
	Notes        string
	AdminNotes   string
	PriceCents   int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:           uuid.New(),
		ResourceID:   uuid.New(),
		ResourceName: "Conference Room A",
		UserID:       uuid.New(),
		UserEmail:    "member@example.com",
		Date:         "2030-06-15",
		StartTime:    "09:00",
		EndTime:      "10:00",
		Status:       booking.StatusPending,
		Notes:        "Team standup",
		PriceCents:   2000,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildSlot() (booking.TimeSlot, error) {
	date, err := booking.ParseDate(b.Date)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	start, err := booking.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	end, err := booking.ParseTimeOfDay(b.EndTime)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	return booking.NewTimeSlot(date, start, end)
}

func (b *BookingBuilder) MustBuildSlot() booking.TimeSlot {
	slot, err := b.BuildSlot()
	if err != nil {
		panic(err)
	}
	return slot
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	slot, err := b.BuildSlot()
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		b.ID, b.ResourceID, b.UserID,
		slot, b.Status,
		booking.NewNote(b.Notes), booking.NewNote(b.AdminNotes),
		b.CreatedAt, b.UpdatedAt,
	), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	notes := b.Notes
	return reqdto.CreateBookingRequest{
		ResourceID: b.ResourceID,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Notes:      &notes,
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookingRequest {
	date, start, end := b.Date, b.StartTime, b.EndTime
	return reqdto.UpdateBookingRequest{
		Date:      &date,
		StartTime: &start,
		EndTime:   &end,
	}
}

func (b *BookingBuilder) BuildStatusRequestDTO(status string) reqdto.UpdateBookingStatusRequest {
	notes := b.AdminNotes
	return reqdto.UpdateBookingStatusRequest{
		Status:     status,
		AdminNotes: &notes,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	slot := b.MustBuildSlot()
	hours := slot.DurationHours()
	return &queries.BookingView{
		ID:            b.ID,
		ResourceID:    b.ResourceID,
		ResourceName:  b.ResourceName,
		UserID:        b.UserID,
		UserEmail:     b.UserEmail,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        b.Status.String(),
		Notes:         b.Notes,
		AdminNotes:    b.AdminNotes,
		DurationHours: hours,
		TotalPrice:    hours * float64(b.PriceCents) / 100.0,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:           b.ID,
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		UserID:       b.UserID,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       b.Status.String(),
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSlotRecord() booking.BookingSlot {
	return booking.BookingSlot{
		BookingID: b.ID,
		Slot:      b.MustBuildSlot(),
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithResourceID(resourceID uuid.UUID) *BookingBuilder {
	b.ResourceID = resourceID
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTimes(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = notes
	return b
}
