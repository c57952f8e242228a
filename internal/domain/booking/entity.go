package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrIllegalTransition = errors.New("booking status does not allow this transition")
	ErrInvalidStatus     = errors.New("invalid booking status")
)

type Booking struct {
	id         uuid.UUID
	resourceID uuid.UUID
	userID     uuid.UUID
	slot       TimeSlot
	status     Status
	note       Note
	adminNote  Note
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking creates a booking in PENDING. Pending bookings hold their slot;
// they are reservations awaiting confirmation, not tentative requests.
func NewBooking(resourceID, userID uuid.UUID, slot TimeSlot, note Note) *Booking {
	return &Booking{
		id:         uuid.New(),
		resourceID: resourceID,
		userID:     userID,
		slot:       slot,
		status:     StatusPending,
		note:       note,
	}
}

func ReconstructBooking(
	id, resourceID, userID uuid.UUID,
	slot TimeSlot,
	status Status,
	note, adminNote Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		resourceID: resourceID,
		userID:     userID,
		slot:       slot,
		status:     status,
		note:       note,
		adminNote:  adminNote,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel transitions the booking to CANCELLED. Only PENDING and CONFIRMED
// bookings may be cancelled.
func (b *Booking) Cancel() error {
	if b.status.IsTerminal() {
		return ErrIllegalTransition
	}
	b.status = StatusCancelled
	return nil
}

// Reschedule moves the booking to a new slot. The conflict scan against
// other bookings is the caller's responsibility; the resource and owner
// never change.
func (b *Booking) Reschedule(slot TimeSlot) {
	b.slot = slot
}

func (b *Booking) SetNote(note Note) {
	b.note = note
}

// ForceStatus sets the status with no transition table. This is the
// administrative escape hatch: a privileged actor may jump between any two
// statuses, including out of terminal ones.
func (b *Booking) ForceStatus(status Status, adminNote Note) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	b.status = status
	if !adminNote.IsEmpty() {
		b.adminNote = adminNote
	}
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) DurationHours() float64 {
	return b.slot.DurationHours()
}

// TotalPriceCents derives the booking price from the resource's hourly
// rate. A resource with no rate yields zero. Recomputed on read, never
// stored.
func (b *Booking) TotalPriceCents(pricePerHourCents *int64) int64 {
	return PriceCentsFor(b.slot, pricePerHourCents)
}

// PriceCentsFor is the single pricing rule for a slot. Read models use it
// too, so views can never drift from the entity derivation.
func PriceCentsFor(slot TimeSlot, pricePerHourCents *int64) int64 {
	if pricePerHourCents == nil {
		return 0
	}
	return int64(slot.DurationHours() * float64(*pricePerHourCents))
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) ResourceID() uuid.UUID { return b.resourceID }
func (b *Booking) UserID() uuid.UUID     { return b.userID }
func (b *Booking) Slot() TimeSlot        { return b.slot }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) Note() Note            { return b.note }
func (b *Booking) AdminNote() Note       { return b.adminNote }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
