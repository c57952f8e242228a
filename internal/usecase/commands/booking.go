package commands

import (
	"context"
	"errors"
	"fmt"

	"booking-system/internal/domain/booking"
	reqdto "booking-system/internal/handler/dto/request"
	"booking-system/internal/infra"
	"booking-system/internal/infra/notify"
	"booking-system/internal/pkg/clock"
	"booking-system/internal/pkg/errs"
	"booking-system/internal/pkg/keylock"
	"booking-system/internal/usecase/queries"
	"booking-system/internal/usecase/shared"

	"github.com/google/uuid"
)

// SlotConflictError carries the first conflicting slot so the transport
// layer can tell the caller which existing booking is in the way.
type SlotConflictError struct {
	Conflicting booking.TimeSlot
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("time slot conflicts with an existing booking (%s - %s)",
		e.Conflicting.Start(), e.Conflicting.End())
}

// ResourceSnapshot is the read model the booking commands need from a
// resource: enough to validate availability and derive the price.
type ResourceSnapshot struct {
	ID                uuid.UUID
	Name              string
	IsAvailable       bool
	PricePerHourCents *int64
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	ActiveSlots(ctx context.Context, resourceID uuid.UUID, date booking.Date) ([]booking.BookingSlot, error)
}

type ResourceReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest, actor shared.Actor) (*queries.BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID, actor shared.Actor) (*queries.BookingView, error)
	SetStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingStatusRequest, actor shared.Actor) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	bookingRepo    BookingRepository
	resourceReader ResourceReader
	bookingQueries queries.BookingQueries
	emitter        notify.Emitter
	locks          *keylock.KeyedMutex
	clock          clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	resourceReader ResourceReader,
	bookingQueries queries.BookingQueries,
	emitter notify.Emitter,
	locks *keylock.KeyedMutex,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:    bookingRepo,
		resourceReader: resourceReader,
		bookingQueries: bookingQueries,
		emitter:        emitter,
		locks:          locks,
		clock:          clock,
	}
}

func (u *bookingUseCaseImpl) Create(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	slot, err := req.ToSlot()
	if err != nil {
		return nil, markSlotError(err)
	}
	if err := u.validateNotPast(slot); err != nil {
		return nil, err
	}

	res, err := u.validateAndGetResource(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}

	unlock := u.locks.Lock(slotKey(res.ID, slot.Date()))
	defer unlock()

	if err := u.checkConflicts(ctx, res.ID, slot, uuid.Nil); err != nil {
		return nil, err
	}

	entity := booking.NewBooking(res.ID, userID, slot, req.ToNote())
	if err := u.bookingRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrSlotConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := u.bookingQueries.GetByIDSystem(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	u.emitter.EmitBookingCreated(notify.BookingCreated{
		BookingID:    view.ID,
		ResourceName: view.ResourceName,
		UserEmail:    view.UserEmail,
		Date:         view.Date,
		StartTime:    view.StartTime,
		EndTime:      view.EndTime,
	})
	return view, nil
}

func (u *bookingUseCaseImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	req reqdto.UpdateBookingRequest,
	actor shared.Actor,
) (*queries.BookingView, error) {
	entity, err := u.findOwnedBooking(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	// Omitted slot fields fall back to the booking's current values.
	slot, err := req.ToSlot(entity.Slot())
	if err != nil {
		return nil, markSlotError(err)
	}
	if err := u.validateNotPast(slot); err != nil {
		return nil, err
	}

	unlock := u.locks.Lock(slotKey(entity.ResourceID(), slot.Date()))
	defer unlock()

	// The booking being moved must not collide with itself.
	if err := u.checkConflicts(ctx, entity.ResourceID(), slot, entity.ID()); err != nil {
		return nil, err
	}

	entity.Reschedule(slot)
	if req.Notes != nil {
		entity.SetNote(req.ToNote())
	}
	if err := u.bookingRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrSlotConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.bookingQueries.GetByIDSystem(ctx, entity.ID())
}

func (u *bookingUseCaseImpl) Cancel(
	ctx context.Context,
	id uuid.UUID,
	actor shared.Actor,
) (*queries.BookingView, error) {
	entity, err := u.findOwnedBooking(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if err := entity.Cancel(); err != nil {
		return nil, errs.Mark(err, errs.ErrIllegalTransition)
	}
	if err := u.bookingRepo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := u.bookingQueries.GetByIDSystem(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	u.emitter.EmitBookingCancelled(notify.BookingCancelled{
		BookingID:    view.ID,
		ResourceName: view.ResourceName,
		UserEmail:    view.UserEmail,
		Date:         view.Date,
		StartTime:    view.StartTime,
	})
	return view, nil
}

// SetStatus is the administrative escape hatch: any valid status may be
// assigned regardless of the current one, with no conflict re-check.
func (u *bookingUseCaseImpl) SetStatus(
	ctx context.Context,
	id uuid.UUID,
	req reqdto.UpdateBookingStatusRequest,
	actor shared.Actor,
) (*queries.BookingView, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrUnauthorized
	}

	status, err := req.ToStatus()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStatus)
	}

	entity, err := u.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.ForceStatus(status, req.ToAdminNote()); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStatus)
	}
	if err := u.bookingRepo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.bookingQueries.GetByIDSystem(ctx, entity.ID())
}

func (u *bookingUseCaseImpl) validateNotPast(slot booking.TimeSlot) error {
	today := booking.DateOf(u.clock.Now())
	if slot.Date().Before(today) {
		return errs.ErrPastDate
	}
	return nil
}

func (u *bookingUseCaseImpl) validateAndGetResource(
	ctx context.Context,
	resourceID uuid.UUID,
) (*ResourceSnapshot, error) {
	res, err := u.resourceReader.FindByID(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrResourceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !res.IsAvailable {
		return nil, errs.ErrResourceUnavailable
	}
	return res, nil
}

// checkConflicts scans the active slots for the (resource, date) key and
// rejects the candidate if any overlap remains after excluding excludeID.
func (u *bookingUseCaseImpl) checkConflicts(
	ctx context.Context,
	resourceID uuid.UUID,
	slot booking.TimeSlot,
	excludeID uuid.UUID,
) error {
	active, err := u.bookingRepo.ActiveSlots(ctx, resourceID, slot.Date())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if conflict := booking.FindConflict(slot, active, excludeID); conflict != nil {
		return errs.Mark(&SlotConflictError{Conflicting: conflict.Slot}, errs.ErrSlotConflict)
	}
	return nil
}

func (u *bookingUseCaseImpl) findBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	entity, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (u *bookingUseCaseImpl) findOwnedBooking(
	ctx context.Context,
	id uuid.UUID,
	actor shared.Actor,
) (*booking.Booking, error) {
	entity, err := u.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessBookingOf(entity.UserID()) {
		return nil, errs.ErrUnauthorized
	}
	return entity, nil
}

func markSlotError(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidInterval):
		return errs.Mark(err, errs.ErrInvalidInterval)
	case errors.Is(err, booking.ErrInvalidDate):
		return errs.Mark(err, errs.ErrInvalidDate)
	default:
		return errs.Mark(err, errs.ErrInvalidInterval)
	}
}

func slotKey(resourceID uuid.UUID, date booking.Date) string {
	return resourceID.String() + "|" + date.String()
}
