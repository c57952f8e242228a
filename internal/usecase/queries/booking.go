package queries

import (
	"context"
	"time"

	"booking-system/internal/domain/booking"
	"booking-system/internal/infra"
	"booking-system/internal/pkg/clock"
	"booking-system/internal/pkg/errs"
	"booking-system/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID            uuid.UUID `json:"id"`
	ResourceID    uuid.UUID `json:"resource_id"`
	ResourceName  string    `json:"resource_name"`
	UserID        uuid.UUID `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	AdminNotes    string    `json:"admin_notes"`
	DurationHours float64   `json:"duration_hours"`
	TotalPrice    float64   `json:"total_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	UserID       uuid.UUID `json:"user_id"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	FindAll(ctx context.Context) ([]*BookingListItem, error)
	FindUpcoming(ctx context.Context, from booking.Date) ([]*BookingListItem, error)
	FindPast(ctx context.Context, before booking.Date) ([]*BookingListItem, error)
	FindUpcomingByUserID(ctx context.Context, userID uuid.UUID, from booking.Date) ([]*BookingListItem, error)
	FindPastByUserID(ctx context.Context, userID uuid.UUID, before booking.Date) ([]*BookingListItem, error)
}

type BookingQueries interface {
	// GetByID enforces the ownership precondition: only the owner or an
	// admin may read a booking.
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the ownership check; for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actor shared.Actor) ([]*BookingListItem, error)
	ListUpcoming(ctx context.Context, actor shared.Actor) ([]*BookingListItem, error)
	ListPast(ctx context.Context, actor shared.Actor) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, clock: clock}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessBookingOf(view.UserID) {
		return nil, errs.ErrUnauthorized
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// List returns the actor's own bookings; admins see everyone's.
func (q *bookingQueriesImpl) List(ctx context.Context, actor shared.Actor) ([]*BookingListItem, error) {
	if actor.IsAdmin() {
		return q.store.FindAll(ctx)
	}
	return q.store.FindByUserID(ctx, actor.UserID)
}

// ListUpcoming and ListPast scope the same way List does: members see
// their own bookings, admins see everyone's.
func (q *bookingQueriesImpl) ListUpcoming(ctx context.Context, actor shared.Actor) ([]*BookingListItem, error) {
	today := booking.DateOf(q.clock.Now())
	if actor.IsAdmin() {
		return q.store.FindUpcoming(ctx, today)
	}
	return q.store.FindUpcomingByUserID(ctx, actor.UserID, today)
}

func (q *bookingQueriesImpl) ListPast(ctx context.Context, actor shared.Actor) ([]*BookingListItem, error) {
	today := booking.DateOf(q.clock.Now())
	if actor.IsAdmin() {
		return q.store.FindPast(ctx, today)
	}
	return q.store.FindPastByUserID(ctx, actor.UserID, today)
}
