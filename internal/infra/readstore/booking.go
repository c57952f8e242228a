package readstore

import (
	"context"
	"errors"
	"time"

	"booking-system/internal/domain/booking"
	"booking-system/internal/infra"
	"booking-system/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

var _ queries.BookingReadStore = (*BookingReadStore)(nil)

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := psql.Select(
		"b.id", "b.resource_id", "r.name", "b.user_id", "u.email",
		"b.booking_date", "b.start_min", "b.end_min", "b.status",
		"b.notes", "b.admin_notes", "r.price_per_hour_cents",
		"b.created_at", "b.updated_at",
	).
		From("bookings b").
		Join("resources r ON b.resource_id = r.id").
		Join("users u ON b.user_id = u.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking view query", err)
	}

	var (
		view                 queries.BookingView
		day                  time.Time
		startMin, endMin     int
		priceCents           *int64
		createdAt, updatedAt time.Time
	)
	err = s.pool.QueryRow(ctx, query, args...).Scan(
		&view.ID, &view.ResourceID, &view.ResourceName, &view.UserID, &view.UserEmail,
		&day, &startMin, &endMin, &view.Status,
		&view.Notes, &view.AdminNotes, &priceCents,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking view", err)
	}

	// Duration and price come from the domain slot, not a parallel formula.
	slot, err := slotFromRow(day, startMin, endMin)
	if err != nil {
		return nil, err
	}
	view.Date = slot.Date().String()
	view.StartTime = slot.Start().String()
	view.EndTime = slot.End().String()
	view.DurationHours = slot.DurationHours()
	view.TotalPrice = float64(booking.PriceCentsFor(slot, priceCents)) / 100.0
	view.CreatedAt = createdAt
	view.UpdatedAt = updatedAt
	return &view, nil
}

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	q := s.listQuery().
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.booking_date DESC", "b.start_min DESC")
	return s.queryList(ctx, q)
}

func (s *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingListItem, error) {
	q := s.listQuery().
		OrderBy("b.booking_date DESC", "b.start_min DESC")
	return s.queryList(ctx, q)
}

func (s *BookingReadStore) FindUpcoming(ctx context.Context, from booking.Date) ([]*queries.BookingListItem, error) {
	return s.queryList(ctx, s.upcomingQuery(from))
}

func (s *BookingReadStore) FindPast(ctx context.Context, before booking.Date) ([]*queries.BookingListItem, error) {
	return s.queryList(ctx, s.pastQuery(before))
}

func (s *BookingReadStore) FindUpcomingByUserID(ctx context.Context, userID uuid.UUID, from booking.Date) ([]*queries.BookingListItem, error) {
	q := s.upcomingQuery(from).Where(squirrel.Eq{"b.user_id": userID})
	return s.queryList(ctx, q)
}

func (s *BookingReadStore) FindPastByUserID(ctx context.Context, userID uuid.UUID, before booking.Date) ([]*queries.BookingListItem, error) {
	q := s.pastQuery(before).Where(squirrel.Eq{"b.user_id": userID})
	return s.queryList(ctx, q)
}

func (s *BookingReadStore) upcomingQuery(from booking.Date) squirrel.SelectBuilder {
	return s.listQuery().
		Where(squirrel.GtOrEq{"b.booking_date": from.Time()}).
		Where(squirrel.Eq{"b.status": activeStatuses()}).
		OrderBy("b.booking_date", "b.start_min")
}

func (s *BookingReadStore) pastQuery(before booking.Date) squirrel.SelectBuilder {
	return s.listQuery().
		Where(squirrel.Lt{"b.booking_date": before.Time()}).
		OrderBy("b.booking_date DESC", "b.start_min DESC")
}

func (s *BookingReadStore) listQuery() squirrel.SelectBuilder {
	return psql.Select(
		"b.id", "b.resource_id", "r.name", "b.user_id",
		"b.booking_date", "b.start_min", "b.end_min", "b.status", "b.created_at",
	).
		From("bookings b").
		Join("resources r ON b.resource_id = r.id")
}

func (s *BookingReadStore) queryList(ctx context.Context, q squirrel.SelectBuilder) ([]*queries.BookingListItem, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking list", err)
	}
	defer rows.Close()

	items := []*queries.BookingListItem{}
	for rows.Next() {
		var (
			item             queries.BookingListItem
			day              time.Time
			startMin, endMin int
		)
		if err := rows.Scan(
			&item.ID, &item.ResourceID, &item.ResourceName, &item.UserID,
			&day, &startMin, &endMin, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		slot, err := slotFromRow(day, startMin, endMin)
		if err != nil {
			return nil, err
		}
		item.Date = slot.Date().String()
		item.StartTime = slot.Start().String()
		item.EndTime = slot.End().String()
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking list", err)
	}
	return items, nil
}

func activeStatuses() []string {
	return []string{
		booking.StatusPending.String(),
		booking.StatusConfirmed.String(),
	}
}

// slotFromRow rebuilds the domain slot from stored columns. The CHECK
// constraints make a failure here a data corruption signal.
func slotFromRow(day time.Time, startMin, endMin int) (booking.TimeSlot, error) {
	start, err := booking.TimeOfDayFromMinutes(startMin)
	if err != nil {
		return booking.TimeSlot{}, infra.WrapRepoErr("invalid start time in bookings row", err)
	}
	end, err := booking.TimeOfDayFromMinutes(endMin)
	if err != nil {
		return booking.TimeSlot{}, infra.WrapRepoErr("invalid end time in bookings row", err)
	}
	slot, err := booking.NewTimeSlot(booking.DateOf(day), start, end)
	if err != nil {
		return booking.TimeSlot{}, infra.WrapRepoErr("invalid interval in bookings row", err)
	}
	return slot, nil
}
