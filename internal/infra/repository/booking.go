package repository

import (
	"context"
	"errors"
	"time"

	"booking-system/internal/domain/booking"
	"booking-system/internal/infra"
	"booking-system/internal/usecase/commands"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

var _ commands.BookingRepository = (*BookingRepository)(nil)

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	query, args, err := psql.Insert("bookings").
		Columns("id", "resource_id", "user_id", "booking_date", "start_min", "end_min", "status", "notes", "admin_notes").
		Values(
			b.ID(), b.ResourceID(), b.UserID(),
			b.Slot().Date().Time(), b.Slot().Start().Minutes(), b.Slot().End().Minutes(),
			b.Status().String(), b.Note().String(), b.AdminNote().String(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build insert booking query", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return classifyBookingErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query, args, err := psql.Select(
		"id", "resource_id", "user_id", "booking_date", "start_min", "end_min",
		"status", "notes", "admin_notes", "created_at", "updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build select booking query", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)
	return scanBooking(row)
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	query, args, err := psql.Update("bookings").
		Set("booking_date", b.Slot().Date().Time()).
		Set("start_min", b.Slot().Start().Minutes()).
		Set("end_min", b.Slot().End().Minutes()).
		Set("status", b.Status().String()).
		Set("notes", b.Note().String()).
		Set("admin_notes", b.AdminNote().String()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build update booking query", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return classifyBookingErr("failed to update booking", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// ActiveSlots returns the PENDING and CONFIRMED intervals holding the
// (resource, date) key, ordered by start time.
func (r *BookingRepository) ActiveSlots(ctx context.Context, resourceID uuid.UUID, date booking.Date) ([]booking.BookingSlot, error) {
	query, args, err := psql.Select("id", "booking_date", "start_min", "end_min").
		From("bookings").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.Eq{"booking_date": date.Time()}).
		Where(squirrel.Eq{"status": []string{
			booking.StatusPending.String(),
			booking.StatusConfirmed.String(),
		}}).
		OrderBy("start_min").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build active slots query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active slots", err)
	}
	defer rows.Close()

	var slots []booking.BookingSlot
	for rows.Next() {
		var (
			id               uuid.UUID
			day              time.Time
			startMin, endMin int
		)
		if err := rows.Scan(&id, &day, &startMin, &endMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active slot", err)
		}
		slot, err := slotFromColumns(day, startMin, endMin)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid slot columns", err)
		}
		slots = append(slots, booking.BookingSlot{BookingID: id, Slot: slot})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate active slots", err)
	}
	return slots, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, resourceID, userID uuid.UUID
		day                    time.Time
		startMin, endMin       int
		status, notes, admin   string
		createdAt, updatedAt   time.Time
	)
	if err := row.Scan(
		&id, &resourceID, &userID, &day, &startMin, &endMin,
		&status, &notes, &admin, &createdAt, &updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}

	slot, err := slotFromColumns(day, startMin, endMin)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slot columns", err)
	}

	return booking.ReconstructBooking(
		id, resourceID, userID,
		slot,
		booking.Status(status),
		booking.NewNote(notes), booking.NewNote(admin),
		createdAt, updatedAt,
	), nil
}

func slotFromColumns(day time.Time, startMin, endMin int) (booking.TimeSlot, error) {
	start, err := booking.TimeOfDayFromMinutes(startMin)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	end, err := booking.TimeOfDayFromMinutes(endMin)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	return booking.NewTimeSlot(booking.DateOf(day), start, end)
}

// classifyBookingErr maps the exclusion constraint on overlapping active
// slots to a conflict kind; the usecase turns that into a slot conflict.
func classifyBookingErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case pgerrcode.UniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgerrcode.ForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindNotFound)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
