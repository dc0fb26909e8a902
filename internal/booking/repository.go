package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id string) error

	// ListByResourceAndDate returns the bookings stored under one auditorium and date,
	// ordered by start time, then creation time, then id.
	ListByResourceAndDate(ctx context.Context, resourceID string, date time.Time) ([]*Booking, error)

	// BookedDates returns the distinct dates in [from, to) holding at least one booking.
	BookedDates(ctx context.Context, resourceID string, from, to time.Time) ([]time.Time, error)

	// WithSlotLock runs fn while holding an exclusive lock on the auditorium's date.
	// Reads and writes made through the Repository passed to fn share one transaction.
	WithSlotLock(ctx context.Context, resourceID string, date time.Time, fn func(Repository) error) error
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgxRepository struct {
	pool *pgxpool.Pool // nil inside a transaction
	db   querier
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool, db: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var bookingColumns = []string{
	"b.id", "b.user_id", "u.username", "u.email", "b.resource_id", "r.name",
	"b.date", "b.start_time", "b.end_time", "b.duration_seconds", "b.total_cost",
	"b.status", "b.created_at", "b.updated_at",
}

func selectBookings(extra ...string) squirrel.SelectBuilder {
	return psql.Select(append(bookingColumns, extra...)...).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Join("public.resources r ON b.resource_id = r.id")
}

// scanBooking reads bookingColumns followed by any extra destinations.
func scanBooking(row pgx.Row, extra ...any) (*Booking, error) {
	var (
		b               Booking
		start, end      pgtype.Time
		durationSeconds int64
	)
	dest := append([]any{
		&b.ID, &b.UserID, &b.UserName, &b.UserEmail, &b.ResourceID, &b.ResourceName,
		&b.Date, &start, &end, &durationSeconds, &b.TotalCost,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	b.Date = DateOf(b.Date)
	b.StartTime = fromPgTime(start)
	b.EndTime = fromPgTime(end)
	b.Duration = time.Duration(durationSeconds) * time.Second
	return &b, nil
}

func toPgTime(t TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t) * 1_000_000, Valid: true}
}

func fromPgTime(t pgtype.Time) TimeOfDay {
	return TimeOfDay(t.Microseconds / 1_000_000)
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	query, args, err := psql.Insert("public.bookings").
		Columns("user_id", "resource_id", "date", "start_time", "end_time", "duration_seconds", "total_cost", "status").
		Values(b.UserID, b.ResourceID, b.Date, toPgTime(b.StartTime), toPgTime(b.EndTime),
			int64(b.Duration/time.Second), b.TotalCost, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	query := selectBookings("count(*) OVER() AS total_count")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.ResourceID != "" {
		query = query.Where(squirrel.Eq{"b.resource_id": filter.ResourceID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"b.date": DateOf(*filter.DateFrom)})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"b.date": DateOf(*filter.DateTo)})
	}

	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	if filter.SortBy != "" {
		query = query.OrderBy("b." + filter.SortBy + " " + orderDir)
	} else {
		query = query.OrderBy("b.date "+orderDir, "b.start_time "+orderDir)
	}

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int
	for rows.Next() {
		b, err := scanBooking(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate bookings failed: %w", err)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListByResourceAndDate(ctx context.Context, resourceID string, date time.Time) ([]*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.resource_id": resourceID, "b.date": DateOf(date)}).
		OrderBy("b.start_time", "b.created_at", "b.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build slot bookings query failed: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list slot bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *pgxRepository) BookedDates(ctx context.Context, resourceID string, from, to time.Time) ([]time.Time, error) {
	query, args, err := psql.Select("DISTINCT date").
		From("public.bookings").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.GtOrEq{"date": DateOf(from)}).
		Where(squirrel.Lt{"date": DateOf(to)}).
		OrderBy("date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build booked dates query failed: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list booked dates failed: %w", err)
	}
	dates, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("scan booked dates failed: %w", err)
	}
	for i := range dates {
		dates[i] = DateOf(dates[i])
	}
	return dates, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	query, args, err := psql.Update("public.bookings").
		Set("resource_id", b.ResourceID).
		Set("date", b.Date).
		Set("start_time", toPgTime(b.StartTime)).
		Set("end_time", toPgTime(b.EndTime)).
		Set("duration_seconds", int64(b.Duration/time.Second)).
		Set("total_cost", b.TotalCost).
		Set("status", b.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const slotLockQuery = `SELECT pg_advisory_xact_lock(hashtext('bookings'), hashtext($1::text || ':' || $2::text))`

func (r *pgxRepository) WithSlotLock(ctx context.Context, resourceID string, date time.Time, fn func(Repository) error) error {
	// Already inside a transaction.
	if r.pool == nil {
		return fn(r)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin slot transaction failed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, slotLockQuery, resourceID, FormatDate(date)); err != nil {
		return fmt.Errorf("acquire slot lock failed: %w", err)
	}

	if err := fn(&pgxRepository{db: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit slot transaction failed: %w", err)
	}
	return nil
}
