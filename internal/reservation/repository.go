package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusbooking/room-booking-backend/internal/notify"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, error)

	// CreateAdmitted atomically re-evaluates the admission rule against the
	// latest overlapping reservations and inserts on accept. Concurrent
	// candidates for the same room are serialized so both cannot pass the
	// read-time check for one remaining spot.
	CreateAdmitted(ctx context.Context, c Candidate, capacity int) (*Reservation, error)

	// UpdateStatus transitions a reservation out of the reserved state.
	// Terminal reservations are left untouched.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// ExpireOverdue marks every reserved reservation whose check-in deadline
	// has passed as expired. Idempotent.
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const reservationColumns = "id, classroom_id, student_email, start_time, end_time, is_private, status, created_at, updated_at"

func scanReservation(row pgx.Row) (*Reservation, error) {
	var r Reservation
	err := row.Scan(
		&r.ID, &r.ClassroomID, &r.StudentEmail, &r.StartTime, &r.EndTime,
		&r.IsPrivate, &r.Status, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reservationColumns).
		From("public.reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	res, err := scanReservation(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, error) {
	query := listQuery(filter)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func listQuery(filter Filter) squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(reservationColumns).From("public.reservations")

	if filter.ClassroomID != "" {
		query = query.Where(squirrel.Eq{"classroom_id": filter.ClassroomID})
	}
	if filter.StudentEmail != "" {
		query = query.Where(squirrel.Eq{"student_email": filter.StudentEmail})
	}
	if len(filter.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": filter.Statuses})
	}
	if !filter.Day.IsZero() {
		query = query.
			Where(squirrel.GtOrEq{"start_time": filter.Day}).
			Where(squirrel.Lt{"start_time": filter.Day.AddDate(0, 0, 1)})
	}

	// Snapshots are always consumed in start order.
	return query.OrderBy("start_time ASC")
}

func collectReservations(rows pgx.Rows) ([]*Reservation, error) {
	var result []*Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		result = append(result, res)
	}
	return result, rows.Err()
}

func (r *pgxRepository) CreateAdmitted(ctx context.Context, c Candidate, capacity int) (*Reservation, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin admission tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize admission per room. Two candidates racing for the last spot
	// both passing the read-time check is exactly the hole this closes.
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", c.ClassroomID); err != nil {
		return nil, fmt.Errorf("acquire room lock failed: %w", err)
	}

	overlapping, err := overlappingInTx(ctx, tx, c)
	if err != nil {
		return nil, err
	}
	if err := Admit(c, capacity, overlapping); err != nil {
		return nil, err
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservations").
		Columns("classroom_id", "student_email", "start_time", "end_time", "is_private", "status").
		Values(c.ClassroomID, c.StudentEmail, c.StartTime, c.EndTime, c.IsPrivate, StatusReserved).
		Suffix("RETURNING " + reservationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create reservation query failed: %w", err)
	}

	res, err := scanReservation(tx.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// The schema-level exclusion constraint on private holds is the
			// backstop for the same rule; report it as a plain rejection.
			if pgErr.Code == pgerrcode.ExclusionViolation {
				return nil, ErrSlotUnavailable
			}
			if pgErr.Code == pgerrcode.ForeignKeyViolation {
				return nil, ErrClassroomNotFound
			}
		}
		return nil, fmt.Errorf("create reservation failed: %w", err)
	}

	if err := notifyChange(ctx, tx, res.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit admission tx failed: %w", err)
	}
	return res, nil
}

// overlappingInTx fetches the non-terminal reservations of the candidate's
// room intersecting its interval, inside the admission transaction.
func overlappingInTx(ctx context.Context, tx pgx.Tx, c Candidate) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reservationColumns).
		From("public.reservations").
		Where(squirrel.Eq{"classroom_id": c.ClassroomID}).
		Where(squirrel.Eq{"status": []Status{StatusReserved, StatusCheckedIn}}).
		Where(squirrel.Lt{"start_time": c.EndTime}).
		Where(squirrel.Gt{"end_time": c.StartTime}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build overlap query failed: %w", err)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch overlapping reservations failed: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": StatusReserved}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update reservation status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := r.pool.Exec(ctx, "SELECT pg_notify($1, $2)", notify.Channel, id); err != nil {
		return fmt.Errorf("notify reservation change failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	// Expiry is driven by the missed check-in deadline (start + grace), not
	// by the reservation's end time. A single UPDATE keeps the sweep
	// idempotent and free of partial mutation.
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("status", StatusExpired).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"status": StatusReserved}).
		Where(squirrel.Lt{"start_time": now.Add(-CheckInGrace)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build expire query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("expire overdue reservations failed: %w", err)
	}

	if ct.RowsAffected() > 0 {
		if _, err := r.pool.Exec(ctx, "SELECT pg_notify($1, $2)", notify.Channel, "expired"); err != nil {
			return ct.RowsAffected(), fmt.Errorf("notify reservation change failed: %w", err)
		}
	}
	return ct.RowsAffected(), nil
}

func notifyChange(ctx context.Context, tx pgx.Tx, id string) error {
	if _, err := tx.Exec(ctx, "SELECT pg_notify($1, $2)", notify.Channel, id); err != nil {
		return fmt.Errorf("notify reservation change failed: %w", err)
	}
	return nil
}
