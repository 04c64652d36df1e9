package classroom

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, room *Classroom) error
	GetByID(ctx context.Context, id string) (*Classroom, error)
	List(ctx context.Context, filter Filter) ([]*Classroom, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, room *Classroom) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.classrooms").
		Columns("name", "capacity", "building", "room_type").
		Values(room.Name, room.Capacity, room.Building, room.RoomType).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create classroom query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&room.ID, &room.CreatedAt); err != nil {
		return fmt.Errorf("create classroom failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Classroom, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "capacity", "building", "room_type", "created_at").
		From("public.classrooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get classroom query failed: %w", err)
	}

	var room Classroom
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&room.ID, &room.Name, &room.Capacity, &room.Building, &room.RoomType, &room.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get classroom failed: %w", err)
	}
	return &room, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Classroom, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("id", "name", "capacity", "building", "room_type", "created_at").
		From("public.classrooms")

	if filter.Building != "" {
		query = query.Where(squirrel.Eq{"building": filter.Building})
	}
	if filter.RoomType != "" {
		query = query.Where(squirrel.Eq{"room_type": filter.RoomType})
	}

	// The dashboard presents rooms ordered by name.
	query = query.OrderBy("name ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list classrooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list classrooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Classroom
	for rows.Next() {
		var room Classroom
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.Building, &room.RoomType, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan classroom failed: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}
