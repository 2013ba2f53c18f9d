package rooms

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salasys/RoomReservations/internal/domain"
)

// Repository persists rooms
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new rooms repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new room and returns it with its assigned key
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	query, args, err := squirrel.Insert("rooms").
		Columns("name", "capacity").
		Values(room.Name, room.Capacity).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - last insert id: %v", ErrExecQuery, err)
	}

	room.ID = id
	return room, nil
}

// GetByID fetches a room by key
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	query, args, err := squirrel.Select("id", "name", "capacity").
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&room.ID, &room.Name, &room.Capacity)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return &room, nil
}

// List returns every room in registration order (ascending key)
func (r *Repository) List(ctx context.Context) ([]*domain.Room, error) {
	query, args, err := squirrel.Select("id", "name", "capacity").
		From("rooms").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
