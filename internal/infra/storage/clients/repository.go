package clients

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salasys/RoomReservations/internal/domain"
)

// Repository persists clients
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new clients repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new client and returns it with its assigned key
func (r *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	query, args, err := squirrel.Insert("clients").
		Columns("name", "surname").
		Values(client.Name, client.Surname).
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

	client.ID = id
	return client, nil
}

// GetByID fetches a client by key
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	query, args, err := squirrel.Select("id", "name", "surname").
		From("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var client domain.Client
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&client.ID, &client.Name, &client.Surname)
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	return &client, nil
}

// List returns every client ordered by surname then name
func (r *Repository) List(ctx context.Context) ([]*domain.Client, error) {
	query, args, err := squirrel.Select("id", "name", "surname").
		From("clients").
		OrderBy("surname ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Client, 0)
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(&client.ID, &client.Name, &client.Surname); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
