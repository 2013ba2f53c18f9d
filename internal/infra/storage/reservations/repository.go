package reservations

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/salasys/RoomReservations/internal/domain"
	"github.com/salasys/RoomReservations/internal/infra/storage/sqlite"
)

// sortableDate rebuilds the stored MM-DD-YYYY text as YYYY-MM-DD so that SQL
// comparisons and ordering follow calendar order across year boundaries
const sortableDate = "substr(date, 7, 4) || '-' || substr(date, 1, 2) || '-' || substr(date, 4, 2)"

// shiftOrder sorts shifts by their fixed enumeration order instead of
// alphabetically
const shiftOrder = "CASE r.shift WHEN 'Morning' THEN 0 WHEN 'Afternoon' THEN 1 ELSE 2 END"

// Repository persists reservations
type Repository struct {
	db DB
}

// NewRepository creates a new reservations repository
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new reservation and assigns its folio.
// The insert and the folio patch run in a single transaction, so no reader
// ever observes a reservation without a folio and a rejected insert leaves
// no row behind. A (room, date, shift) uniqueness violation is reported as
// ErrShiftTaken; an unknown client or room as ErrInvalidReference.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - begin: %v", ErrTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := squirrel.Insert("reservations").
		Columns("folio", "client_id", "room_id", "date", "shift", "event_name").
		Values("", res.ClientID, res.RoomID, domain.FormatDate(res.Date), res.Shift, res.EventName).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return nil, ErrShiftTaken
		}
		if sqlite.IsForeignKeyViolation(err) {
			return nil, ErrInvalidReference
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - last insert id: %v", ErrExecQuery, err)
	}
	folio := domain.FolioForID(id)

	query, args, err = squirrel.Update("reservations").
		Set("folio", folio).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build folio update: %v", ErrBuildQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - patch folio: %v", ErrExecQuery, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: Create - commit: %v", ErrTransaction, err)
	}

	res.ID = id
	res.Folio = folio
	return res, nil
}

// GetByID fetches a reservation by key
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query, args, err := squirrel.Select("id", "folio", "client_id", "room_id", "date", "shift", "event_name").
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// ReservedShifts returns, for the given date, every reserved shift keyed by
// room. Rooms with no reservation for the date are absent from the map.
func (r *Repository) ReservedShifts(ctx context.Context, date time.Time) (map[int64][]domain.Shift, error) {
	query, args, err := squirrel.Select("room_id", "shift").
		From("reservations").
		Where(squirrel.Eq{"date": domain.FormatDate(date)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReservedShifts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReservedShifts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reserved := make(map[int64][]domain.Shift)
	for rows.Next() {
		var roomID int64
		var shift domain.Shift
		if err := rows.Scan(&roomID, &shift); err != nil {
			return nil, fmt.Errorf("%w: ReservedShifts - scan row: %v", ErrScanRow, err)
		}
		reserved[roomID] = append(reserved[roomID], shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ReservedShifts - rows error: %v", ErrScanRow, err)
	}

	return reserved, nil
}

// DetailsByDate returns the report rows for one date, joined with room and
// client fields, ordered by shift enumeration order then room key
func (r *Repository) DetailsByDate(ctx context.Context, date time.Time) ([]*domain.ReservationDetail, error) {
	query, args, err := squirrel.Select(
		"r.folio",
		"r.event_name",
		"r.date",
		"r.shift",
		"ro.name",
		"ro.capacity",
		"c.surname || ', ' || c.name",
	).
		From("reservations r").
		Join("rooms ro ON r.room_id = ro.id").
		Join("clients c ON r.client_id = c.id").
		Where(squirrel.Eq{"r.date": domain.FormatDate(date)}).
		OrderBy(shiftOrder+" ASC", "ro.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DetailsByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DetailsByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	details := make([]*domain.ReservationDetail, 0)
	for rows.Next() {
		var d domain.ReservationDetail
		var dateText string
		err := rows.Scan(&d.Folio, &d.EventName, &dateText, &d.Shift, &d.RoomName, &d.RoomCapacity, &d.ClientName)
		if err != nil {
			return nil, fmt.Errorf("%w: DetailsByDate - scan row: %v", ErrScanRow, err)
		}
		if d.Date, err = domain.ParseDate(dateText); err != nil {
			return nil, fmt.Errorf("%w: DetailsByDate - parse stored date %q: %v", ErrScanRow, dateText, err)
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DetailsByDate - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}

// ByDateRange returns every reservation with from <= date <= to, ordered by
// date ascending then key
func (r *Repository) ByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	query, args, err := squirrel.Select("id", "folio", "client_id", "room_id", "date", "shift", "event_name").
		From("reservations").
		Where(squirrel.Expr(
			sortableDate+" BETWEEN ? AND ?",
			from.Format(domain.ISODateFormat),
			to.Format(domain.ISODateFormat),
		)).
		OrderBy(sortableDate+" ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ByDateRange - scan row: %v", ErrScanRow, err)
		}
		result = append(result, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ByDateRange - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateEventName replaces the event name of a reservation
func (r *Repository) UpdateEventName(ctx context.Context, id int64, name string) error {
	query, args, err := squirrel.Update("reservations").
		Set("event_name", name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateEventName - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateEventName - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateEventName - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var dateText string

	err := row.Scan(&res.ID, &res.Folio, &res.ClientID, &res.RoomID, &dateText, &res.Shift, &res.EventName)
	if err != nil {
		return nil, err
	}

	if res.Date, err = domain.ParseDate(dateText); err != nil {
		return nil, fmt.Errorf("parse stored date %q: %w", dateText, err)
	}

	return &res, nil
}
