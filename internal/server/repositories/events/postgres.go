// Package events provides the PostgreSQL-backed event repository.
//
// An event row lives in "events"; its ordered reference names live in
// "event_references". Create and Update touch both tables and must run inside
// a transaction (see dbx.WithTx).
package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/timeline/internal/common"
	"github.com/dmitrijs2005/timeline/internal/dbx"
	"github.com/dmitrijs2005/timeline/internal/models"
)

// PostgresRepository implements event storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `id, name, start_year, finish_year, color, original_color, latitude, longitude,
	meaning, bible_text, place, additional_info, map_link, event_type`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var (
		e        models.Event
		lat, lon sql.NullFloat64
		et       string
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Start, &e.Finish, &e.Color, &e.OriginalColor, &lat, &lon,
		&e.Meaning, &e.BibleText, &e.Place, &e.AdditionalInfo, &e.MapLink, &et); err != nil {
		return nil, err
	}
	if lat.Valid {
		e.Latitude = &lat.Float64
	}
	if lon.Valid {
		e.Longitude = &lon.Float64
	}
	e.EventType = models.EventType(et)
	return &e, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// Create inserts the event and its references. e.ID must already be set.
func (r *PostgresRepository) Create(ctx context.Context, e *models.Event) error {
	query := `
		INSERT INTO events (id, name, start_year, finish_year, color, original_color, latitude, longitude,
			meaning, bible_text, place, additional_info, map_link, event_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Name, e.Start, e.Finish, e.Color, e.OriginalColor, nullFloat(e.Latitude), nullFloat(e.Longitude),
		e.Meaning, e.BibleText, e.Place, e.AdditionalInfo, e.MapLink, string(e.EventType))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return r.insertReferences(ctx, e.ID, e.References)
}

// Get returns the event with the given id or common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Event, error) {
	return r.get(ctx, `SELECT `+selectColumns+` FROM events WHERE id = $1`, id)
}

// GetForUpdate is Get with a row lock; use it inside a transaction.
func (r *PostgresRepository) GetForUpdate(ctx context.Context, id string) (*models.Event, error) {
	return r.get(ctx, `SELECT `+selectColumns+` FROM events WHERE id = $1 FOR UPDATE`, id)
}

func (r *PostgresRepository) get(ctx context.Context, query, id string) (*models.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	refs, err := r.selectReferences(ctx, `SELECT event_id, name FROM event_references WHERE event_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	e.References = refs[id]
	return e, nil
}

// Update overwrites every stored field of e except both colors and replaces
// its references. Returns common.ErrorNotFound when no row has e.ID.
func (r *PostgresRepository) Update(ctx context.Context, e *models.Event) error {
	query := `
		UPDATE events SET
			name = $2, start_year = $3, finish_year = $4, latitude = $5, longitude = $6,
			meaning = $7, bible_text = $8, place = $9, additional_info = $10, map_link = $11,
			event_type = $12, updated_at = now()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		e.ID, e.Name, e.Start, e.Finish, nullFloat(e.Latitude), nullFloat(e.Longitude),
		e.Meaning, e.BibleText, e.Place, e.AdditionalInfo, e.MapLink, string(e.EventType))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM event_references WHERE event_id = $1`, e.ID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return r.insertReferences(ctx, e.ID, e.References)
}

// List returns every event ordered by start year, with references.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Event, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM events ORDER BY start_year, created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select events: %w", err)
	}
	defer rows.Close()

	var result []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs, err := r.selectReferences(ctx, `SELECT event_id, name FROM event_references ORDER BY event_id, position`)
	if err != nil {
		return nil, err
	}
	for _, e := range result {
		e.References = refs[e.ID]
	}
	return result, nil
}

func (r *PostgresRepository) insertReferences(ctx context.Context, eventID string, refs []string) error {
	for i, name := range refs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO event_references (event_id, position, name) VALUES ($1, $2, $3)`,
			eventID, i, name)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) selectReferences(ctx context.Context, query string, args ...any) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select references: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[id] = append(out[id], name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
