// Package references stores standalone reference tags in PostgreSQL.
package references

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/timeline/internal/common"
	"github.com/dmitrijs2005/timeline/internal/dbx"
	"github.com/dmitrijs2005/timeline/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a tag. A tag with the same name yields common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, tag *models.ReferenceTag) error {
	query := `INSERT INTO reference_tags (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, tag.ID, tag.Name)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("reference tag %q: %w", tag.Name, common.ErrorAlreadyExists)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.ReferenceTag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM reference_tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to select reference tags: %w", err)
	}
	defer rows.Close()

	var result []*models.ReferenceTag
	for rows.Next() {
		var t models.ReferenceTag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		result = append(result, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}
