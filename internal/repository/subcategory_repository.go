package repository

import (
	"context"
	"errors"
	"fmt"

	"fjacquet/gastos-bot/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const findSubcategoryBySubstringQuery = `
		SELECT id, name
		FROM subcategories
		WHERE EXISTS (
			SELECT 1 FROM unnest(keywords) AS k
			WHERE k <> ''
			AND $1 ILIKE '%' || replace(replace(replace(k, '\', '\\'), '%', '\%'), '_', '\_') || '%'
		)
		ORDER BY name
		LIMIT 1
	`

const findSubcategoryByNameQuery = `
		SELECT id, name
		FROM subcategories
		WHERE name ILIKE $1
		LIMIT 1
	`

// PostgresSubcategoryRepository looks up subcategories and their keyword
// lists.
type PostgresSubcategoryRepository struct {
	pgpool PgxPool
}

// NewPostgresSubcategoryRepository creates a repository on pgpool.
func NewPostgresSubcategoryRepository(pgpool PgxPool) *PostgresSubcategoryRepository {
	return &PostgresSubcategoryRepository{pgpool: pgpool}
}

type subcategoryRow struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

// FindBySubstringMatch returns the first subcategory, by name, owning a
// keyword contained case-insensitively in description. Keywords match
// literally: '%' and '_' in a stored keyword are not wildcards. It returns
// nil, nil when nothing matches.
func (r *PostgresSubcategoryRepository) FindBySubstringMatch(ctx context.Context, description string) (*models.Subcategory, error) {
	rows, err := r.pgpool.Query(ctx, findSubcategoryBySubstringQuery, description)
	if err != nil {
		return nil, fmt.Errorf("failed to query subcategories: %w", err)
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[subcategoryRow])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read subcategory: %w", err)
	}

	return &models.Subcategory{ID: row.ID.String(), Name: row.Name}, nil
}

// FindByName returns the subcategory named name, ignoring case, or nil.
func (r *PostgresSubcategoryRepository) FindByName(ctx context.Context, name string) (*models.Subcategory, error) {
	var row subcategoryRow
	err := r.pgpool.QueryRow(ctx, findSubcategoryByNameQuery, escapeLike(name)).Scan(&row.ID, &row.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find subcategory %q: %w", name, err)
	}
	return &models.Subcategory{ID: row.ID.String(), Name: row.Name}, nil
}
