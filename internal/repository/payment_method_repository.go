package repository

import (
	"context"
	"fmt"

	"fjacquet/gastos-bot/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const activePaymentMethodsQuery = `
		SELECT id, name, type, icon, keywords, is_active
		FROM payment_methods
		WHERE is_active = true
		ORDER BY name
	`

// PostgresPaymentMethodRepository reads the payment-method catalog.
type PostgresPaymentMethodRepository struct {
	pgpool PgxPool
}

// NewPostgresPaymentMethodRepository creates a repository on pgpool.
func NewPostgresPaymentMethodRepository(pgpool PgxPool) *PostgresPaymentMethodRepository {
	return &PostgresPaymentMethodRepository{pgpool: pgpool}
}

type paymentMethodRow struct {
	ID       uuid.UUID `db:"id"`
	Name     string    `db:"name"`
	Type     *string   `db:"type"`
	Icon     *string   `db:"icon"`
	Keywords []string  `db:"keywords"`
	IsActive bool      `db:"is_active"`
}

func (row paymentMethodRow) toModel() models.PaymentMethod {
	pm := models.PaymentMethod{
		ID:       row.ID.String(),
		Name:     row.Name,
		Keywords: row.Keywords,
		Active:   row.IsActive,
	}
	if row.Type != nil {
		pm.Type = *row.Type
	}
	if row.Icon != nil {
		pm.Icon = *row.Icon
	}
	if pm.Keywords == nil {
		pm.Keywords = []string{}
	}
	return pm
}

// ActivePaymentMethods returns the active payment methods ordered by name.
func (r *PostgresPaymentMethodRepository) ActivePaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	rows, err := r.pgpool.Query(ctx, activePaymentMethodsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods: %w", err)
	}

	dbRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[paymentMethodRow])
	if err != nil {
		return nil, fmt.Errorf("failed to read payment methods: %w", err)
	}

	methods := make([]models.PaymentMethod, len(dbRows))
	for i, row := range dbRows {
		methods[i] = row.toModel()
	}
	return methods, nil
}
