package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studiopay/studio-pay-api/internal/models"
)

// PeriodoRepository handles persistence for payroll periods.
type PeriodoRepository struct {
	db *sqlx.DB
}

// NewPeriodoRepository instantiates a period repository.
func NewPeriodoRepository(db *sqlx.DB) *PeriodoRepository {
	return &PeriodoRepository{db: db}
}

// List returns every period, newest start date first.
func (r *PeriodoRepository) List(ctx context.Context) ([]models.Periodo, error) {
	const query = `SELECT id, numero, anio, fecha_inicio, fecha_fin, fecha_pago, created_at, updated_at FROM periodos ORDER BY fecha_inicio DESC`
	periodos := []models.Periodo{}
	if err := r.db.SelectContext(ctx, &periodos, query); err != nil {
		return nil, fmt.Errorf("list periodos: %w", err)
	}
	return periodos, nil
}

// FindByID loads a period by identifier.
func (r *PeriodoRepository) FindByID(ctx context.Context, id int64) (*models.Periodo, error) {
	const query = `SELECT id, numero, anio, fecha_inicio, fecha_fin, fecha_pago, created_at, updated_at FROM periodos WHERE id = $1`
	var periodo models.Periodo
	if err := r.db.GetContext(ctx, &periodo, query, id); err != nil {
		return nil, err
	}
	return &periodo, nil
}

// Create inserts a new period and fills the generated fields.
func (r *PeriodoRepository) Create(ctx context.Context, p *models.Periodo) error {
	now := time.Now().UTC()
	const query = `INSERT INTO periodos (numero, anio, fecha_inicio, fecha_fin, fecha_pago, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id, created_at, updated_at`
	if err := r.db.QueryRowxContext(ctx, query, p.Numero, p.Anio, p.FechaInicio, p.FechaFin, p.FechaPago, now).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return fmt.Errorf("create periodo: %w", err)
	}
	return nil
}
