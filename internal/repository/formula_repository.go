package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/studiopay/studio-pay-api/internal/models"
)

// FormulaRepository handles persistence for payment formulas.
type FormulaRepository struct {
	db *sqlx.DB
}

// NewFormulaRepository instantiates a formula repository.
func NewFormulaRepository(db *sqlx.DB) *FormulaRepository {
	return &FormulaRepository{db: db}
}

const formulaDetalleColumns = `f.id, f.disciplina_id, f.periodo_id, f.parametros, f.created_at, f.updated_at,
		d.nombre AS "disciplina.nombre", d.color AS "disciplina.color",
		p.numero AS "periodo.numero", p.anio AS "periodo.anio",
		p.fecha_inicio AS "periodo.fecha_inicio", p.fecha_fin AS "periodo.fecha_fin"`

// List returns every formula with its discipline and period expanded.
func (r *FormulaRepository) List(ctx context.Context) ([]models.FormulaDetalle, error) {
	query := fmt.Sprintf(`SELECT %s
		FROM formulas f
		JOIN disciplinas d ON d.id = f.disciplina_id
		JOIN periodos p ON p.id = f.periodo_id
		ORDER BY f.id ASC`, formulaDetalleColumns)
	formulas := []models.FormulaDetalle{}
	if err := r.db.SelectContext(ctx, &formulas, query); err != nil {
		return nil, fmt.Errorf("list formulas: %w", err)
	}
	return formulas, nil
}

// ListByPeriodo returns the formulas of one period with discipline names,
// used by the payroll export.
func (r *FormulaRepository) ListByPeriodo(ctx context.Context, periodoID int64) ([]models.FormulaDetalle, error) {
	query := fmt.Sprintf(`SELECT %s
		FROM formulas f
		JOIN disciplinas d ON d.id = f.disciplina_id
		JOIN periodos p ON p.id = f.periodo_id
		WHERE f.periodo_id = $1
		ORDER BY d.nombre ASC`, formulaDetalleColumns)
	formulas := []models.FormulaDetalle{}
	if err := r.db.SelectContext(ctx, &formulas, query, periodoID); err != nil {
		return nil, fmt.Errorf("list formulas by periodo: %w", err)
	}
	return formulas, nil
}

// FindByID loads a formula by identifier.
func (r *FormulaRepository) FindByID(ctx context.Context, id int64) (*models.Formula, error) {
	const query = `SELECT id, disciplina_id, periodo_id, parametros, created_at, updated_at FROM formulas WHERE id = $1`
	var formula models.Formula
	if err := r.db.GetContext(ctx, &formula, query, id); err != nil {
		return nil, err
	}
	return &formula, nil
}

// Create inserts a new formula and fills the generated fields.
func (r *FormulaRepository) Create(ctx context.Context, f *models.Formula) error {
	now := time.Now().UTC()
	const query = `INSERT INTO formulas (disciplina_id, periodo_id, parametros, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4) RETURNING id, created_at, updated_at`
	if err := r.db.QueryRowxContext(ctx, query, f.DisciplinaID, f.PeriodoID, f.Parametros, now).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return fmt.Errorf("create formula: %w", err)
	}
	return nil
}

// UpdateParametros replaces the parameter document of one formula and
// returns the updated row. sql.ErrNoRows signals an absent formula.
func (r *FormulaRepository) UpdateParametros(ctx context.Context, id int64, parametros types.JSONText) (*models.Formula, error) {
	const query = `UPDATE formulas SET parametros = $1, updated_at = $2 WHERE id = $3
		RETURNING id, disciplina_id, periodo_id, parametros, created_at, updated_at`
	var formula models.Formula
	if err := r.db.GetContext(ctx, &formula, query, parametros, time.Now().UTC(), id); err != nil {
		return nil, err
	}
	return &formula, nil
}

// Delete removes a formula. sql.ErrNoRows signals an absent formula.
func (r *FormulaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM formulas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete formula: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete formula rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
