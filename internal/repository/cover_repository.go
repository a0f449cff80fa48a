package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studiopay/studio-pay-api/internal/models"
)

// CoverRepository handles persistence for substitute covers.
type CoverRepository struct {
	db *sqlx.DB
}

// NewCoverRepository instantiates a cover repository.
func NewCoverRepository(db *sqlx.DB) *CoverRepository {
	return &CoverRepository{db: db}
}

// ListByPeriodo returns the covers of a period with the class name of the
// linked (or staged) class expanded.
func (r *CoverRepository) ListByPeriodo(ctx context.Context, periodoID int64) ([]models.CoverDetalle, error) {
	const query = `SELECT c.id, c.periodo_id, c.clase_id, c.clase_temp, c.created_at, c.updated_at,
			cl.nombre AS clase_nombre
		FROM covers c
		LEFT JOIN clases cl ON cl.id = COALESCE(c.clase_id, c.clase_temp)
		WHERE c.periodo_id = $1
		ORDER BY c.id ASC`
	covers := []models.CoverDetalle{}
	if err := r.db.SelectContext(ctx, &covers, query, periodoID); err != nil {
		return nil, fmt.Errorf("list covers by periodo: %w", err)
	}
	return covers, nil
}

// LinkPendientes promotes clase_temp to clase_id for every pending cover
// of the period whose staged class exists, in a single conditional
// statement. Covers staging a missing class are left untouched. Returns
// the number of covers linked.
func (r *CoverRepository) LinkPendientes(ctx context.Context, periodoID int64) (int64, error) {
	const query = `UPDATE covers
		SET clase_id = clase_temp, clase_temp = NULL, updated_at = $2
		WHERE periodo_id = $1
		  AND clase_temp IS NOT NULL
		  AND EXISTS (SELECT 1 FROM clases cl WHERE cl.id = covers.clase_temp)`
	res, err := r.db.ExecContext(ctx, query, periodoID, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("link pending covers: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("link pending covers rows affected: %w", err)
	}
	return affected, nil
}
