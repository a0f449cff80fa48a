package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studiopay/studio-pay-api/internal/models"
)

// DisciplinaRepository handles persistence for disciplines.
type DisciplinaRepository struct {
	db *sqlx.DB
}

// NewDisciplinaRepository instantiates a discipline repository.
func NewDisciplinaRepository(db *sqlx.DB) *DisciplinaRepository {
	return &DisciplinaRepository{db: db}
}

// List returns every discipline ordered by name.
func (r *DisciplinaRepository) List(ctx context.Context) ([]models.Disciplina, error) {
	const query = `SELECT id, nombre, descripcion, color, activo, created_at, updated_at FROM disciplinas ORDER BY nombre ASC`
	disciplinas := []models.Disciplina{}
	if err := r.db.SelectContext(ctx, &disciplinas, query); err != nil {
		return nil, fmt.Errorf("list disciplinas: %w", err)
	}
	return disciplinas, nil
}

// ExistsByNombre checks if a discipline with the same name exists.
func (r *DisciplinaRepository) ExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	const query = `SELECT 1 FROM disciplinas WHERE LOWER(nombre) = LOWER($1) LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, nombre); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check disciplina uniqueness: %w", err)
	}
	return true, nil
}

// Create inserts a new discipline and fills the generated fields.
func (r *DisciplinaRepository) Create(ctx context.Context, d *models.Disciplina) error {
	now := time.Now().UTC()
	const query = `INSERT INTO disciplinas (nombre, descripcion, color, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5) RETURNING id, created_at, updated_at`
	if err := r.db.QueryRowxContext(ctx, query, d.Nombre, d.Descripcion, d.Color, d.Activo, now).
		Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return fmt.Errorf("create disciplina: %w", err)
	}
	return nil
}
