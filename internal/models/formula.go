package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Formula stores the payment-calculation parameters for a discipline
// within a period. Parametros is an opaque JSON document produced by the
// formula builder; this service never evaluates it.
type Formula struct {
	ID           int64          `db:"id" json:"id"`
	DisciplinaID int64          `db:"disciplina_id" json:"disciplinaId"`
	PeriodoID    int64          `db:"periodo_id" json:"periodoId"`
	Parametros   types.JSONText `db:"parametros" json:"parametros"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updatedAt"`
}

// DisciplinaResumen is the discipline summary joined into formula listings.
type DisciplinaResumen struct {
	Nombre string  `db:"nombre" json:"nombre"`
	Color  *string `db:"color" json:"color,omitempty"`
}

// PeriodoResumen is the period summary joined into formula listings.
type PeriodoResumen struct {
	Numero      int       `db:"numero" json:"numero"`
	Anio        int       `db:"anio" json:"año"`
	FechaInicio time.Time `db:"fecha_inicio" json:"fechaInicio"`
	FechaFin    time.Time `db:"fecha_fin" json:"fechaFin"`
}

// FormulaDetalle is a formula with its related discipline and period expanded.
type FormulaDetalle struct {
	Formula
	Disciplina DisciplinaResumen `db:"disciplina" json:"disciplina"`
	Periodo    PeriodoResumen    `db:"periodo" json:"periodo"`
}
