package models

import "time"

// Periodo is a payroll period identified by its number within a year.
// Payments for covered classes are settled on FechaPago.
type Periodo struct {
	ID          int64     `db:"id" json:"id"`
	Numero      int       `db:"numero" json:"numero"`
	Anio        int       `db:"anio" json:"año"`
	FechaInicio time.Time `db:"fecha_inicio" json:"fechaInicio"`
	FechaFin    time.Time `db:"fecha_fin" json:"fechaFin"`
	FechaPago   time.Time `db:"fecha_pago" json:"fechaPago"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
