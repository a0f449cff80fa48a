package models

import "time"

// Cover is a substitute-instructor assignment inside a period. While the
// class is unconfirmed the tentative class id lives in ClaseTemp; linkage
// moves it to ClaseID once the class is verified to exist.
type Cover struct {
	ID        int64     `db:"id" json:"id"`
	PeriodoID int64     `db:"periodo_id" json:"periodoId"`
	ClaseID   *int64    `db:"clase_id" json:"claseId"`
	ClaseTemp *int64    `db:"clase_temp" json:"claseTemp"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// CoverDetalle is a cover with the linked class name expanded.
type CoverDetalle struct {
	Cover
	ClaseNombre *string `db:"clase_nombre" json:"claseNombre,omitempty"`
}

// Pendiente reports whether the cover still awaits class linkage.
func (c Cover) Pendiente() bool {
	return c.ClaseTemp != nil
}
