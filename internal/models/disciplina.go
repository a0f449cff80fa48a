package models

import "time"

// Disciplina is a class category taught at the studio (e.g. spinning, yoga).
type Disciplina struct {
	ID          int64     `db:"id" json:"id"`
	Nombre      string    `db:"nombre" json:"nombre"`
	Descripcion *string   `db:"descripcion" json:"descripcion,omitempty"`
	Color       *string   `db:"color" json:"color,omitempty"`
	Activo      bool      `db:"activo" json:"activo"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
