package models

import "time"

// Cliente represents a row of the clientes table.
// DeletedAt implements soft delete: non-NULL rows are excluded from normal
// reads and from the active-uniqueness check on documento_identidad.
type Cliente struct {
	ID                 int64      `db:"id"`
	Nombre             string     `db:"nombre"`
	Paterno            string     `db:"paterno"`
	Materno            string     `db:"materno"`
	TipoDocumento      string     `db:"tipo_documento"`
	DocumentoIdentidad string     `db:"documento_identidad"`
	FechaNacimiento    time.Time  `db:"fecha_nacimiento"`
	Genero             string     `db:"genero"`
	FechaCreacion      time.Time  `db:"fecha_creacion"`
	DeletedAt          *time.Time `db:"deleted_at"`
}
