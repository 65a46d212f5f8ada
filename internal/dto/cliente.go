package dto

import (
	"time"

	"github.com/bancabo/bank_backoffice/internal/core/domain"
)

// CreateClienteRequest defines the data needed to register a new cliente.
// Field names and ranges mirror the validation contract of the public API.
type CreateClienteRequest struct {
	Nombre             string `json:"nombre" binding:"required,min=2,max=120"`
	Paterno            string `json:"paterno" binding:"required,min=2,max=120"`
	Materno            string `json:"materno" binding:"required,min=2,max=120"`
	TipoDocumento      string `json:"tipo_documento" binding:"required,min=1,max=30"`
	DocumentoIdentidad string `json:"documento_identidad" binding:"required,min=3,max=40"`
	FechaNacimiento    string `json:"fecha_nacimiento" binding:"required,datetime=2006-01-02"`
	Genero             string `json:"genero" binding:"required,oneof=M F Otro"`
}

// UpdateClienteRequest defines the partial patch for a cliente.
// Pointers distinguish "not provided" from zero values.
type UpdateClienteRequest struct {
	Nombre             *string `json:"nombre" binding:"omitempty,min=2,max=120"`
	Paterno            *string `json:"paterno" binding:"omitempty,min=2,max=120"`
	Materno            *string `json:"materno" binding:"omitempty,min=2,max=120"`
	TipoDocumento      *string `json:"tipo_documento" binding:"omitempty,min=1,max=30"`
	DocumentoIdentidad *string `json:"documento_identidad" binding:"omitempty,min=3,max=40"`
	FechaNacimiento    *string `json:"fecha_nacimiento" binding:"omitempty,datetime=2006-01-02"`
	Genero             *string `json:"genero" binding:"omitempty,oneof=M F Otro"`
}

// ClienteResponse defines the data returned for a cliente.
type ClienteResponse struct {
	ID                 int64     `json:"id"`
	Nombre             string    `json:"nombre"`
	Paterno            string    `json:"paterno"`
	Materno            string    `json:"materno"`
	TipoDocumento      string    `json:"tipo_documento"`
	DocumentoIdentidad string    `json:"documento_identidad"`
	FechaNacimiento    string    `json:"fecha_nacimiento"`
	Genero             string    `json:"genero"`
	FechaCreacion      time.Time `json:"fecha_creacion"`
}

// ClienteDetailResponse is a cliente with its cuentas attached
// (GET /clientes/:id).
type ClienteDetailResponse struct {
	ClienteResponse
	Cuentas []CuentaResponse `json:"cuentas"`
}

// ToClienteResponse converts a domain.Cliente to ClienteResponse.
func ToClienteResponse(c *domain.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:                 c.ID,
		Nombre:             c.Nombre,
		Paterno:            c.Paterno,
		Materno:            c.Materno,
		TipoDocumento:      c.TipoDocumento,
		DocumentoIdentidad: c.DocumentoIdentidad,
		FechaNacimiento:    c.FechaNacimiento.Format(time.DateOnly),
		Genero:             string(c.Genero),
		FechaCreacion:      c.FechaCreacion,
	}
}

// ToClienteResponses converts a slice of domain.Cliente to responses.
func ToClienteResponses(clientes []domain.Cliente) []ClienteResponse {
	res := make([]ClienteResponse, len(clientes))
	for i, c := range clientes {
		res[i] = ToClienteResponse(&c)
	}
	return res
}

// ToClienteDetailResponse converts a domain.Cliente with attached cuentas.
func ToClienteDetailResponse(c *domain.Cliente) ClienteDetailResponse {
	return ClienteDetailResponse{
		ClienteResponse: ToClienteResponse(c),
		Cuentas:         ToCuentaResponses(c.Cuentas),
	}
}
