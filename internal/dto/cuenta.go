package dto

import (
	"time"

	"github.com/bancabo/bank_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCuentaRequest defines the data needed to open a cuenta under a
// cliente. Monto is the opening balance as a numeric string; Sucursal is
// accepted and validated for the branch workflow but not persisted.
type CreateCuentaRequest struct {
	TipoProducto string `json:"tipo_producto" binding:"required,min=2,max=60"`
	NumeroCuenta string `json:"numero_cuenta" binding:"required,min=3,max=60"`
	Moneda       string `json:"moneda" binding:"required,oneof=BOB USD"`
	Monto        string `json:"monto" binding:"required,numeric"`
	Sucursal     string `json:"sucursal" binding:"required,min=2,max=80"`
}

// UpdateCuentaRequest defines the partial patch for a cuenta. Saldo is
// deliberately absent: only movement posting may change a balance.
type UpdateCuentaRequest struct {
	TipoProducto *string `json:"tipo_producto" binding:"omitempty,min=2,max=60"`
	NumeroCuenta *string `json:"numero_cuenta" binding:"omitempty,min=3,max=60"`
	Moneda       *string `json:"moneda" binding:"omitempty,oneof=BOB USD"`
}

// CuentaResponse defines the data returned for a cuenta.
type CuentaResponse struct {
	ID           int64           `json:"id"`
	NumeroCuenta string          `json:"numero_cuenta"`
	Tipo         string          `json:"tipo"`
	Saldo        decimal.Decimal `json:"saldo"`
	Moneda       string          `json:"moneda"`
	ClienteID    int64           `json:"cliente_id"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToCuentaResponse converts a domain.Cuenta to CuentaResponse.
func ToCuentaResponse(c *domain.Cuenta) CuentaResponse {
	return CuentaResponse{
		ID:           c.ID,
		NumeroCuenta: c.NumeroCuenta,
		Tipo:         c.Tipo,
		Saldo:        c.Saldo,
		Moneda:       c.Moneda,
		ClienteID:    c.ClienteID,
		CreatedAt:    c.CreatedAt,
	}
}

// ToCuentaResponses converts a slice of domain.Cuenta to responses.
// It always returns a non-nil slice so empty lists serialize as [].
func ToCuentaResponses(cuentas []domain.Cuenta) []CuentaResponse {
	res := make([]CuentaResponse, len(cuentas))
	for i, c := range cuentas {
		res[i] = ToCuentaResponse(&c)
	}
	return res
}
