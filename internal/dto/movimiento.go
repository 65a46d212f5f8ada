package dto

import (
	"time"

	"github.com/bancabo/bank_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMovimientoRequest defines the data needed to post a movimiento.
// Monto validates through the decimal custom type registration (see
// handlers.RegisterValidations), so gt=0 applies to the decimal value.
type CreateMovimientoRequest struct {
	Tipo        string          `json:"tipo" binding:"required,oneof=DEPOSITO RETIRO"`
	Monto       decimal.Decimal `json:"monto" binding:"required,gt=0"`
	Descripcion *string         `json:"descripcion" binding:"omitempty,max=180"`
}

// MovimientoResponse defines the data returned for a movimiento. It does
// not include the resulting balance; callers re-fetch the cuenta.
type MovimientoResponse struct {
	ID          int64           `json:"id"`
	Tipo        string          `json:"tipo"`
	Monto       decimal.Decimal `json:"monto"`
	Descripcion *string         `json:"descripcion"`
	CuentaID    int64           `json:"cuenta_id"`
	CreadoEn    time.Time       `json:"creado_en"`
}

// ToMovimientoResponse converts a domain.Movimiento to MovimientoResponse.
func ToMovimientoResponse(m *domain.Movimiento) MovimientoResponse {
	return MovimientoResponse{
		ID:          m.ID,
		Tipo:        string(m.Tipo),
		Monto:       m.Monto,
		Descripcion: m.Descripcion,
		CuentaID:    m.CuentaID,
		CreadoEn:    m.CreadoEn,
	}
}

// ToMovimientoResponses converts a slice of domain.Movimiento to responses.
func ToMovimientoResponses(movs []domain.Movimiento) []MovimientoResponse {
	res := make([]MovimientoResponse, len(movs))
	for i, m := range movs {
		res[i] = ToMovimientoResponse(&m)
	}
	return res
}
