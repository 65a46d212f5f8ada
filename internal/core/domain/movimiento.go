package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoMovimiento is the closed set of movement types.
type TipoMovimiento string

const (
	MovimientoDeposito TipoMovimiento = "DEPOSITO"
	MovimientoRetiro   TipoMovimiento = "RETIRO"
)

// IsValid reports whether t is one of the known movement types.
func (t TipoMovimiento) IsValid() bool {
	return t == MovimientoDeposito || t == MovimientoRetiro
}

// Movimiento is an append-only posting against one cuenta. No update or
// delete operation exists for movements.
type Movimiento struct {
	ID          int64
	Tipo        TipoMovimiento
	Monto       decimal.Decimal // strictly positive
	Descripcion *string
	CuentaID    int64
	CreadoEn    time.Time
}

// MontoFirmado returns the amount with the sign the movement applies to the
// account balance: positive for deposits, negative for withdrawals.
func (m Movimiento) MontoFirmado() decimal.Decimal {
	if m.Tipo == MovimientoRetiro {
		return m.Monto.Neg()
	}
	return m.Monto
}
