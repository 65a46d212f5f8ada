package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movimiento represents a row of the movimientos table. Rows are append-only
// from the application's perspective.
type Movimiento struct {
	ID          int64           `db:"id"`
	Tipo        string          `db:"tipo"`
	Monto       decimal.Decimal `db:"monto"`
	Descripcion *string         `db:"descripcion"`
	CuentaID    int64           `db:"cuenta_id"`
	CreadoEn    time.Time       `db:"creado_en"`
}
