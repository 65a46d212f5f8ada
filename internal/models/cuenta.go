package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cuenta represents a row of the cuentas table.
// Saldo is NUMERIC(14,2); only movement posting writes it.
type Cuenta struct {
	ID           int64           `db:"id"`
	NumeroCuenta string          `db:"numero_cuenta"`
	Tipo         string          `db:"tipo"`
	Saldo        decimal.Decimal `db:"saldo"`
	Moneda       string          `db:"moneda"`
	ClienteID    int64           `db:"cliente_id"`
	CreatedAt    time.Time       `db:"created_at"`
}
