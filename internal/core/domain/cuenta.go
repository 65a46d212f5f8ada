package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonedaDefault is the currency assigned when an account is created without one.
const MonedaDefault = "BOB"

// Cuenta is a monetary holding owned by exactly one cliente, identified by a
// globally unique account number. Saldo is mutated only by movement posting;
// the generic update path never touches it.
type Cuenta struct {
	ID           int64
	NumeroCuenta string
	Tipo         string // free-form product label, e.g. "caja ahorro"
	Saldo        decimal.Decimal
	Moneda       string
	ClienteID    int64
	CreatedAt    time.Time
}
