package repositories

import (
	"context"

	"github.com/bancabo/bank_backoffice/internal/core/domain"
)

// CuentaReader defines read operations for cuenta data.
type CuentaReader interface {
	// FindCuentaByID retrieves a cuenta by id.
	FindCuentaByID(ctx context.Context, cuentaID int64) (*domain.Cuenta, error)

	// FindCuentaByNumero retrieves a cuenta by its globally unique number.
	// Returns apperrors.ErrNotFound when the number is free.
	FindCuentaByNumero(ctx context.Context, numeroCuenta string) (*domain.Cuenta, error)

	// ListCuentasByCliente retrieves the cuentas owned by a cliente ordered
	// by id descending.
	ListCuentasByCliente(ctx context.Context, clienteID int64) ([]domain.Cuenta, error)
}

// CuentaWriter defines write operations for cuenta data. None of these
// methods touches saldo; balance changes go through MovimientoWriter only.
type CuentaWriter interface {
	// SaveCuenta persists a new cuenta and fills in the generated ID and
	// CreatedAt. The initial saldo comes from the domain value.
	SaveCuenta(ctx context.Context, cuenta *domain.Cuenta) error

	// UpdateCuenta overwrites numero_cuenta, tipo and moneda of an existing
	// cuenta. Saldo is deliberately not part of the statement.
	UpdateCuenta(ctx context.Context, cuenta domain.Cuenta) error

	// DeleteCuenta hard-deletes the cuenta; the schema cascades the delete
	// to its movimientos.
	DeleteCuenta(ctx context.Context, cuentaID int64) error
}

// CuentaRepositoryFacade combines all cuenta repository interfaces.
type CuentaRepositoryFacade interface {
	CuentaReader
	CuentaWriter
}
