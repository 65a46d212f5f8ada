package repositories

import (
	"context"

	"github.com/bancabo/bank_backoffice/internal/core/domain"
)

// MovimientoReader defines read operations for movimiento data.
type MovimientoReader interface {
	// ListMovimientosByCuenta retrieves the movimientos posted against a
	// cuenta ordered by id descending.
	ListMovimientosByCuenta(ctx context.Context, cuentaID int64) ([]domain.Movimiento, error)
}

// MovimientoWriter defines the single write operation on movimientos.
type MovimientoWriter interface {
	// SaveMovimiento posts the movimiento and adjusts the owning cuenta's
	// saldo inside one database transaction, locking the cuenta row. It
	// returns apperrors.ErrNotFound when the cuenta is absent and
	// apperrors.ErrSaldoInsuficiente when a retiro exceeds the balance; in
	// both cases nothing is persisted. On success the generated ID and
	// CreadoEn are filled in.
	SaveMovimiento(ctx context.Context, movimiento *domain.Movimiento) error
}

// MovimientoRepositoryFacade combines all movimiento repository interfaces.
type MovimientoRepositoryFacade interface {
	MovimientoReader
	MovimientoWriter
}
