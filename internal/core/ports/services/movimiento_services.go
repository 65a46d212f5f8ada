package services

import (
	"context"

	"github.com/bancabo/bank_backoffice/internal/core/domain"
	"github.com/bancabo/bank_backoffice/internal/dto"
)

// MovimientoSvcFacade exposes the movement posting operations.
type MovimientoSvcFacade interface {
	// PostMovimiento appends a movimiento to the cuenta and adjusts its
	// saldo as one atomic unit. A retiro exceeding the balance fails with
	// apperrors.ErrSaldoInsuficiente and persists nothing. The returned
	// movimiento does not carry the new balance; callers re-fetch the
	// cuenta to observe it.
	PostMovimiento(ctx context.Context, cuentaID int64, req dto.CreateMovimientoRequest) (*domain.Movimiento, error)

	// ListMovimientosForCuenta returns the cuenta's movimientos, newest
	// first. Fails with apperrors.ErrNotFound when the cuenta is absent.
	ListMovimientosForCuenta(ctx context.Context, cuentaID int64) ([]domain.Movimiento, error)
}
