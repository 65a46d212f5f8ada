package services

import (
	"context"

	"github.com/bancabo/bank_backoffice/internal/core/domain"
	"github.com/bancabo/bank_backoffice/internal/dto"
)

// CuentaSvcFacade exposes the account ledger operations.
type CuentaSvcFacade interface {
	// CreateCuentaForCliente creates a cuenta under an existing cliente.
	// Fails with apperrors.ErrNotFound when the cliente is absent and with
	// apperrors.ErrDuplicate when numero_cuenta exists anywhere.
	CreateCuentaForCliente(ctx context.Context, clienteID int64, req dto.CreateCuentaRequest) (*domain.Cuenta, error)

	// ListCuentasForCliente returns the cliente's cuentas, newest first.
	ListCuentasForCliente(ctx context.Context, clienteID int64) ([]domain.Cuenta, error)

	// GetCuentaByID returns a cuenta by id.
	GetCuentaByID(ctx context.Context, cuentaID int64) (*domain.Cuenta, error)

	// UpdateCuenta applies a partial patch to numero_cuenta, tipo and moneda.
	// Saldo cannot be patched; only movement posting writes it.
	UpdateCuenta(ctx context.Context, cuentaID int64, req dto.UpdateCuentaRequest) (*domain.Cuenta, error)

	// DeleteCuenta hard-deletes the cuenta together with its movimientos.
	DeleteCuenta(ctx context.Context, cuentaID int64) error
}
