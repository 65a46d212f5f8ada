package services

import (
	"context"

	"github.com/bancabo/bank_backoffice/internal/core/domain"
	"github.com/bancabo/bank_backoffice/internal/dto"
)

// ClienteSvcFacade exposes the cliente directory operations.
type ClienteSvcFacade interface {
	// CreateCliente persists a new cliente. Fails with apperrors.ErrDuplicate
	// when an active cliente already holds the documento_identidad.
	CreateCliente(ctx context.Context, req dto.CreateClienteRequest) (*domain.Cliente, error)

	// ListClientes returns all active clientes, newest first.
	ListClientes(ctx context.Context) ([]domain.Cliente, error)

	// GetClienteByID returns the cliente with its cuentas attached.
	GetClienteByID(ctx context.Context, clienteID int64) (*domain.Cliente, error)

	// UpdateCliente applies a partial patch. A documento_identidad change to
	// a non-blank, different value re-checks uniqueness among active rows.
	UpdateCliente(ctx context.Context, clienteID int64, req dto.UpdateClienteRequest) (*domain.Cliente, error)

	// DeleteCliente soft-deletes the cliente. Its cuentas remain intact and
	// independently addressable.
	DeleteCliente(ctx context.Context, clienteID int64) error

	// NormalizeGeneros runs the one-shot gender data repair.
	NormalizeGeneros(ctx context.Context) error
}
