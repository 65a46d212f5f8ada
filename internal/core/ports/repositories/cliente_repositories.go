package repositories

import (
	"context"
	"time"

	"github.com/bancabo/bank_backoffice/internal/core/domain"
)

// ClienteReader defines read operations for cliente data.
// All reads exclude soft-deleted rows.
type ClienteReader interface {
	// FindClienteByID retrieves a cliente by id. Returns apperrors.ErrNotFound
	// if the row is absent or soft-deleted.
	FindClienteByID(ctx context.Context, clienteID int64) (*domain.Cliente, error)

	// FindClienteByDocumento retrieves the active cliente holding the given
	// documento_identidad, skipping the row with excludeID (0 means none).
	// Returns apperrors.ErrNotFound when the document number is free.
	FindClienteByDocumento(ctx context.Context, documento string, excludeID int64) (*domain.Cliente, error)

	// ListClientes retrieves all active clientes ordered by id descending.
	ListClientes(ctx context.Context) ([]domain.Cliente, error)
}

// ClienteWriter defines write operations for cliente data.
type ClienteWriter interface {
	// SaveCliente persists a new cliente and fills in the generated ID and
	// FechaCreacion.
	SaveCliente(ctx context.Context, cliente *domain.Cliente) error

	// UpdateCliente overwrites the mutable fields of an existing cliente.
	UpdateCliente(ctx context.Context, cliente domain.Cliente) error

	// SoftDeleteCliente marks the cliente as deleted at the given time.
	SoftDeleteCliente(ctx context.Context, clienteID int64, now time.Time) error

	// NormalizeGeneros bulk-repairs legacy free-text genero values onto the
	// closed set. One-shot maintenance, not steady-state request handling.
	NormalizeGeneros(ctx context.Context) error
}

// ClienteRepositoryFacade combines all cliente repository interfaces.
type ClienteRepositoryFacade interface {
	ClienteReader
	ClienteWriter
}
