package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bancabo/bank_backoffice/internal/apperrors"
	"github.com/bancabo/bank_backoffice/internal/core/domain"
	portsrepo "github.com/bancabo/bank_backoffice/internal/core/ports/repositories"
	"github.com/bancabo/bank_backoffice/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

type PgxClienteRepository struct {
	BaseRepository
}

// newPgxClienteRepository creates a new repository for cliente data.
func newPgxClienteRepository(pool *pgxpool.Pool) portsrepo.ClienteRepositoryFacade {
	return &PgxClienteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClienteRepositoryFacade = (*PgxClienteRepository)(nil)

func toDomainCliente(m models.Cliente) domain.Cliente {
	return domain.Cliente{
		ID:                 m.ID,
		Nombre:             m.Nombre,
		Paterno:            m.Paterno,
		Materno:            m.Materno,
		TipoDocumento:      m.TipoDocumento,
		DocumentoIdentidad: m.DocumentoIdentidad,
		FechaNacimiento:    m.FechaNacimiento,
		Genero:             domain.Genero(m.Genero),
		FechaCreacion:      m.FechaCreacion,
		DeletedAt:          m.DeletedAt,
	}
}

const clienteColumns = `id, nombre, paterno, materno, tipo_documento, documento_identidad, fecha_nacimiento, genero, fecha_creacion`

func scanCliente(row pgx.Row) (models.Cliente, error) {
	var m models.Cliente
	err := row.Scan(
		&m.ID,
		&m.Nombre,
		&m.Paterno,
		&m.Materno,
		&m.TipoDocumento,
		&m.DocumentoIdentidad,
		&m.FechaNacimiento,
		&m.Genero,
		&m.FechaCreacion,
	)
	return m, err
}

// SaveCliente inserts a new cliente and fills in the generated ID and
// FechaCreacion. The partial unique index on active documento_identidad
// backs up the service-level pre-check against concurrent creates.
func (r *PgxClienteRepository) SaveCliente(ctx context.Context, cliente *domain.Cliente) error {
	query := `
		INSERT INTO clientes (nombre, paterno, materno, tipo_documento, documento_identidad, fecha_nacimiento, genero)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, fecha_creacion;
	`
	err := r.Pool.QueryRow(ctx, query,
		cliente.Nombre,
		cliente.Paterno,
		cliente.Materno,
		cliente.TipoDocumento,
		cliente.DocumentoIdentidad,
		cliente.FechaNacimiento,
		string(cliente.Genero),
	).Scan(&cliente.ID, &cliente.FechaCreacion)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: documento_identidad ya existe", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save cliente: %w", err)
	}
	return nil
}

// FindClienteByID retrieves an active cliente by id.
func (r *PgxClienteRepository) FindClienteByID(ctx context.Context, clienteID int64) (*domain.Cliente, error) {
	query := `
		SELECT ` + clienteColumns + `
		FROM clientes
		WHERE id = $1 AND deleted_at IS NULL;
	`
	m, err := scanCliente(r.Pool.QueryRow(ctx, query, clienteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cliente by ID %d: %w", clienteID, err)
	}
	d := toDomainCliente(m)
	return &d, nil
}

// FindClienteByDocumento retrieves the active cliente holding a document
// number, optionally excluding one id (used by update's self-check).
func (r *PgxClienteRepository) FindClienteByDocumento(ctx context.Context, documento string, excludeID int64) (*domain.Cliente, error) {
	query := `
		SELECT ` + clienteColumns + `
		FROM clientes
		WHERE documento_identidad = $1 AND deleted_at IS NULL AND ($2 = 0 OR id <> $2);
	`
	m, err := scanCliente(r.Pool.QueryRow(ctx, query, documento, excludeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cliente by documento: %w", err)
	}
	d := toDomainCliente(m)
	return &d, nil
}

// ListClientes retrieves all active clientes, newest first.
func (r *PgxClienteRepository) ListClientes(ctx context.Context) ([]domain.Cliente, error) {
	query := `
		SELECT ` + clienteColumns + `
		FROM clientes
		WHERE deleted_at IS NULL
		ORDER BY id DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clientes: %w", err)
	}
	defer rows.Close()

	clientes := []domain.Cliente{}
	for rows.Next() {
		m, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cliente row: %w", err)
		}
		clientes = append(clientes, toDomainCliente(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating cliente rows: %w", rows.Err())
	}
	return clientes, nil
}

// UpdateCliente overwrites the mutable fields of an active cliente.
func (r *PgxClienteRepository) UpdateCliente(ctx context.Context, cliente domain.Cliente) error {
	query := `
		UPDATE clientes
		SET nombre = $2, paterno = $3, materno = $4, tipo_documento = $5,
		    documento_identidad = $6, fecha_nacimiento = $7, genero = $8
		WHERE id = $1 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		cliente.ID,
		cliente.Nombre,
		cliente.Paterno,
		cliente.Materno,
		cliente.TipoDocumento,
		cliente.DocumentoIdentidad,
		cliente.FechaNacimiento,
		string(cliente.Genero),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: documento_identidad ya existe", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update cliente %d: %w", cliente.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SoftDeleteCliente marks the cliente as deleted. The row stays in place and
// its documento_identidad leaves the active-uniqueness namespace.
func (r *PgxClienteRepository) SoftDeleteCliente(ctx context.Context, clienteID int64, now time.Time) error {
	query := `
		UPDATE clientes
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, clienteID, now)
	if err != nil {
		return fmt.Errorf("failed to soft-delete cliente %d: %w", clienteID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// NormalizeGeneros bulk-maps legacy free-text genero values onto the closed
// set, one UPDATE per canonical value, in a single transaction. Matching is
// case- and whitespace-insensitive. Zero matched rows is still success.
func (r *PgxClienteRepository) NormalizeGeneros(ctx context.Context) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE clientes
		SET genero = $1
		WHERE UPPER(TRIM(genero)) = ANY($2);
	`
	for _, canonical := range domain.CanonicalGeneros() {
		if _, err := tx.Exec(ctx, query, string(canonical), domain.GeneroAliases(canonical)); err != nil {
			return fmt.Errorf("failed to normalize genero %s: %w", canonical, err)
		}
	}

	return r.Commit(ctx, tx)
}
