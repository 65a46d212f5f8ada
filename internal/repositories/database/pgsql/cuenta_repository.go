package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bancabo/bank_backoffice/internal/apperrors"
	"github.com/bancabo/bank_backoffice/internal/core/domain"
	portsrepo "github.com/bancabo/bank_backoffice/internal/core/ports/repositories"
	"github.com/bancabo/bank_backoffice/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgForeignKeyViolation is the PostgreSQL error code for foreign key violations.
const pgForeignKeyViolation = "23503"

type PgxCuentaRepository struct {
	BaseRepository
}

// newPgxCuentaRepository creates a new repository for cuenta data.
func newPgxCuentaRepository(pool *pgxpool.Pool) portsrepo.CuentaRepositoryFacade {
	return &PgxCuentaRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CuentaRepositoryFacade = (*PgxCuentaRepository)(nil)

func toDomainCuenta(m models.Cuenta) domain.Cuenta {
	return domain.Cuenta{
		ID:           m.ID,
		NumeroCuenta: m.NumeroCuenta,
		Tipo:         m.Tipo,
		Saldo:        m.Saldo,
		Moneda:       m.Moneda,
		ClienteID:    m.ClienteID,
		CreatedAt:    m.CreatedAt,
	}
}

const cuentaColumns = `id, numero_cuenta, tipo, saldo, moneda, cliente_id, created_at`

func scanCuenta(row pgx.Row) (models.Cuenta, error) {
	var m models.Cuenta
	err := row.Scan(
		&m.ID,
		&m.NumeroCuenta,
		&m.Tipo,
		&m.Saldo,
		&m.Moneda,
		&m.ClienteID,
		&m.CreatedAt,
	)
	return m, err
}

// SaveCuenta inserts a new cuenta and fills in the generated ID and
// CreatedAt. The initial saldo comes straight from the domain value.
func (r *PgxCuentaRepository) SaveCuenta(ctx context.Context, cuenta *domain.Cuenta) error {
	query := `
		INSERT INTO cuentas (numero_cuenta, tipo, saldo, moneda, cliente_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		cuenta.NumeroCuenta,
		cuenta.Tipo,
		cuenta.Saldo,
		cuenta.Moneda,
		cuenta.ClienteID,
	).Scan(&cuenta.ID, &cuenta.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return fmt.Errorf("%w: numero_cuenta ya existe", apperrors.ErrDuplicate)
			case pgForeignKeyViolation:
				return fmt.Errorf("%w: cliente %d", apperrors.ErrNotFound, cuenta.ClienteID)
			}
		}
		return fmt.Errorf("failed to save cuenta %s: %w", cuenta.NumeroCuenta, err)
	}
	return nil
}

// FindCuentaByID retrieves a cuenta by its id.
func (r *PgxCuentaRepository) FindCuentaByID(ctx context.Context, cuentaID int64) (*domain.Cuenta, error) {
	query := `
		SELECT ` + cuentaColumns + `
		FROM cuentas
		WHERE id = $1;
	`
	m, err := scanCuenta(r.Pool.QueryRow(ctx, query, cuentaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cuenta by ID %d: %w", cuentaID, err)
	}
	d := toDomainCuenta(m)
	return &d, nil
}

// FindCuentaByNumero retrieves a cuenta by its globally unique number.
func (r *PgxCuentaRepository) FindCuentaByNumero(ctx context.Context, numeroCuenta string) (*domain.Cuenta, error) {
	query := `
		SELECT ` + cuentaColumns + `
		FROM cuentas
		WHERE numero_cuenta = $1;
	`
	m, err := scanCuenta(r.Pool.QueryRow(ctx, query, numeroCuenta))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cuenta by numero %s: %w", numeroCuenta, err)
	}
	d := toDomainCuenta(m)
	return &d, nil
}

// ListCuentasByCliente retrieves a cliente's cuentas, newest first.
func (r *PgxCuentaRepository) ListCuentasByCliente(ctx context.Context, clienteID int64) ([]domain.Cuenta, error) {
	query := `
		SELECT ` + cuentaColumns + `
		FROM cuentas
		WHERE cliente_id = $1
		ORDER BY id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cuentas for cliente %d: %w", clienteID, err)
	}
	defer rows.Close()

	cuentas := []domain.Cuenta{}
	for rows.Next() {
		m, err := scanCuenta(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cuenta row: %w", err)
		}
		cuentas = append(cuentas, toDomainCuenta(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating cuenta rows: %w", rows.Err())
	}
	return cuentas, nil
}

// UpdateCuenta overwrites numero_cuenta, tipo and moneda. Saldo is not part
// of the statement: only movement posting writes balances.
func (r *PgxCuentaRepository) UpdateCuenta(ctx context.Context, cuenta domain.Cuenta) error {
	query := `
		UPDATE cuentas
		SET numero_cuenta = $2, tipo = $3, moneda = $4
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		cuenta.ID,
		cuenta.NumeroCuenta,
		cuenta.Tipo,
		cuenta.Moneda,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: numero_cuenta ya existe", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update cuenta %d: %w", cuenta.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCuenta hard-deletes the cuenta. The movimientos FK is declared
// ON DELETE CASCADE, so dependent movimientos go with it.
func (r *PgxCuentaRepository) DeleteCuenta(ctx context.Context, cuentaID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM cuentas WHERE id = $1;`, cuentaID)
	if err != nil {
		return fmt.Errorf("failed to delete cuenta %d: %w", cuentaID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
