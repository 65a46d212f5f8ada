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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxMovimientoRepository struct {
	BaseRepository
}

// newPgxMovimientoRepository creates a new repository for movimiento data.
func newPgxMovimientoRepository(pool *pgxpool.Pool) portsrepo.MovimientoRepositoryFacade {
	return &PgxMovimientoRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MovimientoRepositoryFacade = (*PgxMovimientoRepository)(nil)

func toDomainMovimiento(m models.Movimiento) domain.Movimiento {
	return domain.Movimiento{
		ID:          m.ID,
		Tipo:        domain.TipoMovimiento(m.Tipo),
		Monto:       m.Monto,
		Descripcion: m.Descripcion,
		CuentaID:    m.CuentaID,
		CreadoEn:    m.CreadoEn,
	}
}

const movimientoColumns = `id, tipo, monto, descripcion, cuenta_id, creado_en`

func scanMovimiento(row pgx.Row) (models.Movimiento, error) {
	var m models.Movimiento
	err := row.Scan(
		&m.ID,
		&m.Tipo,
		&m.Monto,
		&m.Descripcion,
		&m.CuentaID,
		&m.CreadoEn,
	)
	return m, err
}

// SaveMovimiento posts a movimiento and applies it to the cuenta's saldo in a
// single transaction. The cuenta row is locked FOR UPDATE for the duration, so
// concurrent postings against the same cuenta serialize and each one sees the
// saldo left by the previous commit. A retiro that exceeds the locked saldo
// fails with ErrSaldoInsuficiente and leaves no trace.
func (r *PgxMovimientoRepository) SaveMovimiento(ctx context.Context, mov *domain.Movimiento) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var saldo decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT saldo FROM cuentas WHERE id = $1 FOR UPDATE;`, mov.CuentaID).Scan(&saldo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock cuenta %d: %w", mov.CuentaID, err)
	}

	if mov.Tipo == domain.MovimientoRetiro && mov.Monto.GreaterThan(saldo) {
		return fmt.Errorf("%w: saldo %s, retiro %s", apperrors.ErrSaldoInsuficiente, saldo, mov.Monto)
	}

	insert := `
		INSERT INTO movimientos (tipo, monto, descripcion, cuenta_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, creado_en;
	`
	err = tx.QueryRow(ctx, insert,
		string(mov.Tipo),
		mov.Monto,
		mov.Descripcion,
		mov.CuentaID,
	).Scan(&mov.ID, &mov.CreadoEn)
	if err != nil {
		return fmt.Errorf("failed to insert movimiento: %w", err)
	}

	nuevoSaldo := saldo.Add(mov.MontoFirmado())
	if _, err := tx.Exec(ctx, `UPDATE cuentas SET saldo = $2 WHERE id = $1;`, mov.CuentaID, nuevoSaldo); err != nil {
		return fmt.Errorf("failed to update saldo for cuenta %d: %w", mov.CuentaID, err)
	}

	return r.Commit(ctx, tx)
}

// ListMovimientosByCuenta retrieves a cuenta's movimientos, newest first.
func (r *PgxMovimientoRepository) ListMovimientosByCuenta(ctx context.Context, cuentaID int64) ([]domain.Movimiento, error) {
	query := `
		SELECT ` + movimientoColumns + `
		FROM movimientos
		WHERE cuenta_id = $1
		ORDER BY id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, cuentaID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movimientos for cuenta %d: %w", cuentaID, err)
	}
	defer rows.Close()

	movimientos := []domain.Movimiento{}
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movimiento row: %w", err)
		}
		movimientos = append(movimientos, toDomainMovimiento(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating movimiento rows: %w", rows.Err())
	}
	return movimientos, nil
}
