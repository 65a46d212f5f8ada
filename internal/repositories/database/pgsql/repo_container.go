package pgsql

import (
	portsrepo "github.com/bancabo/bank_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryContainer bundles the pgsql repositories behind their port
// interfaces for injection into the service layer.
type RepositoryContainer struct {
	Cliente    portsrepo.ClienteRepositoryFacade
	Cuenta     portsrepo.CuentaRepositoryFacade
	Movimiento portsrepo.MovimientoRepositoryFacade
}

// NewRepositoryContainer creates all repositories over one connection pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		Cliente:    newPgxClienteRepository(pool),
		Cuenta:     newPgxCuentaRepository(pool),
		Movimiento: newPgxMovimientoRepository(pool),
	}
}
