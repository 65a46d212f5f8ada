package services

import (
	portssvc "github.com/bancabo/bank_backoffice/internal/core/ports/services"
	"github.com/bancabo/bank_backoffice/internal/repositories/database/pgsql"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos *pgsql.RepositoryContainer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Cliente = NewClienteService(repos.Cliente, repos.Cuenta)
	container.Cuenta = NewCuentaService(repos.Cuenta, repos.Cliente)
	container.Movimiento = NewMovimientoService(repos.Movimiento, repos.Cuenta)

	return container
}
