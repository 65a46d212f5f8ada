package services_test

import (
	"context"
	"time"

	"github.com/bancabo/bank_backoffice/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClienteRepository ---
type MockClienteRepository struct {
	mock.Mock
}

func (m *MockClienteRepository) FindClienteByID(ctx context.Context, clienteID int64) (*domain.Cliente, error) {
	args := m.Called(ctx, clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}

func (m *MockClienteRepository) FindClienteByDocumento(ctx context.Context, documento string, excludeID int64) (*domain.Cliente, error) {
	args := m.Called(ctx, documento, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}

func (m *MockClienteRepository) ListClientes(ctx context.Context) ([]domain.Cliente, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cliente), args.Error(1)
}

func (m *MockClienteRepository) SaveCliente(ctx context.Context, cliente *domain.Cliente) error {
	args := m.Called(ctx, cliente)
	return args.Error(0)
}

func (m *MockClienteRepository) UpdateCliente(ctx context.Context, cliente domain.Cliente) error {
	args := m.Called(ctx, cliente)
	return args.Error(0)
}

func (m *MockClienteRepository) SoftDeleteCliente(ctx context.Context, clienteID int64, now time.Time) error {
	args := m.Called(ctx, clienteID, now)
	return args.Error(0)
}

func (m *MockClienteRepository) NormalizeGeneros(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock CuentaRepository ---
type MockCuentaRepository struct {
	mock.Mock
}

func (m *MockCuentaRepository) FindCuentaByID(ctx context.Context, cuentaID int64) (*domain.Cuenta, error) {
	args := m.Called(ctx, cuentaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cuenta), args.Error(1)
}

func (m *MockCuentaRepository) FindCuentaByNumero(ctx context.Context, numeroCuenta string) (*domain.Cuenta, error) {
	args := m.Called(ctx, numeroCuenta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cuenta), args.Error(1)
}

func (m *MockCuentaRepository) ListCuentasByCliente(ctx context.Context, clienteID int64) ([]domain.Cuenta, error) {
	args := m.Called(ctx, clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cuenta), args.Error(1)
}

func (m *MockCuentaRepository) SaveCuenta(ctx context.Context, cuenta *domain.Cuenta) error {
	args := m.Called(ctx, cuenta)
	return args.Error(0)
}

func (m *MockCuentaRepository) UpdateCuenta(ctx context.Context, cuenta domain.Cuenta) error {
	args := m.Called(ctx, cuenta)
	return args.Error(0)
}

func (m *MockCuentaRepository) DeleteCuenta(ctx context.Context, cuentaID int64) error {
	args := m.Called(ctx, cuentaID)
	return args.Error(0)
}

// --- Mock MovimientoRepository ---
type MockMovimientoRepository struct {
	mock.Mock
}

func (m *MockMovimientoRepository) ListMovimientosByCuenta(ctx context.Context, cuentaID int64) ([]domain.Movimiento, error) {
	args := m.Called(ctx, cuentaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movimiento), args.Error(1)
}

func (m *MockMovimientoRepository) SaveMovimiento(ctx context.Context, movimiento *domain.Movimiento) error {
	args := m.Called(ctx, movimiento)
	return args.Error(0)
}
