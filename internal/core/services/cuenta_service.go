package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bancabo/bank_backoffice/internal/apperrors"
	"github.com/bancabo/bank_backoffice/internal/core/domain"
	portsrepo "github.com/bancabo/bank_backoffice/internal/core/ports/repositories"
	portssvc "github.com/bancabo/bank_backoffice/internal/core/ports/services"
	"github.com/bancabo/bank_backoffice/internal/dto"
	"github.com/shopspring/decimal"
)

// cuentaService implements the CuentaSvcFacade interface
type cuentaService struct {
	BaseService
	cuentaRepo  portsrepo.CuentaRepositoryFacade
	clienteRepo portsrepo.ClienteReader
}

// NewCuentaService creates a new cuenta service
func NewCuentaService(cuentaRepo portsrepo.CuentaRepositoryFacade, clienteRepo portsrepo.ClienteReader) portssvc.CuentaSvcFacade {
	return &cuentaService{
		cuentaRepo:  cuentaRepo,
		clienteRepo: clienteRepo,
	}
}

var _ portssvc.CuentaSvcFacade = (*cuentaService)(nil)

func (s *cuentaService) CreateCuentaForCliente(ctx context.Context, clienteID int64, req dto.CreateCuentaRequest) (*domain.Cuenta, error) {
	if _, err := s.clienteRepo.FindClienteByID(ctx, clienteID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find cliente for cuenta creation",
				slog.Int64("cliente_id", clienteID))
		}
		return nil, err
	}

	// numero_cuenta is unique across all clientes, not per cliente.
	existing, err := s.cuentaRepo.FindCuentaByNumero(ctx, req.NumeroCuenta)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check numero_cuenta uniqueness")
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: numero_cuenta ya existe", apperrors.ErrDuplicate)
	}

	saldo, err := decimal.NewFromString(req.Monto)
	if err != nil {
		return nil, fmt.Errorf("%w: monto invalido", apperrors.ErrValidation)
	}

	moneda := req.Moneda
	if moneda == "" {
		moneda = domain.MonedaDefault
	}

	cuenta := domain.Cuenta{
		NumeroCuenta: req.NumeroCuenta,
		Tipo:         req.TipoProducto,
		Saldo:        saldo,
		Moneda:       moneda,
		ClienteID:    clienteID,
	}

	if err := s.cuentaRepo.SaveCuenta(ctx, &cuenta); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to save cuenta",
				slog.Int64("cliente_id", clienteID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Cuenta created successfully",
		slog.Int64("cuenta_id", cuenta.ID),
		slog.Int64("cliente_id", clienteID))
	return &cuenta, nil
}

func (s *cuentaService) ListCuentasForCliente(ctx context.Context, clienteID int64) ([]domain.Cuenta, error) {
	if _, err := s.clienteRepo.FindClienteByID(ctx, clienteID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find cliente for cuenta listing",
				slog.Int64("cliente_id", clienteID))
		}
		return nil, err
	}

	cuentas, err := s.cuentaRepo.ListCuentasByCliente(ctx, clienteID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cuentas",
			slog.Int64("cliente_id", clienteID))
		return nil, err
	}
	return cuentas, nil
}

func (s *cuentaService) GetCuentaByID(ctx context.Context, cuentaID int64) (*domain.Cuenta, error) {
	cuenta, err := s.cuentaRepo.FindCuentaByID(ctx, cuentaID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find cuenta by ID",
				slog.Int64("cuenta_id", cuentaID))
		}
		return nil, err
	}
	return cuenta, nil
}

func (s *cuentaService) UpdateCuenta(ctx context.Context, cuentaID int64, req dto.UpdateCuentaRequest) (*domain.Cuenta, error) {
	cuenta, err := s.cuentaRepo.FindCuentaByID(ctx, cuentaID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find cuenta for update",
				slog.Int64("cuenta_id", cuentaID))
		}
		return nil, err
	}

	if req.NumeroCuenta != nil && *req.NumeroCuenta != "" && *req.NumeroCuenta != cuenta.NumeroCuenta {
		taken, err := s.cuentaRepo.FindCuentaByNumero(ctx, *req.NumeroCuenta)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to check numero_cuenta uniqueness for update")
			return nil, err
		}
		if taken != nil {
			return nil, fmt.Errorf("%w: numero_cuenta ya existe", apperrors.ErrDuplicate)
		}
		cuenta.NumeroCuenta = *req.NumeroCuenta
	}
	if req.TipoProducto != nil {
		cuenta.Tipo = *req.TipoProducto
	}
	if req.Moneda != nil {
		cuenta.Moneda = *req.Moneda
	}

	if err := s.cuentaRepo.UpdateCuenta(ctx, *cuenta); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update cuenta",
				slog.Int64("cuenta_id", cuentaID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Cuenta updated successfully",
		slog.Int64("cuenta_id", cuentaID))
	return cuenta, nil
}

func (s *cuentaService) DeleteCuenta(ctx context.Context, cuentaID int64) error {
	if err := s.cuentaRepo.DeleteCuenta(ctx, cuentaID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete cuenta",
				slog.Int64("cuenta_id", cuentaID))
		}
		return err
	}

	s.LogInfo(ctx, "Cuenta deleted successfully",
		slog.Int64("cuenta_id", cuentaID))
	return nil
}
