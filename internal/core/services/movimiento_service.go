package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bancabo/bank_backoffice/internal/apperrors"
	"github.com/bancabo/bank_backoffice/internal/core/domain"
	portsrepo "github.com/bancabo/bank_backoffice/internal/core/ports/repositories"
	portssvc "github.com/bancabo/bank_backoffice/internal/core/ports/services"
	"github.com/bancabo/bank_backoffice/internal/dto"
)

// movimientoService implements the MovimientoSvcFacade interface
type movimientoService struct {
	BaseService
	movimientoRepo portsrepo.MovimientoRepositoryFacade
	cuentaRepo     portsrepo.CuentaReader
}

// NewMovimientoService creates a new movimiento service
func NewMovimientoService(movimientoRepo portsrepo.MovimientoRepositoryFacade, cuentaRepo portsrepo.CuentaReader) portssvc.MovimientoSvcFacade {
	return &movimientoService{
		movimientoRepo: movimientoRepo,
		cuentaRepo:     cuentaRepo,
	}
}

var _ portssvc.MovimientoSvcFacade = (*movimientoService)(nil)

func (s *movimientoService) PostMovimiento(ctx context.Context, cuentaID int64, req dto.CreateMovimientoRequest) (*domain.Movimiento, error) {
	mov := domain.Movimiento{
		Tipo:        domain.TipoMovimiento(req.Tipo),
		Monto:       req.Monto,
		Descripcion: req.Descripcion,
		CuentaID:    cuentaID,
	}

	// The repository does the existence check, the funds check and the
	// balance write under one row lock; checking here first would race.
	if err := s.movimientoRepo.SaveMovimiento(ctx, &mov); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrSaldoInsuficiente) {
			s.LogError(ctx, err, "Failed to post movimiento",
				slog.Int64("cuenta_id", cuentaID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Movimiento posted successfully",
		slog.Int64("movimiento_id", mov.ID),
		slog.Int64("cuenta_id", cuentaID),
		slog.String("tipo", string(mov.Tipo)),
		slog.String("monto", mov.Monto.String()))
	return &mov, nil
}

func (s *movimientoService) ListMovimientosForCuenta(ctx context.Context, cuentaID int64) ([]domain.Movimiento, error) {
	if _, err := s.cuentaRepo.FindCuentaByID(ctx, cuentaID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find cuenta for movimiento listing",
				slog.Int64("cuenta_id", cuentaID))
		}
		return nil, err
	}

	movimientos, err := s.movimientoRepo.ListMovimientosByCuenta(ctx, cuentaID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movimientos",
			slog.Int64("cuenta_id", cuentaID))
		return nil, err
	}
	return movimientos, nil
}
