package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bancabo/bank_backoffice/internal/apperrors"
	"github.com/bancabo/bank_backoffice/internal/core/domain"
	portsrepo "github.com/bancabo/bank_backoffice/internal/core/ports/repositories"
	portssvc "github.com/bancabo/bank_backoffice/internal/core/ports/services"
	"github.com/bancabo/bank_backoffice/internal/dto"
)

// clienteService implements the ClienteSvcFacade interface
type clienteService struct {
	BaseService
	clienteRepo portsrepo.ClienteRepositoryFacade
	cuentaRepo  portsrepo.CuentaReader
}

// NewClienteService creates a new cliente service
func NewClienteService(clienteRepo portsrepo.ClienteRepositoryFacade, cuentaRepo portsrepo.CuentaReader) portssvc.ClienteSvcFacade {
	return &clienteService{
		clienteRepo: clienteRepo,
		cuentaRepo:  cuentaRepo,
	}
}

var _ portssvc.ClienteSvcFacade = (*clienteService)(nil)

func (s *clienteService) CreateCliente(ctx context.Context, req dto.CreateClienteRequest) (*domain.Cliente, error) {
	// Uniqueness only counts active rows: a soft-deleted cliente frees its
	// documento_identidad for reuse. The partial unique index covers races.
	existing, err := s.clienteRepo.FindClienteByDocumento(ctx, req.DocumentoIdentidad, 0)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check documento uniqueness")
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: documento_identidad ya existe", apperrors.ErrDuplicate)
	}

	fechaNacimiento, err := time.Parse(time.DateOnly, req.FechaNacimiento)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha_nacimiento invalida", apperrors.ErrValidation)
	}

	cliente := domain.Cliente{
		Nombre:             req.Nombre,
		Paterno:            req.Paterno,
		Materno:            req.Materno,
		TipoDocumento:      req.TipoDocumento,
		DocumentoIdentidad: req.DocumentoIdentidad,
		FechaNacimiento:    fechaNacimiento,
		Genero:             domain.Genero(req.Genero),
	}

	if err := s.clienteRepo.SaveCliente(ctx, &cliente); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save cliente")
		}
		return nil, err
	}

	s.LogInfo(ctx, "Cliente created successfully",
		slog.Int64("cliente_id", cliente.ID))
	return &cliente, nil
}

func (s *clienteService) ListClientes(ctx context.Context) ([]domain.Cliente, error) {
	clientes, err := s.clienteRepo.ListClientes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clientes")
		return nil, err
	}
	return clientes, nil
}

func (s *clienteService) GetClienteByID(ctx context.Context, clienteID int64) (*domain.Cliente, error) {
	cliente, err := s.clienteRepo.FindClienteByID(ctx, clienteID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find cliente by ID",
				slog.Int64("cliente_id", clienteID))
		}
		return nil, err
	}

	cuentas, err := s.cuentaRepo.ListCuentasByCliente(ctx, clienteID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cuentas for cliente",
			slog.Int64("cliente_id", clienteID))
		return nil, err
	}
	cliente.Cuentas = cuentas

	return cliente, nil
}

func (s *clienteService) UpdateCliente(ctx context.Context, clienteID int64, req dto.UpdateClienteRequest) (*domain.Cliente, error) {
	cliente, err := s.clienteRepo.FindClienteByID(ctx, clienteID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find cliente for update",
				slog.Int64("cliente_id", clienteID))
		}
		return nil, err
	}

	if req.Nombre != nil {
		cliente.Nombre = *req.Nombre
	}
	if req.Paterno != nil {
		cliente.Paterno = *req.Paterno
	}
	if req.Materno != nil {
		cliente.Materno = *req.Materno
	}
	if req.TipoDocumento != nil {
		cliente.TipoDocumento = *req.TipoDocumento
	}
	if req.DocumentoIdentidad != nil && *req.DocumentoIdentidad != "" && *req.DocumentoIdentidad != cliente.DocumentoIdentidad {
		taken, err := s.clienteRepo.FindClienteByDocumento(ctx, *req.DocumentoIdentidad, clienteID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to check documento uniqueness for update")
			return nil, err
		}
		if taken != nil {
			return nil, fmt.Errorf("%w: documento_identidad ya existe", apperrors.ErrDuplicate)
		}
		cliente.DocumentoIdentidad = *req.DocumentoIdentidad
	}
	if req.FechaNacimiento != nil {
		fechaNacimiento, err := time.Parse(time.DateOnly, *req.FechaNacimiento)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha_nacimiento invalida", apperrors.ErrValidation)
		}
		cliente.FechaNacimiento = fechaNacimiento
	}
	if req.Genero != nil {
		cliente.Genero = domain.Genero(*req.Genero)
	}

	if err := s.clienteRepo.UpdateCliente(ctx, *cliente); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update cliente",
				slog.Int64("cliente_id", clienteID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Cliente updated successfully",
		slog.Int64("cliente_id", clienteID))
	return cliente, nil
}

func (s *clienteService) DeleteCliente(ctx context.Context, clienteID int64) error {
	// Soft delete: the row stays, its cuentas stay addressable and the
	// documento becomes reusable by a new active cliente.
	if err := s.clienteRepo.SoftDeleteCliente(ctx, clienteID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete cliente",
				slog.Int64("cliente_id", clienteID))
		}
		return err
	}

	s.LogInfo(ctx, "Cliente deleted successfully",
		slog.Int64("cliente_id", clienteID))
	return nil
}

func (s *clienteService) NormalizeGeneros(ctx context.Context) error {
	if err := s.clienteRepo.NormalizeGeneros(ctx); err != nil {
		s.LogError(ctx, err, "Failed to normalize generos")
		return err
	}

	s.LogInfo(ctx, "Generos normalized successfully")
	return nil
}
