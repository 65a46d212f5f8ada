package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bancabo/bank_backoffice/internal/apperrors"
	"github.com/bancabo/bank_backoffice/internal/core/domain"
	portssvc "github.com/bancabo/bank_backoffice/internal/core/ports/services"
	"github.com/bancabo/bank_backoffice/internal/dto"
	"github.com/bancabo/bank_backoffice/internal/handlers"
	"github.com/bancabo/bank_backoffice/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClienteService ---
type MockClienteService struct {
	mock.Mock
}

func (m *MockClienteService) CreateCliente(ctx context.Context, req dto.CreateClienteRequest) (*domain.Cliente, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}
func (m *MockClienteService) ListClientes(ctx context.Context) ([]domain.Cliente, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cliente), args.Error(1)
}
func (m *MockClienteService) GetClienteByID(ctx context.Context, clienteID int64) (*domain.Cliente, error) {
	args := m.Called(ctx, clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}
func (m *MockClienteService) UpdateCliente(ctx context.Context, clienteID int64, req dto.UpdateClienteRequest) (*domain.Cliente, error) {
	args := m.Called(ctx, clienteID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}
func (m *MockClienteService) DeleteCliente(ctx context.Context, clienteID int64) error {
	args := m.Called(ctx, clienteID)
	return args.Error(0)
}
func (m *MockClienteService) NormalizeGeneros(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portssvc.ClienteSvcFacade = (*MockClienteService)(nil)

// --- Mock CuentaService ---
type MockCuentaService struct {
	mock.Mock
}

func (m *MockCuentaService) CreateCuentaForCliente(ctx context.Context, clienteID int64, req dto.CreateCuentaRequest) (*domain.Cuenta, error) {
	args := m.Called(ctx, clienteID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cuenta), args.Error(1)
}
func (m *MockCuentaService) ListCuentasForCliente(ctx context.Context, clienteID int64) ([]domain.Cuenta, error) {
	args := m.Called(ctx, clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cuenta), args.Error(1)
}
func (m *MockCuentaService) GetCuentaByID(ctx context.Context, cuentaID int64) (*domain.Cuenta, error) {
	args := m.Called(ctx, cuentaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cuenta), args.Error(1)
}
func (m *MockCuentaService) UpdateCuenta(ctx context.Context, cuentaID int64, req dto.UpdateCuentaRequest) (*domain.Cuenta, error) {
	args := m.Called(ctx, cuentaID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cuenta), args.Error(1)
}
func (m *MockCuentaService) DeleteCuenta(ctx context.Context, cuentaID int64) error {
	args := m.Called(ctx, cuentaID)
	return args.Error(0)
}

var _ portssvc.CuentaSvcFacade = (*MockCuentaService)(nil)

// --- Mock MovimientoService ---
type MockMovimientoService struct {
	mock.Mock
}

func (m *MockMovimientoService) PostMovimiento(ctx context.Context, cuentaID int64, req dto.CreateMovimientoRequest) (*domain.Movimiento, error) {
	args := m.Called(ctx, cuentaID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movimiento), args.Error(1)
}
func (m *MockMovimientoService) ListMovimientosForCuenta(ctx context.Context, cuentaID int64) ([]domain.Movimiento, error) {
	args := m.Called(ctx, cuentaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movimiento), args.Error(1)
}

var _ portssvc.MovimientoSvcFacade = (*MockMovimientoService)(nil)

// --- Test Suite ---
type ClienteHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockClienteService    *MockClienteService
	mockCuentaService     *MockCuentaService
	mockMovimientoService *MockMovimientoService
}

func (suite *ClienteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockClienteService = new(MockClienteService)
	suite.mockCuentaService = new(MockCuentaService)
	suite.mockMovimientoService = new(MockMovimientoService)

	container := &portssvc.ServiceContainer{
		Cliente:    suite.mockClienteService,
		Cuenta:     suite.mockCuentaService,
		Movimiento: suite.mockMovimientoService,
	}
	// IsProduction skips the swagger routes; they are not under test.
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, container)
}

func (suite *ClienteHandlerTestSuite) serve(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ClienteHandlerTestSuite) TestCreateCliente_Success() {
	req := dto.CreateClienteRequest{
		Nombre:             "Maria",
		Paterno:            "Fernandez",
		Materno:            "Quispe",
		TipoDocumento:      "CI",
		DocumentoIdentidad: "6723981",
		FechaNacimiento:    "1990-04-17",
		Genero:             "F",
	}
	created := &domain.Cliente{
		ID:                 7,
		Nombre:             req.Nombre,
		Paterno:            req.Paterno,
		Materno:            req.Materno,
		TipoDocumento:      req.TipoDocumento,
		DocumentoIdentidad: req.DocumentoIdentidad,
		FechaNacimiento:    time.Date(1990, 4, 17, 0, 0, 0, 0, time.UTC),
		Genero:             domain.GeneroFemenino,
		FechaCreacion:      time.Now(),
	}

	suite.mockClienteService.On("CreateCliente", mock.Anything, req).Return(created, nil).Once()

	w := suite.serve(http.MethodPost, "/clientes", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ClienteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7), resp.ID)
	suite.Equal("1990-04-17", resp.FechaNacimiento)
	suite.mockClienteService.AssertExpectations(suite.T())
}

func (suite *ClienteHandlerTestSuite) TestCreateCliente_DuplicateDocumento() {
	req := dto.CreateClienteRequest{
		Nombre:             "Maria",
		Paterno:            "Fernandez",
		Materno:            "Quispe",
		TipoDocumento:      "CI",
		DocumentoIdentidad: "6723981",
		FechaNacimiento:    "1990-04-17",
		Genero:             "F",
	}

	suite.mockClienteService.On("CreateCliente", mock.Anything, req).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.serve(http.MethodPost, "/clientes", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "documento_identidad ya existe")
	suite.mockClienteService.AssertExpectations(suite.T())
}

func (suite *ClienteHandlerTestSuite) TestCreateCliente_MalformedBody() {
	w := suite.serve(http.MethodPost, "/clientes", gin.H{"nombre": "X"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockClienteService.AssertNotCalled(suite.T(), "CreateCliente", mock.Anything, mock.Anything)
}

func (suite *ClienteHandlerTestSuite) TestGetCliente_WithCuentas() {
	cliente := &domain.Cliente{
		ID:     5,
		Nombre: "Juan",
		Genero: domain.GeneroMasculino,
		Cuentas: []domain.Cuenta{
			{ID: 12, NumeroCuenta: "LPZ-000001", Saldo: decimal.RequireFromString("1500.50"), Moneda: "BOB", ClienteID: 5},
		},
	}

	suite.mockClienteService.On("GetClienteByID", mock.Anything, int64(5)).Return(cliente, nil).Once()

	w := suite.serve(http.MethodGet, "/clientes/5", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ClienteDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Cuentas, 1)
	suite.Equal("LPZ-000001", resp.Cuentas[0].NumeroCuenta)
	suite.Equal("1500.5", resp.Cuentas[0].Saldo.String())
	suite.mockClienteService.AssertExpectations(suite.T())
}

func (suite *ClienteHandlerTestSuite) TestGetCliente_NotFound() {
	suite.mockClienteService.On("GetClienteByID", mock.Anything, int64(999)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/clientes/999", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Cliente no encontrado")
	suite.mockClienteService.AssertExpectations(suite.T())
}

func (suite *ClienteHandlerTestSuite) TestFixGeneros_DispatchedFromWildcard() {
	suite.mockClienteService.On("NormalizeGeneros", mock.Anything).Return(nil).Once()

	w := suite.serve(http.MethodGet, "/clientes/fix-generos", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"ok": true}`, w.Body.String())
	suite.mockClienteService.AssertNotCalled(suite.T(), "GetClienteByID", mock.Anything, mock.Anything)
	suite.mockClienteService.AssertExpectations(suite.T())
}

func (suite *ClienteHandlerTestSuite) TestUpdateCliente_Success() {
	nombre := "Carlos"
	updated := &domain.Cliente{ID: 5, Nombre: nombre}

	suite.mockClienteService.On("UpdateCliente", mock.Anything, int64(5), mock.MatchedBy(func(r dto.UpdateClienteRequest) bool {
		return r.Nombre != nil && *r.Nombre == nombre
	})).Return(updated, nil).Once()

	w := suite.serve(http.MethodPut, "/clientes/5", gin.H{"nombre": nombre})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockClienteService.AssertExpectations(suite.T())
}

func (suite *ClienteHandlerTestSuite) TestUpdateCliente_InvalidID() {
	w := suite.serve(http.MethodPut, "/clientes/abc", gin.H{"nombre": "Carlos"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockClienteService.AssertNotCalled(suite.T(), "UpdateCliente", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClienteHandlerTestSuite) TestDeleteCliente_Success() {
	suite.mockClienteService.On("DeleteCliente", mock.Anything, int64(5)).Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/clientes/5", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"ok": true}`, w.Body.String())
	suite.mockClienteService.AssertExpectations(suite.T())
}

func (suite *ClienteHandlerTestSuite) TestCreateCuenta_UnderCliente() {
	req := dto.CreateCuentaRequest{
		TipoProducto: "Caja de Ahorro",
		NumeroCuenta: "LPZ-000001",
		Moneda:       "BOB",
		Monto:        "1000.00",
		Sucursal:     "La Paz Centro",
	}
	created := &domain.Cuenta{ID: 12, NumeroCuenta: req.NumeroCuenta, Saldo: decimal.RequireFromString("1000.00"), Moneda: "BOB", ClienteID: 5}

	suite.mockCuentaService.On("CreateCuentaForCliente", mock.Anything, int64(5), req).Return(created, nil).Once()

	w := suite.serve(http.MethodPost, "/clientes/5/cuentas", req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockCuentaService.AssertExpectations(suite.T())
}

func (suite *ClienteHandlerTestSuite) TestCreateCuenta_DuplicateNumero() {
	req := dto.CreateCuentaRequest{
		TipoProducto: "Caja de Ahorro",
		NumeroCuenta: "LPZ-000001",
		Moneda:       "BOB",
		Monto:        "0",
		Sucursal:     "La Paz Centro",
	}

	suite.mockCuentaService.On("CreateCuentaForCliente", mock.Anything, int64(5), req).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.serve(http.MethodPost, "/clientes/5/cuentas", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "numero_cuenta ya existe")
	suite.mockCuentaService.AssertExpectations(suite.T())
}

func (suite *ClienteHandlerTestSuite) TestListCuentas_ClienteNotFound() {
	suite.mockCuentaService.On("ListCuentasForCliente", mock.Anything, int64(999)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/clientes/999/cuentas", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCuentaService.AssertExpectations(suite.T())
}

func (suite *ClienteHandlerTestSuite) TestUpdateCuenta_LegacyAlias() {
	tipo := "Cuenta Corriente"
	updated := &domain.Cuenta{ID: 12, Tipo: tipo}

	suite.mockCuentaService.On("UpdateCuenta", mock.Anything, int64(12), mock.MatchedBy(func(r dto.UpdateCuentaRequest) bool {
		return r.TipoProducto != nil && *r.TipoProducto == tipo
	})).Return(updated, nil).Once()

	w := suite.serve(http.MethodPut, "/clientes/cuentas/12", gin.H{"tipo_producto": tipo})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockCuentaService.AssertExpectations(suite.T())
}

func (suite *ClienteHandlerTestSuite) TestDeleteCuenta_LegacyAlias() {
	suite.mockCuentaService.On("DeleteCuenta", mock.Anything, int64(12)).Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/clientes/cuentas/12", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"ok": true}`, w.Body.String())
	suite.mockCuentaService.AssertExpectations(suite.T())
}

func (suite *ClienteHandlerTestSuite) TestDeleteCuentaAlias_WrongStaticSegment() {
	w := suite.serve(http.MethodDelete, "/clientes/otracosa/12", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCuentaService.AssertNotCalled(suite.T(), "DeleteCuenta", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestClienteHandler(t *testing.T) {
	suite.Run(t, new(ClienteHandlerTestSuite))
}
