package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/bancabo/bank_backoffice/internal/apperrors"
	"github.com/bancabo/bank_backoffice/internal/core/domain"
	"github.com/bancabo/bank_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MovimientoHandlerTestSuite struct {
	ClienteHandlerTestSuite
}

// --- Test Cases ---

func (suite *MovimientoHandlerTestSuite) TestPostMovimiento_Deposito() {
	created := &domain.Movimiento{
		ID:       42,
		Tipo:     domain.MovimientoDeposito,
		Monto:    decimal.RequireFromString("500.50"),
		CuentaID: 12,
		CreadoEn: time.Now(),
	}

	suite.mockMovimientoService.On("PostMovimiento", mock.Anything, int64(12), mock.MatchedBy(func(r dto.CreateMovimientoRequest) bool {
		return r.Tipo == "DEPOSITO" && r.Monto.Equal(created.Monto)
	})).Return(created, nil).Once()

	w := suite.serve(http.MethodPost, "/cuentas/12/movimientos", gin.H{"tipo": "DEPOSITO", "monto": "500.50"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.MovimientoResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(42), resp.ID)
	suite.Equal("DEPOSITO", resp.Tipo)
	suite.mockMovimientoService.AssertExpectations(suite.T())
}

func (suite *MovimientoHandlerTestSuite) TestPostMovimiento_SaldoInsuficiente() {
	suite.mockMovimientoService.On("PostMovimiento", mock.Anything, int64(12), mock.AnythingOfType("dto.CreateMovimientoRequest")).Return(nil, apperrors.ErrSaldoInsuficiente).Once()

	w := suite.serve(http.MethodPost, "/cuentas/12/movimientos", gin.H{"tipo": "RETIRO", "monto": "2000.00"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Saldo insuficiente")
	suite.mockMovimientoService.AssertExpectations(suite.T())
}

func (suite *MovimientoHandlerTestSuite) TestPostMovimiento_CuentaNotFound() {
	suite.mockMovimientoService.On("PostMovimiento", mock.Anything, int64(999), mock.AnythingOfType("dto.CreateMovimientoRequest")).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodPost, "/cuentas/999/movimientos", gin.H{"tipo": "DEPOSITO", "monto": "10"})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Cuenta no encontrada")
	suite.mockMovimientoService.AssertExpectations(suite.T())
}

func (suite *MovimientoHandlerTestSuite) TestPostMovimiento_RejectsNonPositiveMonto() {
	w := suite.serve(http.MethodPost, "/cuentas/12/movimientos", gin.H{"tipo": "DEPOSITO", "monto": "0"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMovimientoService.AssertNotCalled(suite.T(), "PostMovimiento", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MovimientoHandlerTestSuite) TestPostMovimiento_RejectsUnknownTipo() {
	w := suite.serve(http.MethodPost, "/cuentas/12/movimientos", gin.H{"tipo": "TRANSFERENCIA", "monto": "10"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMovimientoService.AssertNotCalled(suite.T(), "PostMovimiento", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MovimientoHandlerTestSuite) TestListMovimientos_Success() {
	movs := []domain.Movimiento{
		{ID: 2, Tipo: domain.MovimientoRetiro, Monto: decimal.RequireFromString("100"), CuentaID: 12},
		{ID: 1, Tipo: domain.MovimientoDeposito, Monto: decimal.RequireFromString("500.50"), CuentaID: 12},
	}

	suite.mockMovimientoService.On("ListMovimientosForCuenta", mock.Anything, int64(12)).Return(movs, nil).Once()

	w := suite.serve(http.MethodGet, "/cuentas/12/movimientos", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.MovimientoResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal(int64(2), resp[0].ID)
	suite.mockMovimientoService.AssertExpectations(suite.T())
}

func (suite *MovimientoHandlerTestSuite) TestListMovimientos_CuentaNotFound() {
	suite.mockMovimientoService.On("ListMovimientosForCuenta", mock.Anything, int64(999)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/cuentas/999/movimientos", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockMovimientoService.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestMovimientoHandler(t *testing.T) {
	suite.Run(t, new(MovimientoHandlerTestSuite))
}
