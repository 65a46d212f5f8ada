package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bancabo/bank_backoffice/internal/apperrors"
	portssvc "github.com/bancabo/bank_backoffice/internal/core/ports/services"
	"github.com/bancabo/bank_backoffice/internal/dto"
	"github.com/bancabo/bank_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// movimientoHandler handles HTTP requests related to movimientos.
type movimientoHandler struct {
	movimientoService portssvc.MovimientoSvcFacade
}

// newMovimientoHandler creates a new movimientoHandler.
func newMovimientoHandler(ms portssvc.MovimientoSvcFacade) *movimientoHandler {
	return &movimientoHandler{
		movimientoService: ms,
	}
}

// registerMovimientoRoutes registers movimiento routes under the cuentas group.
func registerMovimientoRoutes(cuentas *gin.RouterGroup, movimientoService portssvc.MovimientoSvcFacade) {
	h := newMovimientoHandler(movimientoService)

	cuentas.GET("/:id/movimientos", h.listMovimientos)
	cuentas.POST("/:id/movimientos", h.postMovimiento)
}

// postMovimiento godoc
// @Summary Post a movimiento
// @Description Appends a DEPOSITO or RETIRO to the cuenta and adjusts its saldo atomically; a RETIRO larger than the saldo is rejected
// @Tags movimientos
// @Accept  json
// @Produce  json
// @Param   cuentaId path int true "Cuenta ID"
// @Param   movimiento body dto.CreateMovimientoRequest true "Movimiento details"
// @Success 201 {object} dto.MovimientoResponse
// @Failure 400 {object} map[string]string "Invalid input or Saldo insuficiente"
// @Failure 404 {object} map[string]string "Cuenta no encontrada"
// @Router /cuentas/{cuentaId}/movimientos [post]
func (h *movimientoHandler) postMovimiento(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cuentaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateMovimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postMovimiento", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	mov, err := h.movimientoService.PostMovimiento(c.Request.Context(), cuentaID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cuenta no encontrada"})
		} else if errors.Is(err, apperrors.ErrSaldoInsuficiente) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Saldo insuficiente"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to post movimiento", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post movimiento"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMovimientoResponse(mov))
}

// listMovimientos godoc
// @Summary List a cuenta's movimientos
// @Description Retrieves the cuenta's movimientos, newest first
// @Tags movimientos
// @Produce  json
// @Param   cuentaId path int true "Cuenta ID"
// @Success 200 {array} dto.MovimientoResponse
// @Failure 404 {object} map[string]string "Cuenta no encontrada"
// @Router /cuentas/{cuentaId}/movimientos [get]
func (h *movimientoHandler) listMovimientos(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cuentaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	movs, err := h.movimientoService.ListMovimientosForCuenta(c.Request.Context(), cuentaID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cuenta no encontrada"})
		} else {
			logger.Error("Failed to list movimientos", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movimientos"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovimientoResponses(movs))
}
