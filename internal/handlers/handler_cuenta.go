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

// cuentaHandler handles HTTP requests related to cuentas.
type cuentaHandler struct {
	cuentaService portssvc.CuentaSvcFacade
}

// newCuentaHandler creates a new cuentaHandler.
func newCuentaHandler(as portssvc.CuentaSvcFacade) *cuentaHandler {
	return &cuentaHandler{
		cuentaService: as,
	}
}

// registerCuentaRoutes registers the /cuentas routes, movimientos included.
func registerCuentaRoutes(r *gin.Engine, cuentaService portssvc.CuentaSvcFacade, movimientoService portssvc.MovimientoSvcFacade) {
	h := newCuentaHandler(cuentaService)

	cuentas := r.Group("/cuentas")
	{
		cuentas.GET("/:id", h.getCuentaByID)
		cuentas.PUT("/:id", h.updateCuenta)
		cuentas.DELETE("/:id", h.deleteCuenta)
	}

	registerMovimientoRoutes(cuentas, movimientoService)
}

// getCuentaByID godoc
// @Summary Get a cuenta
// @Description Retrieves a cuenta by id, saldo included
// @Tags cuentas
// @Produce  json
// @Param   id path int true "Cuenta ID"
// @Success 200 {object} dto.CuentaResponse
// @Failure 404 {object} map[string]string "Cuenta no encontrada"
// @Router /cuentas/{id} [get]
func (h *cuentaHandler) getCuentaByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cuentaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cuenta, err := h.cuentaService.GetCuentaByID(c.Request.Context(), cuentaID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cuenta no encontrada"})
		} else {
			logger.Error("Failed to get cuenta", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cuenta"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCuentaResponse(cuenta))
}

// updateCuenta godoc
// @Summary Patch a cuenta
// @Description Applies a partial update to numero_cuenta, tipo_producto and moneda; the saldo cannot be patched
// @Tags cuentas
// @Accept  json
// @Produce  json
// @Param   id path int true "Cuenta ID"
// @Param   cuenta body dto.UpdateCuentaRequest true "Fields to update"
// @Success 200 {object} dto.CuentaResponse
// @Failure 400 {object} map[string]string "Invalid input or duplicate numero_cuenta"
// @Failure 404 {object} map[string]string "Cuenta no encontrada"
// @Router /cuentas/{id} [put]
func (h *cuentaHandler) updateCuenta(c *gin.Context) {
	updateCuentaByID(c, h.cuentaService, "id")
}

// deleteCuenta godoc
// @Summary Delete a cuenta
// @Description Hard-deletes the cuenta together with its movimientos
// @Tags cuentas
// @Produce  json
// @Param   id path int true "Cuenta ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Cuenta no encontrada"
// @Router /cuentas/{id} [delete]
func (h *cuentaHandler) deleteCuenta(c *gin.Context) {
	deleteCuentaByID(c, h.cuentaService, "id")
}

// updateCuentaByID is shared by PUT /cuentas/:id and its legacy alias
// PUT /clientes/cuentas/:cuentaId.
func updateCuentaByID(c *gin.Context, svc portssvc.CuentaSvcFacade, param string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cuentaID, ok := parseIDParam(c, param)
	if !ok {
		return
	}

	var req dto.UpdateCuentaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateCuenta", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cuenta, err := svc.UpdateCuenta(c.Request.Context(), cuentaID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cuenta no encontrada"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "numero_cuenta ya existe"})
		} else {
			logger.Error("Failed to update cuenta", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cuenta"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCuentaResponse(cuenta))
}

// deleteCuentaByID is shared by DELETE /cuentas/:id and its legacy alias
// DELETE /clientes/cuentas/:cuentaId.
func deleteCuentaByID(c *gin.Context, svc portssvc.CuentaSvcFacade, param string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cuentaID, ok := parseIDParam(c, param)
	if !ok {
		return
	}

	if err := svc.DeleteCuenta(c.Request.Context(), cuentaID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cuenta no encontrada"})
		} else {
			logger.Error("Failed to delete cuenta", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cuenta"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
