package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bancabo/bank_backoffice/internal/apperrors"
	portssvc "github.com/bancabo/bank_backoffice/internal/core/ports/services"
	"github.com/bancabo/bank_backoffice/internal/dto"
	"github.com/bancabo/bank_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clienteHandler handles HTTP requests related to clientes. It also serves
// the legacy /clientes/cuentas/:cuentaId alias, which is why it carries the
// cuenta service too.
type clienteHandler struct {
	clienteService portssvc.ClienteSvcFacade
	cuentaService  portssvc.CuentaSvcFacade
}

// newClienteHandler creates a new clienteHandler.
func newClienteHandler(cs portssvc.ClienteSvcFacade, as portssvc.CuentaSvcFacade) *clienteHandler {
	return &clienteHandler{
		clienteService: cs,
		cuentaService:  as,
	}
}

// registerClienteRoutes registers routes related to clientes.
//
// The router cannot mix the static segments "fix-generos" and "cuentas" with
// the :id wildcard at the same path position, so GET /clientes/fix-generos
// rides on the :id handler and PUT/DELETE /clientes/cuentas/:cuentaId ride on
// a :id/:cuentaID pair that only answers when :id is the literal "cuentas".
// The external surface is exactly the documented one.
func registerClienteRoutes(r *gin.Engine, clienteService portssvc.ClienteSvcFacade, cuentaService portssvc.CuentaSvcFacade) {
	h := newClienteHandler(clienteService, cuentaService)

	clientes := r.Group("/clientes")
	{
		clientes.POST("", h.createCliente)
		clientes.GET("", h.listClientes)
		clientes.GET("/:id", h.getClienteByID)
		clientes.PUT("/:id", h.updateCliente)
		clientes.DELETE("/:id", h.deleteCliente)
		clientes.POST("/:id/cuentas", h.createCuenta)
		clientes.GET("/:id/cuentas", h.listCuentas)
		clientes.PUT("/:id/:cuentaID", h.updateCuentaAlias)
		clientes.DELETE("/:id/:cuentaID", h.deleteCuentaAlias)
	}
}

// parseIDParam parses a positive int64 path parameter.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador invalido"})
		return 0, false
	}
	return id, true
}

// createCliente godoc
// @Summary Create a new cliente
// @Description Registers a new cliente; the documento_identidad must be free among active clientes
// @Tags clientes
// @Accept  json
// @Produce  json
// @Param   cliente body dto.CreateClienteRequest true "Cliente details"
// @Success 201 {object} dto.ClienteResponse
// @Failure 400 {object} map[string]string "Invalid input or duplicate documento_identidad"
// @Router /clientes [post]
func (h *clienteHandler) createCliente(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCliente", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cliente, err := h.clienteService.CreateCliente(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create cliente with duplicate documento")
			c.JSON(http.StatusBadRequest, gin.H{"error": "documento_identidad ya existe"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create cliente", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cliente"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToClienteResponse(cliente))
}

// listClientes godoc
// @Summary List clientes
// @Description Retrieves all active clientes, newest first
// @Tags clientes
// @Produce  json
// @Success 200 {array} dto.ClienteResponse
// @Router /clientes [get]
func (h *clienteHandler) listClientes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clientes, err := h.clienteService.ListClientes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list clientes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list clientes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToClienteResponses(clientes))
}

// getClienteByID godoc
// @Summary Get a cliente with its cuentas
// @Description Retrieves an active cliente by id, cuentas attached. The literal id "fix-generos" triggers the gender normalization maintenance instead.
// @Tags clientes
// @Produce  json
// @Param   id path string true "Cliente ID"
// @Success 200 {object} dto.ClienteDetailResponse
// @Failure 404 {object} map[string]string "Cliente no encontrado"
// @Router /clientes/{id} [get]
func (h *clienteHandler) getClienteByID(c *gin.Context) {
	if c.Param("id") == "fix-generos" {
		h.fixGeneros(c)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clienteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cliente, err := h.clienteService.GetClienteByID(c.Request.Context(), clienteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
		} else {
			logger.Error("Failed to get cliente", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cliente"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToClienteDetailResponse(cliente))
}

// fixGeneros runs the one-shot gender data repair (GET /clientes/fix-generos).
func (h *clienteHandler) fixGeneros(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.clienteService.NormalizeGeneros(c.Request.Context()); err != nil {
		logger.Error("Failed to normalize generos", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to normalize generos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// updateCliente godoc
// @Summary Patch a cliente
// @Description Applies a partial update; a documento_identidad change re-checks uniqueness among active clientes
// @Tags clientes
// @Accept  json
// @Produce  json
// @Param   id path int true "Cliente ID"
// @Param   cliente body dto.UpdateClienteRequest true "Fields to update"
// @Success 200 {object} dto.ClienteResponse
// @Failure 400 {object} map[string]string "Invalid input or duplicate documento_identidad"
// @Failure 404 {object} map[string]string "Cliente no encontrado"
// @Router /clientes/{id} [put]
func (h *clienteHandler) updateCliente(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clienteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateCliente", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cliente, err := h.clienteService.UpdateCliente(c.Request.Context(), clienteID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "documento_identidad ya existe"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update cliente", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cliente"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToClienteResponse(cliente))
}

// deleteCliente godoc
// @Summary Soft-delete a cliente
// @Description Marks the cliente as deleted; its documento_identidad becomes reusable and its cuentas stay addressable
// @Tags clientes
// @Produce  json
// @Param   id path int true "Cliente ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Cliente no encontrado"
// @Router /clientes/{id} [delete]
func (h *clienteHandler) deleteCliente(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clienteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.clienteService.DeleteCliente(c.Request.Context(), clienteID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
		} else {
			logger.Error("Failed to delete cliente", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cliente"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// createCuenta godoc
// @Summary Create a cuenta under a cliente
// @Description Opens a cuenta for the cliente; numero_cuenta must be unique across all clientes
// @Tags cuentas
// @Accept  json
// @Produce  json
// @Param   clienteId path int true "Cliente ID"
// @Param   cuenta body dto.CreateCuentaRequest true "Cuenta details"
// @Success 201 {object} dto.CuentaResponse
// @Failure 400 {object} map[string]string "Invalid input or duplicate numero_cuenta"
// @Failure 404 {object} map[string]string "Cliente no encontrado"
// @Router /clientes/{clienteId}/cuentas [post]
func (h *clienteHandler) createCuenta(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clienteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCuentaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCuenta", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cuenta, err := h.cuentaService.CreateCuentaForCliente(c.Request.Context(), clienteID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "numero_cuenta ya existe"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create cuenta", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cuenta"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCuentaResponse(cuenta))
}

// listCuentas godoc
// @Summary List a cliente's cuentas
// @Description Retrieves the cliente's cuentas, newest first
// @Tags cuentas
// @Produce  json
// @Param   clienteId path int true "Cliente ID"
// @Success 200 {array} dto.CuentaResponse
// @Failure 404 {object} map[string]string "Cliente no encontrado"
// @Router /clientes/{clienteId}/cuentas [get]
func (h *clienteHandler) listCuentas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clienteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cuentas, err := h.cuentaService.ListCuentasForCliente(c.Request.Context(), clienteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
		} else {
			logger.Error("Failed to list cuentas", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cuentas"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCuentaResponses(cuentas))
}

// updateCuentaAlias serves PUT /clientes/cuentas/:cuentaId. Any other value
// in the first wildcard is not a route we expose.
func (h *clienteHandler) updateCuentaAlias(c *gin.Context) {
	if c.Param("id") != "cuentas" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recurso no encontrado"})
		return
	}
	updateCuentaByID(c, h.cuentaService, "cuentaID")
}

// deleteCuentaAlias serves DELETE /clientes/cuentas/:cuentaId.
func (h *clienteHandler) deleteCuentaAlias(c *gin.Context) {
	if c.Param("id") != "cuentas" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recurso no encontrado"})
		return
	}
	deleteCuentaByID(c, h.cuentaService, "cuentaID")
}
