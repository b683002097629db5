package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmfierro/ventas-campo/internal/adapter/api/dto"
	"github.com/dmfierro/ventas-campo/internal/sincronizacion"
	"github.com/dmfierro/ventas-campo/pkg/logger"
)

// SyncController maneja las peticiones de sincronización de datos
type SyncController struct {
	engine *sincronizacion.Engine
	logger logger.Logger
}

// NewSyncController crea una nueva instancia de SyncController
func NewSyncController(engine *sincronizacion.Engine, logger logger.Logger) *SyncController {
	return &SyncController{
		engine: engine,
		logger: logger,
	}
}

// Sincronizar ejecuta una pasada de sincronización con avisos
// @Summary Sincronizar datos
// @Description Descarga los datos remotos según el rango del vendedor y los persiste localmente
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sync [post]
func (c *SyncController) Sincronizar(ctx *gin.Context) {
	c.responder(ctx, c.engine.SincronizarDatos(ctx.Request.Context()))
}

// Refrescar ejecuta una pasada de sincronización manual
// @Summary Refrescar datos
// @Description Vuelve a descargar los datos remotos a pedido del usuario
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sync/refresh [post]
func (c *SyncController) Refrescar(ctx *gin.Context) {
	c.responder(ctx, c.engine.RefrescarDatos(ctx.Request.Context()))
}

func (c *SyncController) responder(ctx *gin.Context, err error) {
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Datos sincronizados", nil))
	case errors.Is(err, sincronizacion.ErrSesionRequerida):
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "no hay una sesión activa", err.Error()))
	case errors.Is(err, sincronizacion.ErrVendedorNoEncontrado):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "no existe un vendedor para esta cuenta", err.Error()))
	default:
		c.logger.Error("Error al sincronizar datos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "la sincronización falló", err.Error()))
	}
}
