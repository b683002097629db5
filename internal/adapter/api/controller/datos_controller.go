package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmfierro/ventas-campo/internal/adapter/api/dto"
	"github.com/dmfierro/ventas-campo/internal/sincronizacion"
)

// DatosController expone las colecciones del almacén de datos en memoria
type DatosController struct {
	store *sincronizacion.DataStore
	notif *sincronizacion.MemoriaNotificador
}

// NewDatosController crea una nueva instancia de DatosController
func NewDatosController(store *sincronizacion.DataStore, notif *sincronizacion.MemoriaNotificador) *DatosController {
	return &DatosController{
		store: store,
		notif: notif,
	}
}

// Estado devuelve el estado del almacén de datos
// @Summary Estado de los datos
// @Description Indica si los datos locales siguen cargando y el resultado de la última sincronización
// @Tags datos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.EstadoResponse
// @Router /datos/estado [get]
func (c *DatosController) Estado(ctx *gin.Context) {
	resp := dto.EstadoResponse{Cargando: c.store.EstaCargando()}
	if t := c.store.UltimaSync(); !t.IsZero() {
		resp.UltimaSync = &t
	}
	if n := c.notif.Ultima(); n != nil {
		resp.UltimaNotificacion = &dto.NotificacionResponse{
			Exito:   n.Exito,
			Titulo:  n.Titulo,
			Detalle: n.Detalle,
			Fecha:   n.Fecha,
		}
	}
	ctx.JSON(http.StatusOK, resp)
}

// Productos devuelve el catálogo de productos
// @Summary Listar productos
// @Tags datos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} producto.Producto
// @Router /datos/productos [get]
func (c *DatosController) Productos(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.Productos())
}

// Clientes devuelve la cartera de clientes
// @Summary Listar clientes
// @Tags datos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} cliente.Cliente
// @Router /datos/clientes [get]
func (c *DatosController) Clientes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.Clientes())
}

// Categorias devuelve las categorías de productos
// @Summary Listar categorías
// @Tags datos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} producto.Categoria
// @Router /datos/categorias [get]
func (c *DatosController) Categorias(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.Categorias())
}

// Promociones devuelve las promociones activas
// @Summary Listar promociones
// @Tags datos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} promocion.Promocion
// @Router /datos/promociones [get]
func (c *DatosController) Promociones(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.Promociones())
}

// Zonas devuelve las zonas disponibles para el vendedor
// @Summary Listar zonas
// @Tags datos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} zona.Zona
// @Router /datos/zonas [get]
func (c *DatosController) Zonas(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.Zonas())
}

// Vendedores devuelve la lista de vendedores
// @Summary Listar vendedores
// @Tags datos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} vendedor.Vendedor
// @Router /datos/vendedores [get]
func (c *DatosController) Vendedores(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.Vendedores())
}

// Ventas devuelve las ventas del vendedor
// @Summary Listar ventas
// @Tags datos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} venta.Venta
// @Router /datos/ventas [get]
func (c *DatosController) Ventas(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.Ventas())
}

// Rutas devuelve las rutas de reparto asignadas
// @Summary Listar rutas
// @Tags datos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ruta.Ruta
// @Router /datos/rutas [get]
func (c *DatosController) Rutas(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.Rutas())
}
