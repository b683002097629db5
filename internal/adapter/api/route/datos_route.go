package route

import (
	"github.com/gin-gonic/gin"

	"github.com/dmfierro/ventas-campo/internal/adapter/api/controller"
	"github.com/dmfierro/ventas-campo/internal/domain/vendedor"
	"github.com/dmfierro/ventas-campo/pkg/auth"
)

// SetupDatosRoutes configura las rutas de lectura de datos locales
func SetupDatosRoutes(router *gin.RouterGroup, datosController *controller.DatosController, jwtService *auth.JWTService) {
	datosRouter := router.Group("/datos")
	datosRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		datosRouter.GET("/estado", datosController.Estado)
		datosRouter.GET("/productos", datosController.Productos)
		datosRouter.GET("/clientes", datosController.Clientes)
		datosRouter.GET("/categorias", datosController.Categorias)
		datosRouter.GET("/promociones", datosController.Promociones)
		datosRouter.GET("/zonas", datosController.Zonas)
		datosRouter.GET("/vendedores", datosController.Vendedores)
		datosRouter.GET("/ventas", datosController.Ventas)

		// Las hojas de ruta son del circuito de reparto: sólo las leen
		// choferes y administradores
		soloReparto := auth.RoleAuthMiddleware(string(vendedor.RangoReparto), string(vendedor.RangoAdmin))
		datosRouter.GET("/rutas", soloReparto, datosController.Rutas)
	}
}
