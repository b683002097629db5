package route

import (
	"github.com/gin-gonic/gin"

	"github.com/dmfierro/ventas-campo/internal/adapter/api/controller"
	"github.com/dmfierro/ventas-campo/pkg/auth"
)

// SetupSyncRoutes configura las rutas de sincronización
func SetupSyncRoutes(router *gin.RouterGroup, syncController *controller.SyncController, jwtService *auth.JWTService) {
	syncRouter := router.Group("/sync")
	syncRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		syncRouter.POST("", syncController.Sincronizar)
		syncRouter.POST("/refresh", syncController.Refrescar)
	}
}
