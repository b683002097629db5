package route

import (
	"github.com/gin-gonic/gin"

	"github.com/dmfierro/ventas-campo/internal/adapter/api/controller"
	"github.com/dmfierro/ventas-campo/pkg/auth"
)

// SetupAuthRoutes configura las rutas de autenticación
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, jwtService *auth.JWTService) {
	authRouter := router.Group("/auth")
	{
		// Ruta de login (no requiere autenticación)
		authRouter.POST("/login", authController.Login)

		// Ruta para cerrar la sesión (requiere autenticación)
		authRouter.POST("/logout", auth.JWTAuthMiddleware(jwtService), authController.Logout)
	}
}
