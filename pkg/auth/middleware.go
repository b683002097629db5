package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmfierro/ventas-campo/internal/adapter/api/dto"
)

// JWTAuthMiddleware crea un middleware de autenticación por token de sesión
func JWTAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"autenticación requerida",
				"no se envió el encabezado Authorization",
			))
			return
		}

		// Formato "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"formato de token inválido",
				"use el formato 'Bearer <token>'",
			))
			return
		}

		claims, err := jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			message := "token inválido"
			if err == ErrExpiredToken {
				message = "token expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		// Guardar las claims en el contexto de la request
		c.Set("auth_uid", claims.AuthUID)
		c.Set("vendedor_id", claims.VendedorID)
		c.Set("vendedor_nombre", claims.Nombre)
		c.Set("vendedor_rango", claims.Rango)

		c.Next()
	}
}

// RoleAuthMiddleware crea un middleware que exige alguno de los rangos dados
func RoleAuthMiddleware(rangos ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rango := c.GetString("vendedor_rango")
		if rango == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"autenticación requerida",
				"",
			))
			return
		}

		for _, r := range rangos {
			if rango == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
			http.StatusForbidden,
			"acceso denegado",
			"no tiene permiso para acceder a este recurso",
		))
	}
}
