package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/dmfierro/ventas-campo/internal/adapter/api/dto"
	"github.com/dmfierro/ventas-campo/internal/domain/vendedor"
	"github.com/dmfierro/ventas-campo/pkg/auth"
	"github.com/dmfierro/ventas-campo/pkg/logger"
	"github.com/dmfierro/ventas-campo/pkg/sesion"
)

// AuthController maneja las peticiones relacionadas con autenticación
type AuthController struct {
	authClient   *firebaseauth.Client
	vendedorRepo vendedor.Repository
	jwtService   *auth.JWTService
	sesion       *sesion.Sesion
	logger       logger.Logger
}

// NewAuthController crea una nueva instancia de AuthController
func NewAuthController(authClient *firebaseauth.Client, vendedorRepo vendedor.Repository, jwtService *auth.JWTService, ses *sesion.Sesion, logger logger.Logger) *AuthController {
	return &AuthController{
		authClient:   authClient,
		vendedorRepo: vendedorRepo,
		jwtService:   jwtService,
		sesion:       ses,
		logger:       logger,
	}
}

// Login autentica a un vendedor
// @Summary Autenticar vendedor
// @Description Verifica el ID token de Firebase, resuelve el vendedor y emite un token de sesión
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "ID token de Firebase"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos de solicitud inválidos", err.Error()))
		return
	}

	token, err := c.authClient.VerifyIDToken(ctx.Request.Context(), req.IDToken)
	if err != nil {
		c.logger.Warn("ID token rechazado", "error", err)
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token de Firebase inválido", ""))
		return
	}

	v, err := c.resolverVendedor(ctx.Request.Context(), token.UID)
	if err != nil {
		if errors.Is(err, vendedor.ErrNoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "no existe un vendedor para esta cuenta", ""))
			return
		}
		c.logger.Error("Error al resolver vendedor en login", "error", err, "auth_uid", token.UID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error interno del servidor", ""))
		return
	}

	sessionToken, err := c.jwtService.GenerateToken(token.UID, v)
	if err != nil {
		c.logger.Error("Error al generar token de sesión", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al generar el token de sesión", ""))
		return
	}

	email, _ := token.Claims["email"].(string)
	c.sesion.Iniciar(sesion.Identidad{UID: token.UID, Email: email})

	c.logger.Info("Login exitoso", "vendedor_id", v.ID, "rango", v.Rango)

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:     sessionToken,
		ExpiresAt: time.Now().Add(c.jwtService.Expiration()),
		Vendedor: dto.VendedorResumen{
			ID:     v.ID,
			Nombre: v.Nombre,
			Email:  email,
			Rango:  string(v.Rango),
		},
	})
}

// Logout cierra la sesión del vendedor actual
// @Summary Cerrar sesión
// @Description Descarta la identidad de la sesión actual
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.sesion.Cerrar()
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Sesión cerrada", nil))
}

// resolverVendedor busca el vendedor por su enlace de autenticación, con
// respaldo por ID de documento para cuentas antiguas sin enlace.
func (c *AuthController) resolverVendedor(ctx context.Context, authUID string) (*vendedor.Vendedor, error) {
	v, err := c.vendedorRepo.FindByAuthUID(ctx, authUID)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, vendedor.ErrNoEncontrado) {
		return nil, err
	}
	return c.vendedorRepo.FindByID(ctx, authUID)
}
