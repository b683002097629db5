package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfierro/ventas-campo/internal/domain/vendedor"
)

func routerProtegido(t *testing.T, rangos ...string) (*gin.Engine, *JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := servicioDePrueba(t)

	router := gin.New()
	grupo := router.Group("/", JWTAuthMiddleware(svc))
	if len(rangos) > 0 {
		grupo.Use(RoleAuthMiddleware(rangos...))
	}
	grupo.GET("/recurso", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"vendedor": c.GetString("vendedor_id")})
	})
	return router, svc
}

func TestJWTAuthMiddlewareSinEncabezado(t *testing.T) {
	router, _ := routerProtegido(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareFormatoInvalido(t *testing.T) {
	router, _ := routerProtegido(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
	req.Header.Set("Authorization", "token-suelto")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareTokenValido(t *testing.T) {
	router, svc := routerProtegido(t)

	token, err := svc.GenerateToken("uid-1", &vendedor.Vendedor{ID: "v1", Rango: vendedor.RangoVendedor})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "v1")
}

func TestRoleAuthMiddleware(t *testing.T) {
	router, svc := routerProtegido(t, string(vendedor.RangoAdmin))

	admin, err := svc.GenerateToken("uid-a", &vendedor.Vendedor{ID: "va", Rango: vendedor.RangoAdmin})
	require.NoError(t, err)
	repartidor, err := svc.GenerateToken("uid-r", &vendedor.Vendedor{ID: "vr", Rango: vendedor.RangoReparto})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/recurso", nil)
	req.Header.Set("Authorization", "Bearer "+repartidor)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
