package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfierro/ventas-campo/internal/domain/vendedor"
)

func servicioDePrueba(t *testing.T) *JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "clave-de-prueba")
	svc, err := NewJWTService()
	require.NoError(t, err)
	return svc
}

func TestGenerarYValidarToken(t *testing.T) {
	svc := servicioDePrueba(t)

	v := &vendedor.Vendedor{ID: "v1", Nombre: "Laura", Rango: vendedor.RangoVendedor}
	token, err := svc.GenerateToken("uid-1", v)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "uid-1", claims.AuthUID)
	assert.Equal(t, "v1", claims.VendedorID)
	assert.Equal(t, "Laura", claims.Nombre)
	assert.Equal(t, string(vendedor.RangoVendedor), claims.Rango)
}

func TestValidarTokenAjeno(t *testing.T) {
	svc := servicioDePrueba(t)

	_, err := svc.ValidateToken("no-es-un-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidarTokenConOtraClave(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "clave-a")
	emisor, err := NewJWTService()
	require.NoError(t, err)

	token, err := emisor.GenerateToken("uid-1", &vendedor.Vendedor{ID: "v1"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "clave-b")
	receptor, err := NewJWTService()
	require.NoError(t, err)

	_, err = receptor.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTServiceSinClave(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}
