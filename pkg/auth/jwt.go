package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmfierro/ventas-campo/internal/domain/vendedor"
)

// Errores específicos
var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrInvalidClaims = errors.New("claims inválidas")
	ErrMissingJWTKey = errors.New("clave secreta JWT no configurada")
)

// JWTClaims representa las claims del token de sesión del servicio. El token
// se emite después de verificar el ID token de Firebase en el login.
type JWTClaims struct {
	AuthUID    string `json:"auth_uid"`
	VendedorID string `json:"vendedor_id"`
	Nombre     string `json:"nombre"`
	Rango      string `json:"rango"`
	jwt.RegisteredClaims
}

// JWTService implementa los servicios relacionados con tokens JWT
type JWTService struct {
	secretKey  []byte
	expiration time.Duration
}

// NewJWTService crea una nueva instancia de JWTService
func NewJWTService() (*JWTService, error) {
	secretKey := os.Getenv("JWT_SECRET_KEY")
	if secretKey == "" {
		return nil, ErrMissingJWTKey
	}

	// Duración por defecto de 24 horas si no está configurada
	expiration := 24 * time.Hour
	if expirationStr := os.Getenv("JWT_EXPIRATION_HOURS"); expirationStr != "" {
		if parsed, err := time.ParseDuration(expirationStr + "h"); err == nil {
			expiration = parsed
		}
	}

	return &JWTService{
		secretKey:  []byte(secretKey),
		expiration: expiration,
	}, nil
}

// Expiration devuelve la duración de validez de los tokens emitidos
func (s *JWTService) Expiration() time.Duration {
	return s.expiration
}

// GenerateToken genera un token de sesión para el vendedor autenticado
func (s *JWTService) GenerateToken(authUID string, v *vendedor.Vendedor) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		AuthUID:    authUID,
		VendedorID: v.ID,
		Nombre:     v.Nombre,
		Rango:      string(v.Rango),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "ventas-campo-api",
			Subject:   v.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken valida un token de sesión y devuelve sus claims
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
