package dto

import "time"

// LoginRequest representa la solicitud de inicio de sesión.
// El cliente envía el ID token emitido por Firebase Authentication.
type LoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// VendedorResumen es la vista reducida del vendedor autenticado
type VendedorResumen struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
	Rango  string `json:"rango"`
}

// LoginResponse representa la respuesta de inicio de sesión
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Vendedor  VendedorResumen `json:"vendedor"`
}
