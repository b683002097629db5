package vendedor

import "errors"

var (
	// ErrNoEncontrado se devuelve cuando ningún vendedor corresponde a la búsqueda
	ErrNoEncontrado = errors.New("vendedor no encontrado")
)

// Rango define el rol del vendedor dentro de la aplicación
type Rango string

const (
	RangoVendedor Rango = "Vendedor" // Preventista de campo
	RangoReparto  Rango = "Reparto"  // Chofer de reparto
	RangoAdmin    Rango = "Admin"    // Administrador
)

// Vendedor representa a un usuario de la fuerza de ventas
type Vendedor struct {
	ID              string   `json:"id"`                        // ID del documento
	Nombre          string   `json:"nombre"`                    // Nombre para mostrar
	NombreCompleto  string   `json:"nombreCompleto,omitempty"`  // Nombre completo (opcional)
	Rango           Rango    `json:"rango"`                     // Rol: Vendedor, Reparto o Admin
	ZonasAsignadas  []string `json:"zonasAsignadas,omitempty"`  // IDs de zonas asignadas
	ComisionGeneral float64  `json:"comisionGeneral,omitempty"` // Porcentaje de comisión general
	FirebaseAuthUID string   `json:"firebaseAuthUid,omitempty"` // Enlace con la identidad de Firebase Auth
}

// EsReparto indica si el vendedor es chofer de reparto
func (v *Vendedor) EsReparto() bool {
	return v.Rango == RangoReparto
}

// EsAdmin indica si el vendedor es administrador
func (v *Vendedor) EsAdmin() bool {
	return v.Rango == RangoAdmin
}

// TieneEnlaceAuth indica si el documento ya tiene el enlace con la identidad externa
func (v *Vendedor) TieneEnlaceAuth() bool {
	return v.FirebaseAuthUID != ""
}
