package cliente

import "time"

// Ubicacion representa la coordenada geográfica de un cliente
type Ubicacion struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Cliente representa un cliente asignado a un vendedor
type Cliente struct {
	ID                 string     `json:"id"`                           // ID del documento
	Nombre             string     `json:"nombre"`                       // Nombre corto / de fantasía
	NombreCompleto     string     `json:"nombreCompleto,omitempty"`     // Razón social o nombre completo
	Direccion          string     `json:"direccion,omitempty"`          // Calle y número
	Barrio             string     `json:"barrio,omitempty"`             // Barrio
	Localidad          string     `json:"localidad,omitempty"`          // Localidad
	Telefono           string     `json:"telefono,omitempty"`           // Teléfono de contacto
	Email              string     `json:"email,omitempty"`              // Email de contacto
	ZonaID             string     `json:"zonaId,omitempty"`             // Zona a la que pertenece
	VendedorAsignadoID string     `json:"vendedorAsignadoId,omitempty"` // Vendedor dueño del cliente
	Location           *Ubicacion `json:"location,omitempty"`           // Coordenada para navegación
	FechaCreacion      time.Time  `json:"fechaCreacion"`                // Fecha de alta
}

// TieneUbicacion indica si el cliente tiene coordenada guardada
func (c *Cliente) TieneUbicacion() bool {
	return c.Location != nil
}

// DireccionCompleta arma la dirección para mostrar en listados y facturas
func (c *Cliente) DireccionCompleta() string {
	dir := c.Direccion
	if c.Barrio != "" {
		if dir != "" {
			dir += ", "
		}
		dir += c.Barrio
	}
	if c.Localidad != "" {
		if dir != "" {
			dir += ", "
		}
		dir += c.Localidad
	}
	return dir
}
