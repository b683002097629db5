package zona

// Zona representa una zona geográfica de reparto o venta
type Zona struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
