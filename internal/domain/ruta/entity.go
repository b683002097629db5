package ruta

import "time"

// EstadoVisita representa el estado de una parada dentro de la ruta. Es
// independiente del estado de la venta, aunque se espera que lo refleje.
type EstadoVisita string

const (
	VisitaPendiente EstadoVisita = "Pendiente"
	VisitaPagada    EstadoVisita = "Pagada"
	VisitaAdeuda    EstadoVisita = "Adeuda"
	VisitaAnulada   EstadoVisita = "Anulada"
)

// ItemParada es el renglón desnormalizado de una factura dentro de la ruta
type ItemParada struct {
	ProductoID string  `json:"productId"`
	Nombre     string  `json:"nombre"`
	Cantidad   int     `json:"quantity"`
	Precio     float64 `json:"precio"`
}

// Parada es la copia desnormalizada de una venta embebida en la ruta para
// que el reparto pueda renderizar el listado sin leer la colección de ventas.
// El documento de venta es el autoritativo cuando ambos difieren.
type Parada struct {
	ID               string       `json:"id"`        // ID de la venta
	ClienteID        string       `json:"clienteId"` // Cliente de la venta
	ClienteNombre    string       `json:"clienteNombre"`
	ClienteDireccion string       `json:"clienteDireccion,omitempty"`
	TotalVenta       float64      `json:"totalVenta"`
	EstadoVisita     EstadoVisita `json:"estadoVisita"`
	Items            []ItemParada `json:"items"`
}

// Ruta representa una hoja de reparto asignada a un chofer
type Ruta struct {
	ID           string    `json:"id"`
	Nombre       string    `json:"nombre"`
	Estado       string    `json:"estado,omitempty"` // En Curso / Finalizada
	RepartidorID string    `json:"repartidorId"`
	Fecha        time.Time `json:"fecha"`
	Facturas     []Parada  `json:"facturas"`
}

// ParadasCompletadas cuenta las paradas que ya no están pendientes
func (r *Ruta) ParadasCompletadas() int {
	n := 0
	for _, f := range r.Facturas {
		if f.EstadoVisita != VisitaPendiente {
			n++
		}
	}
	return n
}

// EstaCompleta indica si todas las paradas fueron visitadas
func (r *Ruta) EstaCompleta() bool {
	return r.ParadasCompletadas() == len(r.Facturas)
}
