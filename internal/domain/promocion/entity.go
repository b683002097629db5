package promocion

// Estado representa el estado de una promoción
type Estado string

const (
	EstadoActiva   Estado = "activa"
	EstadoInactiva Estado = "inactiva"
)

// Tipo define la variante de la promoción
type Tipo string

const (
	TipoPrecioEspecial       Tipo = "precio_especial"        // Precio fijo promocional
	TipoLlevaXPagaY          Tipo = "lleva_x_paga_y"         // Lleva X unidades, paga Y
	TipoDescuentoPorCantidad Tipo = "descuento_por_cantidad" // Descuento porcentual a partir de una cantidad
)

// Promocion representa una promoción vigente sobre uno o más productos
type Promocion struct {
	ID                  string   `json:"id"`
	Nombre              string   `json:"nombre"`
	Descripcion         string   `json:"descripcion,omitempty"`
	Estado              Estado   `json:"estado"`
	Tipo                Tipo     `json:"tipo"`
	ProductoIDs         []string `json:"productoIds"`
	ClienteIDs          []string `json:"clienteIds,omitempty"` // Vacío = aplica a todos los clientes
	NuevoPrecio         *float64 `json:"nuevoPrecio,omitempty"`
	CantidadMinima      *int     `json:"cantidadMinima,omitempty"`
	CantidadPagable     *int     `json:"cantidadPagable,omitempty"`
	PorcentajeDescuento *float64 `json:"porcentajeDescuento,omitempty"`
}

// EstaActiva indica si la promoción está vigente
func (p *Promocion) EstaActiva() bool {
	return p.Estado == EstadoActiva
}

// AplicaAProducto indica si la promoción alcanza al producto
func (p *Promocion) AplicaAProducto(productoID string) bool {
	for _, id := range p.ProductoIDs {
		if id == productoID {
			return true
		}
	}
	return false
}

// AplicaACliente indica si la promoción alcanza al cliente. Una lista de
// clientes vacía o ausente significa que aplica a todos.
func (p *Promocion) AplicaACliente(clienteID string) bool {
	if len(p.ClienteIDs) == 0 {
		return true
	}
	for _, id := range p.ClienteIDs {
		if id == clienteID {
			return true
		}
	}
	return false
}
