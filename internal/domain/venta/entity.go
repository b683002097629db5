package venta

import "time"

// Estado representa el estado de una venta
type Estado string

const (
	EstadoPagada        Estado = "Pagada"
	EstadoAdeuda        Estado = "Adeuda"
	EstadoPendientePago Estado = "Pendiente de Pago"
	EstadoRepartiendo   Estado = "Repartiendo"
	EstadoAnulada       Estado = "Anulada"
)

// MetodoPago define la forma de pago elegida al crear la venta
type MetodoPago string

const (
	MetodoContado         MetodoPago = "contado"
	MetodoCuentaCorriente MetodoPago = "cuenta_corriente"
)

// Item representa un renglón de la venta. Conserva el precio original además
// del precio cobrado para poder reimprimir la factura y recalcular ante una
// edición, aun cuando una promoción haya pisado el precio.
type Item struct {
	ProductoID         string   `json:"id"`                           // ID del producto
	Nombre             string   `json:"nombre"`                       // Nombre al momento de la venta
	Precio             float64  `json:"precio"`                       // Precio unitario cobrado
	Costo              float64  `json:"costo"`                        // Costo unitario
	Cantidad           int      `json:"quantity"`                     // Cantidad vendida
	Comision           float64  `json:"comision"`                     // Comisión del renglón
	PrecioOriginal     float64  `json:"precioOriginal"`               // Precio antes de promociones
	Stock              *int     `json:"stock,omitempty"`              // Copia del stock del producto (opcional)
	CategoriaID        string   `json:"categoriaId,omitempty"`        // Categoría del producto (opcional)
	ComisionEspecifica *float64 `json:"comisionEspecifica,omitempty"` // Comisión específica del producto (opcional)
}

// ConPromocion indica si el renglón tiene un precio pisado por promoción
func (i *Item) ConPromocion() bool {
	return i.PrecioOriginal > i.Precio
}

// Venta representa una venta realizada por un vendedor a un cliente
type Venta struct {
	ID                        string     `json:"id"`
	ClienteID                 string     `json:"clienteId"`
	ClienteNombre             string     `json:"clientName"`
	VendedorID                string     `json:"vendedorId"`
	VendedorNombre            string     `json:"vendedorName"`
	Items                     []Item     `json:"items"`
	TotalVenta                float64    `json:"totalVenta"`
	TotalCosto                float64    `json:"totalCosto"`
	TotalComision             float64    `json:"totalComision"`
	TotalDescuentoPromociones float64    `json:"totalDescuentoPromociones"`
	Observaciones             string     `json:"observaciones,omitempty"`
	Estado                    Estado     `json:"estado"`
	Fecha                     time.Time  `json:"fecha"`
	SaldoPendiente            float64    `json:"saldoPendiente"`
	PagoEfectivo              float64    `json:"pagoEfectivo,omitempty"`
	PagoTransferencia         float64    `json:"pagoTransferencia,omitempty"`
	MetodoPago                MetodoPago `json:"paymentMethod,omitempty"`
}

// SaldoCalculado devuelve el saldo que debería quedar pendiente según los
// pagos registrados. Nunca es negativo.
func (v *Venta) SaldoCalculado() float64 {
	saldo := v.TotalVenta - v.PagoEfectivo - v.PagoTransferencia
	if saldo < 0 {
		return 0
	}
	return saldo
}

// EstaSaldada indica si la venta no tiene saldo pendiente
func (v *Venta) EstaSaldada() bool {
	return v.SaldoPendiente <= 0
}

// EstaAnulada indica si la venta fue anulada
func (v *Venta) EstaAnulada() bool {
	return v.Estado == EstadoAnulada
}
