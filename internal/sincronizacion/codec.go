package sincronizacion

import (
	"encoding/json"
	"fmt"

	"github.com/dmfierro/ventas-campo/internal/domain/ruta"
	"github.com/dmfierro/ventas-campo/internal/domain/venta"
)

// Claves del almacén local, una por colección. Se conservan las claves del
// caché original del dispositivo para no invalidar datos ya guardados.
const (
	ClaveProductos   = "products"
	ClaveClientes    = "clients"
	ClaveCategorias  = "categories"
	ClavePromociones = "promotions"
	ClaveZonas       = "availableZones"
	ClaveVendedores  = "vendors"
	ClaveVentas      = "sales"
	ClaveRutas       = "routes"
)

// TodasLasClaves lista las ocho claves en el orden de carga
var TodasLasClaves = []string{
	ClaveProductos,
	ClaveClientes,
	ClaveCategorias,
	ClavePromociones,
	ClaveZonas,
	ClaveVendedores,
	ClaveVentas,
	ClaveRutas,
}

// codificar serializa una colección como blob JSON. Las fechas salen como
// strings RFC-3339, que la deserialización tipada vuelve a convertir en
// time.Time sin necesidad de un reviver.
func codificar(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error al serializar la colección: %w", err)
	}
	// Una colección nil se guarda como lista vacía, igual que el caché original
	if string(b) == "null" {
		return "[]", nil
	}
	return string(b), nil
}

// decodificar deserializa un blob JSON en la colección tipada
func decodificar[T any](blob string) ([]T, error) {
	if blob == "" {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(blob), &out); err != nil {
		return nil, fmt.Errorf("error al deserializar la colección: %w", err)
	}
	return out, nil
}

// ventaCruda es la sombra mínima del blob de ventas que distingue un
// precioOriginal ausente de uno guardado en cero.
type ventaCruda struct {
	Items []struct {
		PrecioOriginal *float64 `json:"precioOriginal"`
	} `json:"items"`
}

// decodificarVentas deserializa el blob de ventas y reaplica el backfill de
// precioOriginal: un blob escrito por una versión anterior del normalizador
// puede no traer el campo. Un cero guardado explícitamente se respeta.
func decodificarVentas(blob string) ([]venta.Venta, error) {
	ventas, err := decodificar[venta.Venta](blob)
	if err != nil || len(ventas) == 0 {
		return ventas, err
	}

	var crudas []ventaCruda
	if err := json.Unmarshal([]byte(blob), &crudas); err != nil {
		return nil, fmt.Errorf("error al deserializar la colección: %w", err)
	}

	for i := range ventas {
		for j := range ventas[i].Items {
			if crudas[i].Items[j].PrecioOriginal == nil {
				ventas[i].Items[j].PrecioOriginal = ventas[i].Items[j].Precio
			}
		}
	}
	return ventas, nil
}

// decodificarRutas deserializa el blob de rutas, con el estado de visita
// pendiente como valor por defecto de las paradas sin estado.
func decodificarRutas(blob string) ([]ruta.Ruta, error) {
	rutas, err := decodificar[ruta.Ruta](blob)
	if err != nil {
		return nil, err
	}
	for i := range rutas {
		for j := range rutas[i].Facturas {
			if rutas[i].Facturas[j].EstadoVisita == "" {
				rutas[i].Facturas[j].EstadoVisita = ruta.VisitaPendiente
			}
		}
	}
	return rutas, nil
}
