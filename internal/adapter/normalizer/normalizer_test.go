package normalizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ventadomain "github.com/dmfierro/ventas-campo/internal/domain/venta"
)

func TestFecha(t *testing.T) {
	referencia := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)
	epoca := time.Unix(0, 0).UTC()

	tests := []struct {
		name    string
		entrada interface{}
		want    time.Time
	}{
		{
			name:    "time.Time nativo",
			entrada: referencia,
			want:    referencia,
		},
		{
			name:    "puntero a time.Time",
			entrada: &referencia,
			want:    referencia,
		},
		{
			name:    "mapa seconds y nanoseconds",
			entrada: map[string]interface{}{"seconds": float64(referencia.Unix()), "nanoseconds": float64(0)},
			want:    referencia,
		},
		{
			name:    "mapa seconds como int64",
			entrada: map[string]interface{}{"seconds": referencia.Unix()},
			want:    referencia,
		},
		{
			name:    "string RFC-3339",
			entrada: "2024-05-10T15:30:00Z",
			want:    referencia,
		},
		{
			name:    "string ilegible cae en la época",
			entrada: "10/05/2024",
			want:    epoca,
		},
		{
			name:    "nil cae en la época",
			entrada: nil,
			want:    epoca,
		},
		{
			name:    "mapa sin seconds cae en la época",
			entrada: map[string]interface{}{"foo": "bar"},
			want:    epoca,
		},
		{
			name:    "puntero nil cae en la época",
			entrada: (*time.Time)(nil),
			want:    epoca,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Fecha(tt.entrada).Equal(tt.want))
		})
	}
}

func TestVentaAliasesLegados(t *testing.T) {
	// Documento escrito por la versión vieja: sólo nombres de campo legados
	data := map[string]interface{}{
		"clientId":       "c1",
		"clienteNombre":  "Almacén Sur",
		"vendorId":       "v1",
		"vendedorNombre": "Laura",
		"totalAmount":    1500.0,
		"status":         "Pagada",
		"saleDate":       "2024-03-01T10:00:00Z",
	}

	v := Venta("venta-1", data)

	assert.Equal(t, "venta-1", v.ID)
	assert.Equal(t, "c1", v.ClienteID)
	assert.Equal(t, "Almacén Sur", v.ClienteNombre)
	assert.Equal(t, "v1", v.VendedorID)
	assert.Equal(t, "Laura", v.VendedorNombre)
	assert.Equal(t, 1500.0, v.TotalVenta)
	assert.Equal(t, ventadomain.EstadoPagada, v.Estado)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), v.Fecha)
}

func TestVentaClaveActualGanaSobreAlias(t *testing.T) {
	data := map[string]interface{}{
		"clienteId":   "actual",
		"clientId":    "legado",
		"totalVenta":  200.0,
		"totalAmount": 900.0,
	}

	v := Venta("venta-2", data)

	assert.Equal(t, "actual", v.ClienteID)
	assert.Equal(t, 200.0, v.TotalVenta)
}

func TestVentaEstadoPorDefecto(t *testing.T) {
	v := Venta("venta-3", map[string]interface{}{})
	assert.Equal(t, ventadomain.EstadoPendientePago, v.Estado)
}

func TestItemsVentaBackfillPrecioOriginal(t *testing.T) {
	data := map[string]interface{}{
		"items": []interface{}{
			map[string]interface{}{
				"id":       "p1",
				"nombre":   "Yerba 1kg",
				"precio":   900.0,
				"quantity": 2.0,
			},
			map[string]interface{}{
				"productId":      "p2",
				"nombre":         "Azúcar",
				"precio":         700.0,
				"precioOriginal": 850.0,
				"quantity":       1.0,
			},
		},
	}

	v := Venta("venta-4", data)
	require.Len(t, v.Items, 2)

	// Sin precio original registrado: se asume sin promoción
	assert.Equal(t, "p1", v.Items[0].ProductoID)
	assert.Equal(t, 900.0, v.Items[0].PrecioOriginal)
	assert.False(t, v.Items[0].ConPromocion())

	// Con precio original mayor: promoción aplicada
	assert.Equal(t, "p2", v.Items[1].ProductoID)
	assert.Equal(t, 850.0, v.Items[1].PrecioOriginal)
	assert.True(t, v.Items[1].ConPromocion())
}

func TestRutaEstadoVisitaPorDefecto(t *testing.T) {
	data := map[string]interface{}{
		"nombre":       "Reparto lunes",
		"repartidorId": "r1",
		"facturas": []interface{}{
			map[string]interface{}{
				"id":            "f1",
				"clienteNombre": "Kiosco Norte",
				"totalVenta":    300.0,
			},
			map[string]interface{}{
				"id":           "f2",
				"estadoVisita": "Pagada",
			},
		},
	}

	r := Ruta("ruta-1", data)
	require.Len(t, r.Facturas, 2)
	assert.Equal(t, "Pendiente", string(r.Facturas[0].EstadoVisita))
	assert.Equal(t, "Pagada", string(r.Facturas[1].EstadoVisita))
}

func TestClienteConUbicacion(t *testing.T) {
	data := map[string]interface{}{
		"nombre": "Despensa Oeste",
		"zonaId": "z1",
		"location": map[string]interface{}{
			"latitude":  -34.6,
			"longitude": -58.4,
		},
		"fechaCreacion": "2023-11-20T08:00:00Z",
	}

	c := Cliente("c1", data)

	assert.Equal(t, "Despensa Oeste", c.Nombre)
	require.NotNil(t, c.Location)
	assert.Equal(t, -34.6, c.Location.Latitude)
	assert.Equal(t, -58.4, c.Location.Longitude)
	assert.Equal(t, time.Date(2023, 11, 20, 8, 0, 0, 0, time.UTC), c.FechaCreacion)
}

func TestClienteSinUbicacion(t *testing.T) {
	c := Cliente("c2", map[string]interface{}{"nombre": "Sin mapa"})
	assert.Nil(t, c.Location)
}

func TestVendedorNombreConRespaldo(t *testing.T) {
	v := Vendedor("v1", map[string]interface{}{
		"nombreCompleto": "María González",
		"rango":          "Reparto",
	})

	assert.Equal(t, "María González", v.Nombre)
	assert.True(t, v.EsReparto())
}
