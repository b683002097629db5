package sincronizacion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfierro/ventas-campo/internal/domain/producto"
)

func TestDataStoreEstadoInicial(t *testing.T) {
	d := NewDataStore()

	assert.True(t, d.EstaCargando())
	assert.True(t, d.UltimaSync().IsZero())
	assert.Empty(t, d.Productos())
	assert.Empty(t, d.Clientes())
}

func TestDataStoreLosLectoresRecibenCopias(t *testing.T) {
	d := NewDataStore()
	d.reemplazar(Colecciones{
		Productos: []producto.Producto{{ID: "p1", Nombre: "Yerba"}},
	})

	leidos := d.Productos()
	require.Len(t, leidos, 1)
	leidos[0].Nombre = "mutado"

	// La mutación del lector no llega al contenedor
	assert.Equal(t, "Yerba", d.Productos()[0].Nombre)
}

func TestDataStoreSnapshotEsCopia(t *testing.T) {
	d := NewDataStore()
	d.reemplazar(Colecciones{
		Productos: []producto.Producto{{ID: "p1", Nombre: "Yerba"}},
	})

	foto := d.Snapshot()
	foto.Productos[0].Nombre = "mutado"

	assert.Equal(t, "Yerba", d.Productos()[0].Nombre)
}

func TestDataStoreReemplazoTotal(t *testing.T) {
	d := NewDataStore()
	d.reemplazar(Colecciones{
		Productos: []producto.Producto{{ID: "p1"}, {ID: "p2"}},
	})

	// Reemplazo, no merge: lo que no viene en la foto nueva desaparece
	d.reemplazar(Colecciones{
		Productos: []producto.Producto{{ID: "p3"}},
	})

	productos := d.Productos()
	require.Len(t, productos, 1)
	assert.Equal(t, "p3", productos[0].ID)
}

func TestDataStoreCicloDeCarga(t *testing.T) {
	d := NewDataStore()
	d.terminarCarga()
	assert.False(t, d.EstaCargando())

	d.iniciarCarga()
	assert.True(t, d.EstaCargando())

	momento := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	d.marcarSincronizado(momento)
	assert.True(t, d.UltimaSync().Equal(momento))
}
