package sincronizacion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfierro/ventas-campo/pkg/logger"
)

func TestBootstrapArranqueEnFrio(t *testing.T) {
	// Caché de una sesión anterior, sin red disponible
	local := nuevoAlmacenFalso()
	local.datos[ClaveClientes] = `[{"id":"c1","nombre":"Acme"}]`
	local.datos[ClaveProductos] = `[{"id":"p1","nombre":"Yerba","precio":900}]`
	local.datos[ClaveVentas] = `[{"id":"venta-1","items":[{"id":"p1","precio":450,"quantity":2}]}]`

	store := NewDataStore()
	require.True(t, store.EstaCargando())

	b := NewBootstrap(store, local, logger.NewNop())
	b.Cargar()

	require.Len(t, store.Clientes(), 1)
	assert.Equal(t, "Acme", store.Clientes()[0].Nombre)
	assert.Len(t, store.Productos(), 1)

	// El backfill defensivo también corre en el arranque
	require.Len(t, store.Ventas(), 1)
	assert.Equal(t, 450.0, store.Ventas()[0].Items[0].PrecioOriginal)

	// Las colecciones sin blob arrancan vacías
	assert.Empty(t, store.Rutas())

	assert.False(t, store.EstaCargando())
}

func TestBootstrapBlobCorruptoNoFrenaALasDemas(t *testing.T) {
	local := nuevoAlmacenFalso()
	local.datos[ClaveClientes] = `{esto no es una lista`
	local.datos[ClaveProductos] = `[{"id":"p1"}]`

	store := NewDataStore()
	b := NewBootstrap(store, local, logger.NewNop())
	b.Cargar()

	assert.Empty(t, store.Clientes())
	assert.Len(t, store.Productos(), 1)
	assert.False(t, store.EstaCargando())
}

func TestBootstrapCorreUnaSolaVez(t *testing.T) {
	local := nuevoAlmacenFalso()
	local.datos[ClaveProductos] = `[{"id":"p1"}]`

	store := NewDataStore()
	b := NewBootstrap(store, local, logger.NewNop())
	b.Cargar()

	// Un segundo Cargar no relee el almacén ni pisa la memoria
	local.datos[ClaveProductos] = `[{"id":"p1"},{"id":"p2"}]`
	b.Cargar()

	assert.Len(t, store.Productos(), 1)
}

type almacenRoto struct{}

func (almacenRoto) Set(string, string) error { return errors.New("no disponible") }

func (almacenRoto) MultiGet([]string) (map[string]string, error) {
	return nil, errors.New("no disponible")
}

func TestBootstrapSinCacheLegible(t *testing.T) {
	store := NewDataStore()
	b := NewBootstrap(store, almacenRoto{}, logger.NewNop())
	b.Cargar()

	// Arranque vacío pero funcional: la bandera de carga igual baja
	assert.Empty(t, store.Productos())
	assert.False(t, store.EstaCargando())
}
