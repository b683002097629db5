package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abrirStoreDePrueba(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSetGet(t *testing.T) {
	store := abrirStoreDePrueba(t)

	require.NoError(t, store.Set("products", `[{"id":"p1"}]`))

	valor, err := store.Get("products")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"p1"}]`, valor)
}

func TestStoreGetClaveAusente(t *testing.T) {
	store := abrirStoreDePrueba(t)

	valor, err := store.Get("no-existe")
	require.NoError(t, err)
	assert.Empty(t, valor)
}

func TestStoreSetReemplazaElValor(t *testing.T) {
	store := abrirStoreDePrueba(t)

	require.NoError(t, store.Set("clients", `[]`))
	require.NoError(t, store.Set("clients", `[{"id":"c1"}]`))

	valor, err := store.Get("clients")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"c1"}]`, valor)
}

func TestStoreMultiGet(t *testing.T) {
	store := abrirStoreDePrueba(t)

	require.NoError(t, store.Set("products", `[1]`))
	require.NoError(t, store.Set("sales", `[2]`))

	valores, err := store.MultiGet([]string{"products", "sales", "routes"})
	require.NoError(t, err)

	assert.Equal(t, `[1]`, valores["products"])
	assert.Equal(t, `[2]`, valores["sales"])

	// Las claves ausentes no aparecen en el mapa
	_, presente := valores["routes"]
	assert.False(t, presente)
}

func TestStoreDeleteYKeys(t *testing.T) {
	store := abrirStoreDePrueba(t)

	require.NoError(t, store.Set("products", `[]`))
	require.NoError(t, store.Set("sales", `[]`))
	require.NoError(t, store.Delete("products"))

	claves, err := store.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"sales"}, claves)
}

func TestStoreSobreviveReapertura(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "cache.db")

	store, err := Open(ruta)
	require.NoError(t, err)
	require.NoError(t, store.Set("products", `[{"id":"p1"}]`))
	require.NoError(t, store.Close())

	reabierto, err := Open(ruta)
	require.NoError(t, err)
	defer reabierto.Close()

	valor, err := reabierto.Get("products")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"p1"}]`, valor)
}
