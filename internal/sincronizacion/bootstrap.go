package sincronizacion

import (
	"sync"

	"github.com/dmfierro/ventas-campo/internal/domain/cliente"
	"github.com/dmfierro/ventas-campo/internal/domain/producto"
	"github.com/dmfierro/ventas-campo/internal/domain/promocion"
	"github.com/dmfierro/ventas-campo/internal/domain/vendedor"
	"github.com/dmfierro/ventas-campo/internal/domain/zona"
	"github.com/dmfierro/ventas-campo/pkg/logger"
)

// Bootstrap hidrata el modelo de lectura desde el almacén local, sin tocar
// el remoto, para que la aplicación tenga datos disponibles de inmediato y
// sin red. Corre exactamente una vez por proceso.
type Bootstrap struct {
	store *DataStore
	local AlmacenLocal
	log   logger.Logger
	una   sync.Once
}

// NewBootstrap crea el cargador de arranque
func NewBootstrap(store *DataStore, local AlmacenLocal, log logger.Logger) *Bootstrap {
	return &Bootstrap{
		store: store,
		local: local,
		log:   log,
	}
}

// Cargar lee las ocho colecciones del almacén local y las publica en
// memoria. Un blob ausente o corrupto deja esa colección vacía sin frenar a
// las demás; el método nunca devuelve error por una colección sola. Las
// llamadas posteriores a la primera no hacen nada.
func (b *Bootstrap) Cargar() {
	b.una.Do(b.cargar)
}

func (b *Bootstrap) cargar() {
	defer b.store.terminarCarga()

	blobs, err := b.local.MultiGet(TodasLasClaves)
	if err != nil {
		// Sin caché legible arrancamos vacíos; la próxima sincronización lo repone
		b.log.Warn("no se pudo leer el caché local en el arranque", "error", err)
		return
	}

	var c Colecciones
	c.Productos = cargarColeccion[producto.Producto](b, blobs, ClaveProductos)
	c.Clientes = cargarColeccion[cliente.Cliente](b, blobs, ClaveClientes)
	c.Categorias = cargarColeccion[producto.Categoria](b, blobs, ClaveCategorias)
	c.Promociones = cargarColeccion[promocion.Promocion](b, blobs, ClavePromociones)
	c.Zonas = cargarColeccion[zona.Zona](b, blobs, ClaveZonas)
	c.Vendedores = cargarColeccion[vendedor.Vendedor](b, blobs, ClaveVendedores)

	// Ventas y rutas llevan decodificadores propios: reconstrucción de
	// fechas y backfill defensivo de precioOriginal.
	if ventas, err := decodificarVentas(blobs[ClaveVentas]); err != nil {
		b.log.Warn("blob de ventas ilegible, la colección arranca vacía", "error", err)
	} else {
		c.Ventas = ventas
	}
	if rutas, err := decodificarRutas(blobs[ClaveRutas]); err != nil {
		b.log.Warn("blob de rutas ilegible, la colección arranca vacía", "error", err)
	} else {
		c.Rutas = rutas
	}

	b.store.reemplazar(c)
	b.log.Info("datos locales cargados",
		"productos", len(c.Productos),
		"clientes", len(c.Clientes),
		"ventas", len(c.Ventas),
		"rutas", len(c.Rutas))
}

func cargarColeccion[T any](b *Bootstrap, blobs map[string]string, clave string) []T {
	coleccion, err := decodificar[T](blobs[clave])
	if err != nil {
		b.log.Warn("blob ilegible en el caché local, la colección arranca vacía",
			"clave", clave, "error", err)
		return nil
	}
	return coleccion
}
