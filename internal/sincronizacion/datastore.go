// Package sincronizacion implementa el núcleo de datos local-first de la
// aplicación:
// el modelo de lectura en memoria, el motor de sincronización contra el
// almacén remoto y la carga de arranque desde el caché del dispositivo.
package sincronizacion

import (
	"sync"
	"time"

	"github.com/dmfierro/ventas-campo/internal/domain/cliente"
	"github.com/dmfierro/ventas-campo/internal/domain/producto"
	"github.com/dmfierro/ventas-campo/internal/domain/promocion"
	"github.com/dmfierro/ventas-campo/internal/domain/ruta"
	"github.com/dmfierro/ventas-campo/internal/domain/vendedor"
	"github.com/dmfierro/ventas-campo/internal/domain/venta"
	"github.com/dmfierro/ventas-campo/internal/domain/zona"
)

// Colecciones es la foto completa del modelo de lectura: las ocho colecciones
// que consumen las pantallas.
type Colecciones struct {
	Productos   []producto.Producto
	Clientes    []cliente.Cliente
	Categorias  []producto.Categoria
	Promociones []promocion.Promocion
	Zonas       []zona.Zona
	Vendedores  []vendedor.Vendedor
	Ventas      []venta.Venta
	Rutas       []ruta.Ruta
}

// DataStore es el contenedor reactivo con ámbito de sesión de aplicación. Se
// construye una sola vez en el arranque y se pasa por referencia; los
// consumidores sólo leen, la única vía de mutación es una pasada de
// sincronización o la carga de arranque.
type DataStore struct {
	mu          sync.RWMutex
	colecciones Colecciones
	cargando    bool
	ultimaSync  time.Time
}

// NewDataStore crea el contenedor en su estado inicial: colecciones vacías y
// bandera de carga activa hasta que termine la carga de arranque.
func NewDataStore() *DataStore {
	return &DataStore{cargando: true}
}

// Snapshot devuelve una copia de la foto completa del modelo de lectura
func (d *DataStore) Snapshot() Colecciones {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return copiar(d.colecciones)
}

// Productos devuelve una copia de la colección de productos
func (d *DataStore) Productos() []producto.Producto {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return clonar(d.colecciones.Productos)
}

// Clientes devuelve una copia de la colección de clientes
func (d *DataStore) Clientes() []cliente.Cliente {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return clonar(d.colecciones.Clientes)
}

// Categorias devuelve una copia de la colección de categorías
func (d *DataStore) Categorias() []producto.Categoria {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return clonar(d.colecciones.Categorias)
}

// Promociones devuelve una copia de la colección de promociones
func (d *DataStore) Promociones() []promocion.Promocion {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return clonar(d.colecciones.Promociones)
}

// Zonas devuelve una copia de las zonas disponibles del vendedor
func (d *DataStore) Zonas() []zona.Zona {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return clonar(d.colecciones.Zonas)
}

// Vendedores devuelve una copia de la colección de vendedores
func (d *DataStore) Vendedores() []vendedor.Vendedor {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return clonar(d.colecciones.Vendedores)
}

// Ventas devuelve una copia de la colección de ventas
func (d *DataStore) Ventas() []venta.Venta {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return clonar(d.colecciones.Ventas)
}

// Rutas devuelve una copia de la colección de rutas
func (d *DataStore) Rutas() []ruta.Ruta {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return clonar(d.colecciones.Rutas)
}

// EstaCargando indica si hay una carga o sincronización en curso
func (d *DataStore) EstaCargando() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cargando
}

// UltimaSync devuelve el momento de la última sincronización exitosa, o el
// cero de time.Time si todavía no hubo ninguna.
func (d *DataStore) UltimaSync() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ultimaSync
}

// reemplazar pisa la foto completa del modelo de lectura. Reemplazo total,
// no merge: lo borrado en el remoto desaparece en la próxima pasada.
func (d *DataStore) reemplazar(c Colecciones) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.colecciones = c
}

func (d *DataStore) marcarSincronizado(t time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ultimaSync = t
}

func (d *DataStore) iniciarCarga() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cargando = true
}

func (d *DataStore) terminarCarga() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cargando = false
}

func copiar(c Colecciones) Colecciones {
	return Colecciones{
		Productos:   clonar(c.Productos),
		Clientes:    clonar(c.Clientes),
		Categorias:  clonar(c.Categorias),
		Promociones: clonar(c.Promociones),
		Zonas:       clonar(c.Zonas),
		Vendedores:  clonar(c.Vendedores),
		Ventas:      clonar(c.Ventas),
		Rutas:       clonar(c.Rutas),
	}
}

// clonar copia la colección. Los lectores siempre reciben una lista, nunca
// nil, para que una colección vacía serialice como [] y no como null.
func clonar[T any](s []T) []T {
	return append(make([]T, 0, len(s)), s...)
}
