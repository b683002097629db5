package sincronizacion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/dmfierro/ventas-campo/internal/domain/cliente"
	"github.com/dmfierro/ventas-campo/internal/domain/producto"
	"github.com/dmfierro/ventas-campo/internal/domain/promocion"
	"github.com/dmfierro/ventas-campo/internal/domain/ruta"
	"github.com/dmfierro/ventas-campo/internal/domain/vendedor"
	"github.com/dmfierro/ventas-campo/internal/domain/venta"
	"github.com/dmfierro/ventas-campo/internal/domain/zona"
	"github.com/dmfierro/ventas-campo/pkg/logger"
	"github.com/dmfierro/ventas-campo/pkg/sesion"
)

// Errores específicos del motor de sincronización
var (
	ErrSesionRequerida      = errors.New("no hay usuario autenticado para obtener datos")
	ErrVendedorNoEncontrado = errors.New("datos del vendedor actual no encontrados")
	ErrEscrituraLocal       = errors.New("no se pudo guardar el caché local completo")
)

// maxFiltroIn es el límite de valores del filtro "in" de Firestore
const maxFiltroIn = 30

// AlmacenLocal es el contrato mínimo del almacén local persistente que
// necesita el núcleo: lectura y escritura de blobs por clave.
type AlmacenLocal interface {
	Set(key, value string) error
	MultiGet(keys []string) (map[string]string, error)
}

// Repositorios agrupa las interfaces de acceso al almacén remoto, una por
// colección sincronizada.
type Repositorios struct {
	Vendedores  vendedor.Repository
	Clientes    cliente.Repository
	Productos   producto.Repository
	Categorias  producto.CategoriaRepository
	Promociones promocion.Repository
	Zonas       zona.Repository
	Ventas      venta.Repository
	Rutas       ruta.Repository
}

// Engine orquesta una pasada completa de sincronización: resolver el
// vendedor de la identidad actual, emitir el juego de consultas según su
// rango, normalizar, persistir en el almacén local y publicar el modelo de
// lectura nuevo.
type Engine struct {
	repos Repositorios
	store *DataStore
	local AlmacenLocal
	ses   sesion.Proveedor
	notif Notificador
	log   logger.Logger
	vuelo singleflight.Group
}

// NewEngine crea una nueva instancia del motor de sincronización
func NewEngine(repos Repositorios, store *DataStore, local AlmacenLocal, ses sesion.Proveedor, notif Notificador, log logger.Logger) *Engine {
	return &Engine{
		repos: repos,
		store: store,
		local: local,
		ses:   ses,
		notif: notif,
		log:   log,
	}
}

// SincronizarDatos es el punto de entrada pensado para la primera
// sincronización después del login.
func (e *Engine) SincronizarDatos(ctx context.Context) error {
	return e.Sincronizar(ctx, true)
}

// RefrescarDatos es el punto de entrada para el refresco manual y el
// refresco posterior a una mutación. Es idéntico a SincronizarDatos; los dos
// nombres existen para que las pantallas tengan hooks distinguibles.
func (e *Engine) RefrescarDatos(ctx context.Context) error {
	return e.Sincronizar(ctx, true)
}

// Sincronizar ejecuta una pasada de sincronización. Las pasadas concurrentes
// se fusionan en la que está en vuelo: sólo una pasada muta el estado a la
// vez. Con announce en false no se emite ninguna notificación.
func (e *Engine) Sincronizar(ctx context.Context, announce bool) error {
	// Una pasada en vuelo no se puede abortar: corre desacoplada de la
	// cancelación del contexto que la disparó, así cortar la request no
	// tumba la pasada ni a los llamadores fusionados con ella.
	pasada := context.WithoutCancel(ctx)
	_, err, _ := e.vuelo.Do("sync", func() (interface{}, error) {
		return nil, e.sincronizarUnaVez(pasada)
	})

	if err != nil {
		if announce {
			e.notif.Fallo("Error de Sincronización", err.Error())
		}
		return err
	}

	if announce {
		e.notif.Exito("Datos Sincronizados", "La información ha sido actualizada.")
	}
	return nil
}

func (e *Engine) sincronizarUnaVez(ctx context.Context) error {
	e.store.iniciarCarga()
	defer e.store.terminarCarga()

	identidad := e.ses.Actual()
	if identidad == nil {
		return ErrSesionRequerida
	}

	v, err := e.resolverVendedor(ctx, identidad.UID)
	if err != nil {
		return err
	}
	e.log.Info("vendedor identificado", "id", v.ID, "rango", v.Rango)

	// La pasada arranca desde la foto actual: las colecciones que este rango
	// no consulta conservan su valor previo.
	colecciones := e.store.Snapshot()

	grupo, gctx := errgroup.WithContext(ctx)

	// Consultas incondicionales
	grupo.Go(func() error {
		productos, err := e.repos.Productos.FindAll(gctx)
		if err == nil {
			colecciones.Productos = productos
		}
		return err
	})
	grupo.Go(func() error {
		categorias, err := e.repos.Categorias.FindAll(gctx)
		if err == nil {
			colecciones.Categorias = categorias
		}
		return err
	})
	grupo.Go(func() error {
		promociones, err := e.repos.Promociones.FindActivas(gctx)
		if err == nil {
			colecciones.Promociones = promociones
		}
		return err
	})
	grupo.Go(func() error {
		vendedores, err := e.repos.Vendedores.FindAll(gctx)
		if err == nil {
			colecciones.Vendedores = vendedores
		}
		return err
	})

	// Consultas según el rango resuelto
	if v.EsReparto() {
		grupo.Go(func() error {
			rutas, err := e.repos.Rutas.FindByRepartidor(gctx, v.ID)
			if err == nil {
				colecciones.Rutas = rutas
			}
			return err
		})
	} else { // Vendedor o Admin
		grupo.Go(func() error {
			clientes, err := e.repos.Clientes.FindByVendedor(gctx, v.ID)
			if err == nil {
				colecciones.Clientes = clientes
			}
			return err
		})
		grupo.Go(func() error {
			ventas, err := e.repos.Ventas.FindByVendedor(gctx, v.ID)
			if err == nil {
				colecciones.Ventas = ventas
			}
			return err
		})
		grupo.Go(func() error {
			zonas, err := e.buscarZonas(gctx, v.ZonasAsignadas)
			if err == nil {
				colecciones.Zonas = zonas
			}
			return err
		})
	}

	// Todo o nada: una sola consulta fallida aborta la pasada sin tocar ni
	// la memoria ni el caché local.
	if err := grupo.Wait(); err != nil {
		return fmt.Errorf("error durante la obtención de datos: %w", err)
	}

	// Publicar en memoria antes de persistir: si la escritura local falla,
	// la pantalla igual ve los datos frescos y el caché queda marcado como
	// parcialmente viejo por el error de la pasada.
	e.store.reemplazar(colecciones)
	e.store.marcarSincronizado(time.Now())

	if err := e.persistir(colecciones); err != nil {
		return err
	}

	e.log.Info("sincronización completada y caché local actualizado")
	return nil
}

// resolverVendedor busca el vendedor de la identidad autenticada. Primero
// por el campo de enlace firebaseAuthUid; si no hay resultado, por ID de
// documento (método viejo) y en ese caso repara el documento escribiéndole
// el enlace. Esa escritura es una optimización: si falla se registra y la
// pasada sigue.
func (e *Engine) resolverVendedor(ctx context.Context, authUID string) (*vendedor.Vendedor, error) {
	v, err := e.repos.Vendedores.FindByAuthUID(ctx, authUID)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, vendedor.ErrNoEncontrado) {
		return nil, fmt.Errorf("error al resolver el vendedor: %w", err)
	}

	e.log.Warn("vendedor sin enlace firebaseAuthUid, probando por ID de documento", "uid", authUID)
	v, err = e.repos.Vendedores.FindByID(ctx, authUID)
	if err != nil {
		if errors.Is(err, vendedor.ErrNoEncontrado) {
			return nil, ErrVendedorNoEncontrado
		}
		return nil, fmt.Errorf("error al resolver el vendedor: %w", err)
	}

	if err := e.repos.Vendedores.UpdateAuthUID(ctx, v.ID, authUID); err != nil {
		e.log.Warn("no se pudo reparar el enlace firebaseAuthUid", "vendedor", v.ID, "error", err)
	} else {
		v.FirebaseAuthUID = authUID
	}
	return v, nil
}

// buscarZonas arma la consulta de zonas asignadas respetando el límite del
// filtro "in": una lista que lo supere se recorta a los primeros 30 IDs con
// un aviso, sin abortar la pasada.
func (e *Engine) buscarZonas(ctx context.Context, zonaIDs []string) ([]zona.Zona, error) {
	if len(zonaIDs) == 0 {
		return nil, nil
	}
	if len(zonaIDs) > maxFiltroIn {
		e.log.Warn("demasiadas zonas asignadas, se cargan sólo las primeras",
			"asignadas", len(zonaIDs), "limite", maxFiltroIn)
		zonaIDs = zonaIDs[:maxFiltroIn]
	}
	zonas, err := e.repos.Zonas.FindByIDs(ctx, zonaIDs)
	if err != nil {
		return nil, err
	}
	return zonas, nil
}

// persistir guarda las ocho colecciones en el almacén local, una clave por
// colección y todas las escrituras en paralelo. Un fallo deja el caché
// parcialmente viejo; no se revierte ni se reintenta.
func (e *Engine) persistir(c Colecciones) error {
	blobs := []struct {
		clave string
		valor interface{}
	}{
		{ClaveProductos, c.Productos},
		{ClaveClientes, c.Clientes},
		{ClaveCategorias, c.Categorias},
		{ClavePromociones, c.Promociones},
		{ClaveZonas, c.Zonas},
		{ClaveVendedores, c.Vendedores},
		{ClaveVentas, c.Ventas},
		{ClaveRutas, c.Rutas},
	}

	var grupo errgroup.Group
	for _, b := range blobs {
		b := b
		grupo.Go(func() error {
			blob, err := codificar(b.valor)
			if err != nil {
				return err
			}
			return e.local.Set(b.clave, blob)
		})
	}

	if err := grupo.Wait(); err != nil {
		e.log.Error("fallo la escritura del caché local", "error", err)
		return fmt.Errorf("%w: %v", ErrEscrituraLocal, err)
	}
	return nil
}
