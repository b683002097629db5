// Package normalizer convierte los documentos crudos del almacén remoto
// (mapas dinámicos que pueden venir de un escritor viejo o del actual) en las
// entidades tipadas del dominio. Ninguna forma dinámica pasa de este límite:
// toda fecha sale como time.Time y todo campo ausente sale con su valor por
// defecto.
package normalizer

import (
	"time"

	clientedomain "github.com/dmfierro/ventas-campo/internal/domain/cliente"
	productodomain "github.com/dmfierro/ventas-campo/internal/domain/producto"
	promociondomain "github.com/dmfierro/ventas-campo/internal/domain/promocion"
	vendedordomain "github.com/dmfierro/ventas-campo/internal/domain/vendedor"
	zonadomain "github.com/dmfierro/ventas-campo/internal/domain/zona"
)

// Fecha convierte cualquier representación de fecha aceptada al time.Time
// canónico. Acepta time.Time nativo (decodificación del SDK de Firestore),
// mapas {seconds, nanoseconds} (snapshots crudos o escritores viejos) y
// strings RFC-3339 (ida y vuelta por el almacenamiento local). Todo lo demás
// cae en la fecha época.
func Fecha(v interface{}) time.Time {
	switch f := v.(type) {
	case time.Time:
		return f
	case *time.Time:
		if f != nil {
			return *f
		}
	case map[string]interface{}:
		if secs, ok := numero(f, "seconds"); ok {
			nanos, _ := numero(f, "nanoseconds")
			return time.Unix(int64(secs), int64(nanos)).UTC()
		}
	case string:
		if t, err := time.Parse(time.RFC3339, f); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}

// Texto devuelve el primer valor string presente entre la clave actual y sus
// alias legados, o vacío.
func Texto(data map[string]interface{}, claves ...string) string {
	for _, k := range claves {
		if s, ok := data[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Numero devuelve el primer valor numérico presente entre la clave actual y
// sus alias legados, o cero. Firestore entrega enteros como int64 y el JSON
// local como float64; acá se unifican.
func Numero(data map[string]interface{}, claves ...string) float64 {
	for _, k := range claves {
		if n, ok := numero(data, k); ok {
			return n
		}
	}
	return 0
}

func numero(data map[string]interface{}, clave string) (float64, bool) {
	switch n := data[clave].(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

// NumeroOpcional es como Numero pero distingue el campo ausente
func NumeroOpcional(data map[string]interface{}, claves ...string) *float64 {
	for _, k := range claves {
		if n, ok := numero(data, k); ok {
			return &n
		}
	}
	return nil
}

// EnteroOpcional devuelve el campo como entero, o nil si está ausente
func EnteroOpcional(data map[string]interface{}, claves ...string) *int {
	if n := NumeroOpcional(data, claves...); n != nil {
		e := int(*n)
		return &e
	}
	return nil
}

// Textos devuelve el campo como lista de strings, o lista vacía
func Textos(data map[string]interface{}, clave string) []string {
	lista, ok := data[clave].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(lista))
	for _, v := range lista {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func mapa(data map[string]interface{}, clave string) map[string]interface{} {
	m, _ := data[clave].(map[string]interface{})
	return m
}

func mapas(data map[string]interface{}, clave string) []map[string]interface{} {
	lista, ok := data[clave].([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(lista))
	for _, v := range lista {
		if m, ok := v.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// Producto normaliza un documento crudo de la colección productos
func Producto(id string, data map[string]interface{}) productodomain.Producto {
	return productodomain.Producto{
		ID:                 id,
		Nombre:             Texto(data, "nombre"),
		Precio:             Numero(data, "precio"),
		Costo:              Numero(data, "costo"),
		Stock:              EnteroOpcional(data, "stock"),
		CategoriaID:        Texto(data, "categoriaId"),
		ComisionEspecifica: NumeroOpcional(data, "comisionEspecifica"),
	}
}

// Categoria normaliza un documento crudo de la colección categorias
func Categoria(id string, data map[string]interface{}) productodomain.Categoria {
	return productodomain.Categoria{
		ID:              id,
		Nombre:          Texto(data, "nombre"),
		ComisionGeneral: NumeroOpcional(data, "comisionGeneral"),
	}
}

// Cliente normaliza un documento crudo de la colección clientes
func Cliente(id string, data map[string]interface{}) clientedomain.Cliente {
	c := clientedomain.Cliente{
		ID:                 id,
		Nombre:             Texto(data, "nombre"),
		NombreCompleto:     Texto(data, "nombreCompleto"),
		Direccion:          Texto(data, "direccion"),
		Barrio:             Texto(data, "barrio"),
		Localidad:          Texto(data, "localidad"),
		Telefono:           Texto(data, "telefono"),
		Email:              Texto(data, "email"),
		ZonaID:             Texto(data, "zonaId"),
		VendedorAsignadoID: Texto(data, "vendedorAsignadoId"),
		FechaCreacion:      Fecha(data["fechaCreacion"]),
	}
	if loc := mapa(data, "location"); loc != nil {
		c.Location = &clientedomain.Ubicacion{
			Latitude:  Numero(loc, "latitude"),
			Longitude: Numero(loc, "longitude"),
		}
	}
	return c
}

// Zona normaliza un documento crudo de la colección zonas
func Zona(id string, data map[string]interface{}) zonadomain.Zona {
	return zonadomain.Zona{
		ID:     id,
		Nombre: Texto(data, "nombre"),
	}
}

// Vendedor normaliza un documento crudo de la colección vendedores
func Vendedor(id string, data map[string]interface{}) vendedordomain.Vendedor {
	return vendedordomain.Vendedor{
		ID:              id,
		Nombre:          Texto(data, "nombre", "nombreCompleto"),
		NombreCompleto:  Texto(data, "nombreCompleto"),
		Rango:           vendedordomain.Rango(Texto(data, "rango")),
		ZonasAsignadas:  Textos(data, "zonasAsignadas"),
		ComisionGeneral: Numero(data, "comisionGeneral"),
		FirebaseAuthUID: Texto(data, "firebaseAuthUid"),
	}
}

// Promocion normaliza un documento crudo de la colección promociones
func Promocion(id string, data map[string]interface{}) promociondomain.Promocion {
	return promociondomain.Promocion{
		ID:                  id,
		Nombre:              Texto(data, "nombre"),
		Descripcion:         Texto(data, "descripcion"),
		Estado:              promociondomain.Estado(Texto(data, "estado")),
		Tipo:                promociondomain.Tipo(Texto(data, "tipo")),
		ProductoIDs:         Textos(data, "productoIds"),
		ClienteIDs:          Textos(data, "clienteIds"),
		NuevoPrecio:         NumeroOpcional(data, "nuevoPrecio"),
		CantidadMinima:      EnteroOpcional(data, "cantidadMinima"),
		CantidadPagable:     EnteroOpcional(data, "cantidadPagable"),
		PorcentajeDescuento: NumeroOpcional(data, "porcentajeDescuento"),
	}
}
