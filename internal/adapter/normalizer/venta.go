package normalizer

import (
	rutadomain "github.com/dmfierro/ventas-campo/internal/domain/ruta"
	ventadomain "github.com/dmfierro/ventas-campo/internal/domain/venta"
)

// Venta normaliza un documento crudo de la colección ventas. Es el único
// normalizador que tolera deriva de esquema: acepta los nombres de campo
// actuales y sus alias legados según la tabla de aliases, con la clave
// actual ganando siempre.
func Venta(id string, data map[string]interface{}) ventadomain.Venta {
	estado := Texto(data, clavesVenta("estado")...)
	if estado == "" {
		estado = string(ventadomain.EstadoPendientePago)
	}

	return ventadomain.Venta{
		ID:                        id,
		ClienteID:                 Texto(data, clavesVenta("clienteId")...),
		ClienteNombre:             Texto(data, clavesVenta("clientName")...),
		VendedorID:                Texto(data, clavesVenta("vendedorId")...),
		VendedorNombre:            Texto(data, clavesVenta("vendedorName")...),
		Items:                     itemsVenta(data),
		TotalVenta:                Numero(data, clavesVenta("totalVenta")...),
		TotalCosto:                Numero(data, "totalCosto"),
		TotalComision:             Numero(data, "totalComision"),
		TotalDescuentoPromociones: Numero(data, "totalDescuentoPromociones"),
		Observaciones:             Texto(data, "observaciones"),
		Estado:                    ventadomain.Estado(estado),
		Fecha:                     Fecha(campoVenta(data, "fecha")),
		SaldoPendiente:            Numero(data, "saldoPendiente"),
		PagoEfectivo:              Numero(data, "pagoEfectivo"),
		PagoTransferencia:         Numero(data, "pagoTransferencia"),
		MetodoPago:                ventadomain.MetodoPago(Texto(data, "paymentMethod")),
	}
}

// itemsVenta normaliza los renglones asegurando el backfill de
// precioOriginal: un renglón sin precio original registrado se trata como
// "sin promoción aplicada".
func itemsVenta(data map[string]interface{}) []ventadomain.Item {
	crudos := mapas(data, "items")
	items := make([]ventadomain.Item, 0, len(crudos))
	for _, m := range crudos {
		item := ventadomain.Item{
			ProductoID:         Texto(m, "id", "productId"),
			Nombre:             Texto(m, "nombre"),
			Precio:             Numero(m, "precio"),
			Costo:              Numero(m, "costo"),
			Cantidad:           int(Numero(m, "quantity")),
			Comision:           Numero(m, "comision"),
			Stock:              EnteroOpcional(m, "stock"),
			CategoriaID:        Texto(m, "categoriaId"),
			ComisionEspecifica: NumeroOpcional(m, "comisionEspecifica"),
		}
		if po := NumeroOpcional(m, "precioOriginal"); po != nil {
			item.PrecioOriginal = *po
		} else {
			item.PrecioOriginal = item.Precio
		}
		items = append(items, item)
	}
	return items
}

// Ruta normaliza un documento crudo de la colección rutas, incluidas las
// facturas desnormalizadas embebidas.
func Ruta(id string, data map[string]interface{}) rutadomain.Ruta {
	crudas := mapas(data, "facturas")
	facturas := make([]rutadomain.Parada, 0, len(crudas))
	for _, f := range crudas {
		estado := rutadomain.EstadoVisita(Texto(f, "estadoVisita"))
		if estado == "" {
			estado = rutadomain.VisitaPendiente
		}
		facturas = append(facturas, rutadomain.Parada{
			ID:               Texto(f, "id"),
			ClienteID:        Texto(f, "clienteId"),
			ClienteNombre:    Texto(f, "clienteNombre"),
			ClienteDireccion: Texto(f, "clienteDireccion"),
			TotalVenta:       Numero(f, "totalVenta"),
			EstadoVisita:     estado,
			Items:            itemsParada(f),
		})
	}

	return rutadomain.Ruta{
		ID:           id,
		Nombre:       Texto(data, "nombre"),
		Estado:       Texto(data, "estado"),
		RepartidorID: Texto(data, "repartidorId"),
		Fecha:        Fecha(data["fecha"]),
		Facturas:     facturas,
	}
}

func itemsParada(data map[string]interface{}) []rutadomain.ItemParada {
	crudos := mapas(data, "items")
	items := make([]rutadomain.ItemParada, 0, len(crudos))
	for _, m := range crudos {
		items = append(items, rutadomain.ItemParada{
			ProductoID: Texto(m, "productId", "id"),
			Nombre:     Texto(m, "nombre"),
			Cantidad:   int(Numero(m, "quantity")),
			Precio:     Numero(m, "precio"),
		})
	}
	return items
}
