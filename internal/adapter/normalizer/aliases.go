package normalizer

// aliasesVenta es el adaptador de esquema versionado para la colección de
// ventas: clave actual → alias legados aceptados, en orden de precedencia.
// La clave actual siempre gana si está presente. Los cambios de esquema
// futuros se agregan acá, no con fallbacks sueltos por campo.
var aliasesVenta = map[string][]string{
	"clienteId":    {"clientId"},
	"clientName":   {"clienteNombre"},
	"vendedorId":   {"vendorId"},
	"vendedorName": {"vendedorNombre"},
	"totalVenta":   {"totalAmount"},
	"estado":       {"status"},
	"fecha":        {"saleDate"},
}

// clavesVenta devuelve la clave actual seguida de sus alias legados
func clavesVenta(actual string) []string {
	return append([]string{actual}, aliasesVenta[actual]...)
}

// campoVenta devuelve el valor crudo del campo, resolviendo alias legados
func campoVenta(data map[string]interface{}, actual string) interface{} {
	for _, k := range clavesVenta(actual) {
		if v, ok := data[k]; ok && v != nil {
			return v
		}
	}
	return nil
}
