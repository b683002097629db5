package producto

// Producto representa un artículo del catálogo general (no pertenece a ningún vendedor)
type Producto struct {
	ID                 string   `json:"id"`                           // ID del documento
	Nombre             string   `json:"nombre"`                       // Nombre del producto
	Precio             float64  `json:"precio"`                       // Precio de venta
	Costo              float64  `json:"costo"`                        // Costo
	Stock              *int     `json:"stock,omitempty"`              // Existencias (opcional)
	CategoriaID        string   `json:"categoriaId,omitempty"`        // Categoría (opcional)
	ComisionEspecifica *float64 `json:"comisionEspecifica,omitempty"` // Comisión que pisa la general (opcional)
}

// Categoria agrupa productos y puede definir una comisión general propia
type Categoria struct {
	ID              string   `json:"id"`
	Nombre          string   `json:"nombre"`
	ComisionGeneral *float64 `json:"comisionGeneral,omitempty"`
}

// ComisionAplicable resuelve el porcentaje de comisión para el producto: la
// específica del producto primero, después la de su categoría, y si no hay
// ninguna, el porcentaje general del vendedor.
func (p *Producto) ComisionAplicable(categorias []Categoria, comisionVendedor float64) float64 {
	if p.ComisionEspecifica != nil {
		return *p.ComisionEspecifica
	}
	if p.CategoriaID != "" {
		for _, c := range categorias {
			if c.ID == p.CategoriaID && c.ComisionGeneral != nil {
				return *c.ComisionGeneral
			}
		}
	}
	return comisionVendedor
}

// TieneStock indica si el producto registra existencias
func (p *Producto) TieneStock() bool {
	return p.Stock != nil
}
