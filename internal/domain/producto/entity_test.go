package producto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestComisionAplicable(t *testing.T) {
	categorias := []Categoria{
		{ID: "cat1", Nombre: "Almacén", ComisionGeneral: ptr(8)},
		{ID: "cat2", Nombre: "Bebidas"},
	}

	tests := []struct {
		name     string
		producto Producto
		want     float64
	}{
		{
			name:     "la comisión específica del producto gana",
			producto: Producto{CategoriaID: "cat1", ComisionEspecifica: ptr(12)},
			want:     12,
		},
		{
			name:     "sin específica cae en la de la categoría",
			producto: Producto{CategoriaID: "cat1"},
			want:     8,
		},
		{
			name:     "categoría sin comisión cae en la del vendedor",
			producto: Producto{CategoriaID: "cat2"},
			want:     5,
		},
		{
			name:     "sin categoría cae en la del vendedor",
			producto: Producto{},
			want:     5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.producto.ComisionAplicable(categorias, 5))
		})
	}
}
