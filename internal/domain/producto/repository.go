package producto

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio de productos
type Repository interface {
	// FindAll lista el catálogo completo de productos
	FindAll(ctx context.Context) ([]Producto, error)
}

// CategoriaRepository define la interfaz para operaciones de repositorio de categorías
type CategoriaRepository interface {
	// FindAll lista todas las categorías
	FindAll(ctx context.Context) ([]Categoria, error)
}
