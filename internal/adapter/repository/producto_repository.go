package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/dmfierro/ventas-campo/internal/adapter/normalizer"
	"github.com/dmfierro/ventas-campo/internal/domain/producto"
)

const (
	coleccionProductos  = "productos"
	coleccionCategorias = "categorias"
)

// ProductoRepository implementa la interfaz producto.Repository sobre Firestore
type ProductoRepository struct {
	fs *firestore.Client
}

// NewProductoRepository crea una nueva instancia de ProductoRepository
func NewProductoRepository(fs *firestore.Client) producto.Repository {
	return &ProductoRepository{fs: fs}
}

// FindAll implementa producto.Repository.FindAll
func (r *ProductoRepository) FindAll(ctx context.Context) ([]producto.Producto, error) {
	iter := r.fs.Collection(coleccionProductos).Documents(ctx)
	defer iter.Stop()

	var productos []producto.Producto
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error al listar productos: %w", err)
		}
		productos = append(productos, normalizer.Producto(doc.Ref.ID, doc.Data()))
	}
	return productos, nil
}

// CategoriaRepository implementa la interfaz producto.CategoriaRepository sobre Firestore
type CategoriaRepository struct {
	fs *firestore.Client
}

// NewCategoriaRepository crea una nueva instancia de CategoriaRepository
func NewCategoriaRepository(fs *firestore.Client) producto.CategoriaRepository {
	return &CategoriaRepository{fs: fs}
}

// FindAll implementa producto.CategoriaRepository.FindAll
func (r *CategoriaRepository) FindAll(ctx context.Context) ([]producto.Categoria, error) {
	iter := r.fs.Collection(coleccionCategorias).Documents(ctx)
	defer iter.Stop()

	var categorias []producto.Categoria
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error al listar categorías: %w", err)
		}
		categorias = append(categorias, normalizer.Categoria(doc.Ref.ID, doc.Data()))
	}
	return categorias, nil
}
