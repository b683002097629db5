package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/dmfierro/ventas-campo/internal/adapter/normalizer"
	"github.com/dmfierro/ventas-campo/internal/domain/cliente"
)

const coleccionClientes = "clientes"

// ClienteRepository implementa la interfaz cliente.Repository sobre Firestore
type ClienteRepository struct {
	fs *firestore.Client
}

// NewClienteRepository crea una nueva instancia de ClienteRepository
func NewClienteRepository(fs *firestore.Client) cliente.Repository {
	return &ClienteRepository{fs: fs}
}

// FindByVendedor implementa cliente.Repository.FindByVendedor
func (r *ClienteRepository) FindByVendedor(ctx context.Context, vendedorID string) ([]cliente.Cliente, error) {
	iter := r.fs.Collection(coleccionClientes).
		Where("vendedorAsignadoId", "==", vendedorID).
		Documents(ctx)
	defer iter.Stop()

	var clientes []cliente.Cliente
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error al listar clientes del vendedor: %w", err)
		}
		clientes = append(clientes, normalizer.Cliente(doc.Ref.ID, doc.Data()))
	}
	return clientes, nil
}
