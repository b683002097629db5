package cliente

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio de clientes
type Repository interface {
	// FindByVendedor lista los clientes asignados a un vendedor
	FindByVendedor(ctx context.Context, vendedorID string) ([]Cliente, error)
}
