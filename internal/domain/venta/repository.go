package venta

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio de ventas
type Repository interface {
	// FindByVendedor lista las ventas registradas por un vendedor
	FindByVendedor(ctx context.Context, vendedorID string) ([]Venta, error)
}
