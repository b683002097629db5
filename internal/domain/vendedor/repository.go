package vendedor

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio de vendedores
type Repository interface {
	// FindByAuthUID busca el vendedor enlazado a una identidad de Firebase Auth
	FindByAuthUID(ctx context.Context, authUID string) (*Vendedor, error)

	// FindByID busca un vendedor por el ID de su documento
	FindByID(ctx context.Context, id string) (*Vendedor, error)

	// FindAll lista todos los vendedores
	FindAll(ctx context.Context) ([]Vendedor, error)

	// UpdateAuthUID escribe el enlace firebaseAuthUid sobre un vendedor existente
	UpdateAuthUID(ctx context.Context, id string, authUID string) error
}
