package promocion

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio de promociones
type Repository interface {
	// FindActivas lista sólo las promociones con estado activa
	FindActivas(ctx context.Context) ([]Promocion, error)
}
