package ruta

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio de rutas
type Repository interface {
	// FindByRepartidor lista las rutas asignadas a un chofer de reparto
	FindByRepartidor(ctx context.Context, repartidorID string) ([]Ruta, error)
}
