package zona

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio de zonas
type Repository interface {
	// FindByIDs busca las zonas cuyos IDs estén en la lista. La lista no debe
	// superar el límite del filtro "in" del almacén remoto; recortarla es
	// responsabilidad de quien llama.
	FindByIDs(ctx context.Context, ids []string) ([]Zona, error)
}
