package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/dmfierro/ventas-campo/internal/adapter/normalizer"
	"github.com/dmfierro/ventas-campo/internal/domain/ruta"
)

const coleccionRutas = "rutas"

// RutaRepository implementa la interfaz ruta.Repository sobre Firestore
type RutaRepository struct {
	fs *firestore.Client
}

// NewRutaRepository crea una nueva instancia de RutaRepository
func NewRutaRepository(fs *firestore.Client) ruta.Repository {
	return &RutaRepository{fs: fs}
}

// FindByRepartidor implementa ruta.Repository.FindByRepartidor
func (r *RutaRepository) FindByRepartidor(ctx context.Context, repartidorID string) ([]ruta.Ruta, error) {
	iter := r.fs.Collection(coleccionRutas).
		Where("repartidorId", "==", repartidorID).
		Documents(ctx)
	defer iter.Stop()

	var rutas []ruta.Ruta
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error al listar rutas del repartidor: %w", err)
		}
		rutas = append(rutas, normalizer.Ruta(doc.Ref.ID, doc.Data()))
	}
	return rutas, nil
}
