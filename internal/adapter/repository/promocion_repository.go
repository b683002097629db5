package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/dmfierro/ventas-campo/internal/adapter/normalizer"
	"github.com/dmfierro/ventas-campo/internal/domain/promocion"
)

const coleccionPromociones = "promociones"

// PromocionRepository implementa la interfaz promocion.Repository sobre Firestore
type PromocionRepository struct {
	fs *firestore.Client
}

// NewPromocionRepository crea una nueva instancia de PromocionRepository
func NewPromocionRepository(fs *firestore.Client) promocion.Repository {
	return &PromocionRepository{fs: fs}
}

// FindActivas implementa promocion.Repository.FindActivas
func (r *PromocionRepository) FindActivas(ctx context.Context) ([]promocion.Promocion, error) {
	iter := r.fs.Collection(coleccionPromociones).
		Where("estado", "==", string(promocion.EstadoActiva)).
		Documents(ctx)
	defer iter.Stop()

	var promociones []promocion.Promocion
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error al listar promociones activas: %w", err)
		}
		promociones = append(promociones, normalizer.Promocion(doc.Ref.ID, doc.Data()))
	}
	return promociones, nil
}
