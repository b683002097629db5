package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/dmfierro/ventas-campo/internal/adapter/normalizer"
	"github.com/dmfierro/ventas-campo/internal/domain/zona"
)

const coleccionZonas = "zonas"

// ZonaRepository implementa la interfaz zona.Repository sobre Firestore
type ZonaRepository struct {
	fs *firestore.Client
}

// NewZonaRepository crea una nueva instancia de ZonaRepository
func NewZonaRepository(fs *firestore.Client) zona.Repository {
	return &ZonaRepository{fs: fs}
}

// FindByIDs implementa zona.Repository.FindByIDs con un único filtro "in"
// sobre el ID de documento. Firestore limita ese filtro a 30 valores; la
// lista ya debe venir recortada.
func (r *ZonaRepository) FindByIDs(ctx context.Context, ids []string) ([]zona.Zona, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	col := r.fs.Collection(coleccionZonas)
	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, col.Doc(id))
	}

	iter := col.Where(firestore.DocumentID, "in", refs).Documents(ctx)
	defer iter.Stop()

	var zonas []zona.Zona
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error al listar zonas por IDs: %w", err)
		}
		zonas = append(zonas, normalizer.Zona(doc.Ref.ID, doc.Data()))
	}
	return zonas, nil
}
