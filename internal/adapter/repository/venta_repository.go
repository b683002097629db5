package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/dmfierro/ventas-campo/internal/adapter/normalizer"
	"github.com/dmfierro/ventas-campo/internal/domain/venta"
)

const coleccionVentas = "ventas"

// VentaRepository implementa la interfaz venta.Repository sobre Firestore
type VentaRepository struct {
	fs *firestore.Client
}

// NewVentaRepository crea una nueva instancia de VentaRepository
func NewVentaRepository(fs *firestore.Client) venta.Repository {
	return &VentaRepository{fs: fs}
}

// FindByVendedor implementa venta.Repository.FindByVendedor. Cada documento
// pasa por el normalizador especializado de ventas, que resuelve los alias
// de esquema legados.
func (r *VentaRepository) FindByVendedor(ctx context.Context, vendedorID string) ([]venta.Venta, error) {
	iter := r.fs.Collection(coleccionVentas).
		Where("vendedorId", "==", vendedorID).
		Documents(ctx)
	defer iter.Stop()

	var ventas []venta.Venta
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error al listar ventas del vendedor: %w", err)
		}
		ventas = append(ventas, normalizer.Venta(doc.Ref.ID, doc.Data()))
	}
	return ventas, nil
}
