package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmfierro/ventas-campo/internal/adapter/normalizer"
	"github.com/dmfierro/ventas-campo/internal/domain/vendedor"
)

// coleccionVendedores es el nombre de la colección remota
const coleccionVendedores = "vendedores"

// VendedorRepository implementa la interfaz vendedor.Repository sobre Firestore
type VendedorRepository struct {
	fs *firestore.Client
}

// NewVendedorRepository crea una nueva instancia de VendedorRepository
func NewVendedorRepository(fs *firestore.Client) vendedor.Repository {
	return &VendedorRepository{fs: fs}
}

// FindByAuthUID implementa vendedor.Repository.FindByAuthUID
func (r *VendedorRepository) FindByAuthUID(ctx context.Context, authUID string) (*vendedor.Vendedor, error) {
	iter := r.fs.Collection(coleccionVendedores).
		Where("firebaseAuthUid", "==", authUID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, vendedor.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar vendedor por firebaseAuthUid: %w", err)
	}

	v := normalizer.Vendedor(doc.Ref.ID, doc.Data())
	return &v, nil
}

// FindByID implementa vendedor.Repository.FindByID
func (r *VendedorRepository) FindByID(ctx context.Context, id string) (*vendedor.Vendedor, error) {
	doc, err := r.fs.Collection(coleccionVendedores).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, vendedor.ErrNoEncontrado
		}
		return nil, fmt.Errorf("error al buscar vendedor por ID: %w", err)
	}

	v := normalizer.Vendedor(doc.Ref.ID, doc.Data())
	return &v, nil
}

// FindAll implementa vendedor.Repository.FindAll
func (r *VendedorRepository) FindAll(ctx context.Context) ([]vendedor.Vendedor, error) {
	iter := r.fs.Collection(coleccionVendedores).Documents(ctx)
	defer iter.Stop()

	var vendedores []vendedor.Vendedor
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error al listar vendedores: %w", err)
		}
		vendedores = append(vendedores, normalizer.Vendedor(doc.Ref.ID, doc.Data()))
	}
	return vendedores, nil
}

// UpdateAuthUID implementa vendedor.Repository.UpdateAuthUID
func (r *VendedorRepository) UpdateAuthUID(ctx context.Context, id string, authUID string) error {
	_, err := r.fs.Collection(coleccionVendedores).Doc(id).Update(ctx, []firestore.Update{
		{Path: "firebaseAuthUid", Value: authUID},
	})
	if err != nil {
		return fmt.Errorf("error al actualizar firebaseAuthUid del vendedor: %w", err)
	}
	return nil
}
