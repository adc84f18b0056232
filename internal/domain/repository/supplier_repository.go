package repository

import (
	"context"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para proveedores (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error
}
