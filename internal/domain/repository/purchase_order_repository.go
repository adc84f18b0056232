package repository

import (
	"context"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra (DIP).
type PurchaseOrderRepository interface {
	// Create persiste la cabecera. Number ya debe venir asignado por el consecutivo.
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	CreateItem(ctx context.Context, item *entity.PurchaseOrderItem) error
	// GetByID devuelve la orden con sus líneas, o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error)
	// UpdateStatus escribe estado y fecha de cierre. Nunca toca Number.
	UpdateStatus(ctx context.Context, order *entity.PurchaseOrder) error
	// Delete borra la orden y sus líneas en cascada. El consecutivo NO retrocede.
	Delete(ctx context.Context, id string) error
}
