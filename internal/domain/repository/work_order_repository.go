package repository

import (
	"context"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
)

// WorkOrderRepository define el puerto de persistencia para órdenes de trabajo (DIP).
type WorkOrderRepository interface {
	// Create persiste la orden. Number ya debe venir asignado por el consecutivo.
	Create(ctx context.Context, order *entity.WorkOrder) error
	GetByID(ctx context.Context, id string) (*entity.WorkOrder, error)
	List(ctx context.Context, limit, offset int) ([]*entity.WorkOrder, error)
	// UpdateStatus escribe estado y fecha de cierre. Nunca toca Number.
	UpdateStatus(ctx context.Context, order *entity.WorkOrder) error
	Delete(ctx context.Context, id string) error
}
