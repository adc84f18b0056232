package repository

import (
	"context"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
)

// StockItemRepository define el puerto de persistencia para StockItem (DIP).
type StockItemRepository interface {
	Create(ctx context.Context, item *entity.StockItem) error
	GetByID(ctx context.Context, id string) (*entity.StockItem, error)
	GetByCode(ctx context.Context, code string) (*entity.StockItem, error)
	// GetForUpdate bloquea la fila del ítem (SELECT FOR UPDATE) para serializar
	// la verificación de stock con movimientos concurrentes.
	GetForUpdate(ctx context.Context, id string) (*entity.StockItem, error)
	Update(ctx context.Context, item *entity.StockItem) error
	// Delete borra el ítem y, en cascada, sus movimientos.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.StockItem, error)
}
