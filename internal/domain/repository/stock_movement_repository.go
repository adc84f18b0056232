package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
)

// StockMovementRepository define el puerto del ledger de movimientos (solo-append).
// No hay Update ni Delete: el ledger es inmutable en operación normal.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.StockMovement, error)
	// CurrentStock deriva el stock actual: SUM(entradas) − SUM(salidas).
	// Un ítem sin movimientos tiene stock 0. Nunca se lee de una columna materializada.
	CurrentStock(ctx context.Context, itemID string) (decimal.Decimal, error)
}
