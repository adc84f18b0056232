package stock

import (
	"context"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el bloqueo del ítem, la
// verificación de stock y el append al ledger sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
