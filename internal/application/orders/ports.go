package orders

import (
	"context"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La asignación del consecutivo y el insert del
// documento DEBEN compartir transacción: o se confirman juntos o ninguno.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		seqRepo repository.SequenceRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error) error

	RunWork(ctx context.Context, fn func(
		seqRepo repository.SequenceRepository,
		orderRepo repository.WorkOrderRepository,
	) error) error
}
