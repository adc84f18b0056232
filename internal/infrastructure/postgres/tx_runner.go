package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/orders"
	"github.com/Planeacion2510/NX-01-sub000/internal/application/stock"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner y orders.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL, entregando
// repositorios atados a la tx. Consecutivo + insert del documento, o bloqueo
// del ítem + append al ledger, comparten siempre la misma transacción.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción para operaciones del ledger de inventario y hace
// Commit o Rollback según el resultado de fn.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.StockItemRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return r.inTx(ctx, func(tx Querier) error {
		return fn(NewStockItemRepository(tx), NewStockMovementRepository(tx))
	})
}

// RunPurchase inicia una transacción para crear una orden de compra:
// consecutivo + cabecera + líneas, todo o nada.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	seqRepo repository.SequenceRepository,
	orderRepo repository.PurchaseOrderRepository,
) error) error {
	return r.inTx(ctx, func(tx Querier) error {
		return fn(NewSequenceRepository(tx), NewPurchaseOrderRepository(tx))
	})
}

// RunWork inicia una transacción para crear una orden de trabajo.
func (r *TxRunner) RunWork(ctx context.Context, fn func(
	seqRepo repository.SequenceRepository,
	orderRepo repository.WorkOrderRepository,
) error) error {
	return r.inTx(ctx, func(tx Querier) error {
		return fn(NewSequenceRepository(tx), NewWorkOrderRepository(tx))
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(tx Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
