package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del ledger de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo-append: no expone UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create agrega un registro al ledger.
func (r *StockMovementRepo) Create(ctx context.Context, mov *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, item_id, direction, quantity, note, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.ItemID, mov.Direction, mov.Quantity, mov.Note, nullIfEmpty(mov.CreatedBy), mov.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByItem devuelve el ledger del ítem, más reciente primero, paginado.
func (r *StockMovementRepo) ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, item_id, direction, quantity, note, COALESCE(created_by, ''), created_at
		FROM stock_movements
		WHERE item_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Direction, &m.Quantity, &m.Note, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CurrentStock deriva el stock vigente con un agregado SQL:
// SUM(entradas) − SUM(salidas). Un ítem sin movimientos da 0.
// Bajo read-committed el agregado ve solo movimientos confirmados, que es la
// consistencia que este ledger necesita.
func (r *StockMovementRepo) CurrentStock(ctx context.Context, itemID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN direction = 'entrada' THEN quantity ELSE -quantity END), 0)
		FROM stock_movements
		WHERE item_id = $1`
	var current decimal.Decimal
	if err := r.q.QueryRow(ctx, query, itemID).Scan(&current); err != nil {
		return decimal.Zero, fmt.Errorf("current stock: %w", err)
	}
	return current, nil
}
