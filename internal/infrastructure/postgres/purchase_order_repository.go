package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL
// (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste la cabecera. El número viene ya asignado por el consecutivo;
// la constraint única sobre number es la última línea de defensa contra duplicados.
func (r *PurchaseOrderRepo) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, number, supplier_id, status, date, notes, closed_at, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.Number, order.SupplierID, order.Status, order.Date,
		order.Notes, order.ClosedAt, nullIfEmpty(order.CreatedBy), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// Un número repetido significa que dos asignaciones no se
			// serializaron: condición detectable y reintentable, nunca
			// un documento duplicado silencioso.
			return domain.ErrConflict
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de detalle. El total de línea no se guarda:
// se calcula al leer.
func (r *PurchaseOrderRepo) CreateItem(ctx context.Context, item *entity.PurchaseOrderItem) error {
	query := `
		INSERT INTO purchase_order_items (id, order_id, product, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, item.ID, item.OrderID, item.Product, item.Quantity, item.UnitPrice)
	if err != nil {
		return fmt.Errorf("insert purchase order item: %w", err)
	}
	return nil
}

// GetByID obtiene la orden con sus líneas, o nil si no existe.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, number, supplier_id, status, date, notes, closed_at, COALESCE(created_by, ''), created_at, updated_at
		FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Number, &o.SupplierID, &o.Status, &o.Date,
		&o.Notes, &o.ClosedAt, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	items, err := r.listItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// List lista órdenes, más reciente primero, paginado (con líneas).
func (r *PurchaseOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, number, supplier_id, status, date, notes, closed_at, COALESCE(created_by, ''), created_at, updated_at
		FROM purchase_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(
			&o.ID, &o.Number, &o.SupplierID, &o.Status, &o.Date,
			&o.Notes, &o.ClosedAt, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.listItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

// UpdateStatus escribe estado y fecha de cierre. El número jamás se toca:
// una edición posterior no renumera el documento.
func (r *PurchaseOrderRepo) UpdateStatus(ctx context.Context, order *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET status = $2, closed_at = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, order.ID, order.Status, order.ClosedAt, order.Notes, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	return nil
}

// Delete borra la orden; la FK con ON DELETE CASCADE arrastra las líneas.
// El consecutivo no se toca: el número queda consumido.
func (r *PurchaseOrderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) listItems(ctx context.Context, orderID string) ([]entity.PurchaseOrderItem, error) {
	query := `
		SELECT id, order_id, product, quantity, unit_price
		FROM purchase_order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	var items []entity.PurchaseOrderItem
	for rows.Next() {
		var item entity.PurchaseOrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.Product, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
