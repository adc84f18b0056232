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

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación de WorkOrderRepository sobre PostgreSQL
// (usable con pool o tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

// Create persiste la orden con su número ya asignado por el consecutivo.
func (r *WorkOrderRepo) Create(ctx context.Context, order *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (id, number, project, description, status, assigned_to, closed_at, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.Number, order.Project, order.Description, order.Status,
		order.AssignedTo, order.ClosedAt, nullIfEmpty(order.CreatedBy), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert work order: %w", err)
	}
	return nil
}

// GetByID obtiene la orden, o nil si no existe.
func (r *WorkOrderRepo) GetByID(ctx context.Context, id string) (*entity.WorkOrder, error) {
	query := `
		SELECT id, number, project, description, status, assigned_to, closed_at, COALESCE(created_by, ''), created_at, updated_at
		FROM work_orders WHERE id = $1`
	var o entity.WorkOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Number, &o.Project, &o.Description, &o.Status,
		&o.AssignedTo, &o.ClosedAt, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return &o, nil
}

// List lista órdenes, más reciente primero, paginado.
func (r *WorkOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.WorkOrder, error) {
	query := `
		SELECT id, number, project, description, status, assigned_to, closed_at, COALESCE(created_by, ''), created_at, updated_at
		FROM work_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrder
	for rows.Next() {
		var o entity.WorkOrder
		if err := rows.Scan(
			&o.ID, &o.Number, &o.Project, &o.Description, &o.Status,
			&o.AssignedTo, &o.ClosedAt, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus escribe estado y fecha de cierre; el número nunca cambia.
func (r *WorkOrderRepo) UpdateStatus(ctx context.Context, order *entity.WorkOrder) error {
	query := `
		UPDATE work_orders
		SET status = $2, closed_at = $3, assigned_to = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, order.ID, order.Status, order.ClosedAt, order.AssignedTo, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update work order status: %w", err)
	}
	return nil
}

// Delete borra la orden; el consecutivo no retrocede.
func (r *WorkOrderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM work_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work order: %w", err)
	}
	return nil
}
