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

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

const stockItemColumns = `id, code, name, description, type, supplier_id,
	       min_stock, max_stock, unit_price, tax_rate, supplier_discount,
	       created_at, updated_at`

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL
// (usable con pool o tx). La tabla stock_items no tiene columna de stock:
// el stock vigente se deriva del ledger.
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

// Create persiste un nuevo ítem.
func (r *StockItemRepo) Create(ctx context.Context, item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (id, code, name, description, type, supplier_id, min_stock, max_stock, unit_price, tax_rate, supplier_discount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Code, item.Name, item.Description, item.Type, nullIfEmpty(item.SupplierID),
		item.MinStock, item.MaxStock, item.UnitPrice, item.TaxRate, item.SupplierDiscount,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID, o nil si no existe.
func (r *StockItemRepo) GetByID(ctx context.Context, id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1`
	item, err := scanStockItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return item, nil
}

// GetByCode obtiene un ítem por código, o nil si no existe.
func (r *StockItemRepo) GetByCode(ctx context.Context, code string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE code = $1`
	item, err := scanStockItem(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item by code: %w", err)
	}
	return item, nil
}

// GetForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE) para
// serializar movimientos concurrentes sobre el mismo ítem.
func (r *StockItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1 FOR UPDATE`
	item, err := scanStockItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item for update: %w", err)
	}
	return item, nil
}

// Update actualiza los campos editables. Code es inmutable.
func (r *StockItemRepo) Update(ctx context.Context, item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET name = $2, description = $3, type = $4, supplier_id = $5,
		    min_stock = $6, max_stock = $7, unit_price = $8, tax_rate = $9,
		    supplier_discount = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Type, nullIfEmpty(item.SupplierID),
		item.MinStock, item.MaxStock, item.UnitPrice, item.TaxRate,
		item.SupplierDiscount, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	return nil
}

// Delete borra el ítem; la FK con ON DELETE CASCADE arrastra sus movimientos.
func (r *StockItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	return nil
}

// List lista ítems ordenados por código, paginado.
func (r *StockItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func scanStockItem(row pgxScanner) (*entity.StockItem, error) {
	var item entity.StockItem
	var supplierID *string
	err := row.Scan(
		&item.ID, &item.Code, &item.Name, &item.Description, &item.Type, &supplierID,
		&item.MinStock, &item.MaxStock, &item.UnitPrice, &item.TaxRate, &item.SupplierDiscount,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if supplierID != nil {
		item.SupplierID = *supplierID
	}
	return &item, nil
}
