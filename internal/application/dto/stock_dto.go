package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockItemRequest body para POST /api/stock/items.
type CreateStockItemRequest struct {
	Code             string          `json:"code" validate:"required,max=50"`
	Name             string          `json:"name" validate:"required,max=200"`
	Description      string          `json:"description,omitempty"`
	Type             string          `json:"type" validate:"required,oneof=materia_prima herramienta maquinaria"`
	SupplierID       string          `json:"supplier_id,omitempty" validate:"omitempty,uuid4"`
	MinStock         decimal.Decimal `json:"min_stock"`
	MaxStock         decimal.Decimal `json:"max_stock"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	SupplierDiscount decimal.Decimal `json:"supplier_discount"`
}

// UpdateStockItemRequest body para PUT /api/stock/items/:id. Code es inmutable.
type UpdateStockItemRequest struct {
	Name             string          `json:"name" validate:"required,max=200"`
	Description      string          `json:"description,omitempty"`
	Type             string          `json:"type" validate:"required,oneof=materia_prima herramienta maquinaria"`
	SupplierID       string          `json:"supplier_id,omitempty" validate:"omitempty,uuid4"`
	MinStock         decimal.Decimal `json:"min_stock"`
	MaxStock         decimal.Decimal `json:"max_stock"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	SupplierDiscount decimal.Decimal `json:"supplier_discount"`
}

// StockItemResponse ítem con su stock derivado y precios calculados.
type StockItemResponse struct {
	ID               string          `json:"id"`
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	Type             string          `json:"type"`
	SupplierID       string          `json:"supplier_id,omitempty"`
	MinStock         decimal.Decimal `json:"min_stock"`
	MaxStock         decimal.Decimal `json:"max_stock"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	SupplierDiscount decimal.Decimal `json:"supplier_discount"`
	CurrentStock     decimal.Decimal `json:"current_stock"`   // derivado del ledger
	PriceWithTax     decimal.Decimal `json:"price_with_tax"`  // unit_price × (1 + tax/100)
	NetPrice         decimal.Decimal `json:"net_price"`       // con descuento de proveedor
	TotalValue       decimal.Decimal `json:"total_value"`     // net_price × current_stock
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// StockItemListResponse listado paginado de ítems.
type StockItemListResponse struct {
	Items []*StockItemResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// RegisterMovementRequest body para POST /api/stock/items/:id/movements.
type RegisterMovementRequest struct {
	Direction string          `json:"direction" validate:"required,oneof=entrada salida"`
	Quantity  decimal.Decimal `json:"quantity"`
	Note      string          `json:"note,omitempty" validate:"max=500"`
}

// MovementResponse un registro del ledger.
type MovementResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	Direction string          `json:"direction"`
	Quantity  decimal.Decimal `json:"quantity"`
	Note      string          `json:"note,omitempty"`
	CreatedBy string          `json:"created_by,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// MovementListResponse ledger de un ítem con el stock derivado.
type MovementListResponse struct {
	ItemID       string              `json:"item_id"`
	CurrentStock decimal.Decimal     `json:"current_stock"`
	Movements    []*MovementResponse `json:"movements"`
	Page         PageResponse        `json:"page"`
}
