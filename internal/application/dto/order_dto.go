package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderItemRequest línea de una orden de compra.
type PurchaseOrderItemRequest struct {
	Product   string          `json:"product" validate:"required,max=200"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
// El número NO se envía: lo asigna el consecutivo en la misma transacción.
type CreatePurchaseOrderRequest struct {
	SupplierID string                     `json:"supplier_id" validate:"required,uuid4"`
	Date       *time.Time                 `json:"date,omitempty"`
	Notes      string                     `json:"notes,omitempty" validate:"max=1000"`
	Items      []PurchaseOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// TransitionRequest body para PATCH .../status.
type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
}

// PurchaseOrderItemResponse línea con su total derivado.
type PurchaseOrderItemResponse struct {
	ID        string          `json:"id"`
	Product   string          `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"` // quantity × unit_price, calculado al leer
}

// PurchaseOrderResponse orden completa.
type PurchaseOrderResponse struct {
	ID         string                      `json:"id"`
	Number     string                      `json:"number"`
	SupplierID string                      `json:"supplier_id"`
	Status     string                      `json:"status"`
	Date       time.Time                   `json:"date"`
	Notes      string                      `json:"notes,omitempty"`
	ClosedAt   *time.Time                  `json:"closed_at,omitempty"`
	Total      decimal.Decimal             `json:"total"`
	Items      []PurchaseOrderItemResponse `json:"items"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}

// PurchaseOrderListResponse listado paginado.
type PurchaseOrderListResponse struct {
	Orders []*PurchaseOrderResponse `json:"orders"`
	Page   PageResponse             `json:"page"`
}

// CreateWorkOrderRequest body para POST /api/work-orders.
type CreateWorkOrderRequest struct {
	Project     string `json:"project" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=1000"`
	AssignedTo  string `json:"assigned_to,omitempty" validate:"max=200"`
}

// WorkOrderResponse orden de trabajo.
type WorkOrderResponse struct {
	ID          string     `json:"id"`
	Number      string     `json:"number"`
	Project     string     `json:"project"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// WorkOrderListResponse listado paginado.
type WorkOrderListResponse struct {
	Orders []*WorkOrderResponse `json:"orders"`
	Page   PageResponse         `json:"page"`
}
