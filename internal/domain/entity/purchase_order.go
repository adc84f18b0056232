package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchaseStatusBorrador  = "borrador"
	PurchaseStatusPendiente = "pendiente"
	PurchaseStatusAprobada  = "aprobada"
	PurchaseStatusRechazada = "rechazada"
	PurchaseStatusCerrada   = "cerrada"
)

// PurchaseOrder representa una orden de compra a un proveedor.
// Number se asigna una sola vez al crear (consecutivo de 5 dígitos) y nunca cambia.
type PurchaseOrder struct {
	ID         string
	Number     string
	SupplierID string
	Status     string // borrador, pendiente, aprobada, rechazada, cerrada
	Date       time.Time
	Notes      string
	ClosedAt   *time.Time // fecha_cierre; solo se estampa al cerrar, una vez
	CreatedBy  string     // UserID
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []PurchaseOrderItem
}

// PurchaseOrderItem es una línea de detalle de la orden (producto en texto libre).
type PurchaseOrderItem struct {
	ID        string
	OrderID   string
	Product   string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// LineTotal calcula el total de la línea (cantidad × precio unitario).
// Derivado, nunca se persiste.
func (i PurchaseOrderItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Total suma los totales de línea de la orden.
func (o *PurchaseOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// IsClosed indica si la orden ya está cerrada.
func (o *PurchaseOrder) IsClosed() bool {
	return o.Status == PurchaseStatusCerrada
}
