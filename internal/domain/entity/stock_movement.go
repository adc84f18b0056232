package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de movimiento del ledger de inventario.
const (
	DirectionEntrada = "entrada"
	DirectionSalida  = "salida"
)

// StockMovement es un registro del ledger de inventario (solo-append).
// Quantity siempre es positiva; la dirección indica si suma o resta.
// Un movimiento nunca se actualiza ni se borra en operación normal.
type StockMovement struct {
	ID        string
	ItemID    string
	Direction string // entrada, salida
	Quantity  decimal.Decimal
	Note      string
	CreatedBy string // UserID
	CreatedAt time.Time
}
