package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de ítem de inventario.
const (
	ItemTypeMateriaPrima = "materia_prima"
	ItemTypeHerramienta  = "herramienta"
	ItemTypeMaquinaria   = "maquinaria"
)

// StockItem representa un ítem de inventario (materia prima, herramienta o maquinaria).
// El stock actual NUNCA se guarda como columna: se deriva sumando los movimientos
// del ledger (entradas − salidas). MinStock/MaxStock son cotas informativas, no se
// imponen como restricción dura.
type StockItem struct {
	ID               string
	Code             string // código único del ítem
	Name             string
	Description      string
	Type             string // materia_prima, herramienta, maquinaria
	SupplierID       string
	MinStock         decimal.Decimal
	MaxStock         decimal.Decimal
	UnitPrice        decimal.Decimal
	TaxRate          decimal.Decimal // porcentaje: 0, 5, 19
	SupplierDiscount decimal.Decimal // porcentaje de descuento del proveedor
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
