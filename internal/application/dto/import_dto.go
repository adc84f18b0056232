package dto

import "github.com/shopspring/decimal"

// StockImportRow una fila del archivo de importación masiva (código, nombre, cantidad).
type StockImportRow struct {
	Code     string
	Name     string
	Quantity decimal.Decimal
}

// StockImportSummary resultado de la importación masiva.
// La importación es tolerante a fallos parciales: una fila mala se cuenta como
// omitida y el lote continúa; el lote nunca aborta por una sola fila.
type StockImportSummary struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"` // motivo por fila omitida
}

// StockExportRow una fila del archivo de exportación (todos los campos más el stock derivado).
type StockExportRow struct {
	Code             string
	Name             string
	Type             string
	MinStock         decimal.Decimal
	MaxStock         decimal.Decimal
	UnitPrice        decimal.Decimal
	TaxRate          decimal.Decimal
	SupplierDiscount decimal.Decimal
	CurrentStock     decimal.Decimal
}
