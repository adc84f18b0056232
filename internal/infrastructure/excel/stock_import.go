package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/dto"
)

// ParseStockWorkbook lee la primera hoja de un XLSX y devuelve las filas de
// importación (código, nombre, cantidad). La primera fila se trata como
// encabezado y se descarta. Celdas de cantidad ilegibles quedan en 0: la
// validación fila a fila es responsabilidad del caso de uso de importación.
func ParseStockWorkbook(r io.Reader) ([]dto.StockImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook sin hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer filas: %w", err)
	}

	var out []dto.StockImportRow
	for i, row := range rows {
		if i == 0 {
			continue // encabezado
		}
		out = append(out, dto.StockImportRow{
			Code:     cell(row, 0),
			Name:     cell(row, 1),
			Quantity: parseQuantity(cell(row, 2)),
		})
	}
	return out, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseQuantity(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	q, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return q
}
