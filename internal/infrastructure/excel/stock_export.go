package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/dto"
)

var exportHeaders = []string{
	"Codigo", "Nombre", "Tipo", "StockMin", "StockMax",
	"PrecioUnitario", "IVA", "DescuentoProveedor", "StockActual",
}

// WriteStockWorkbook escribe el inventario completo (campos del ítem más el
// stock derivado del ledger) como XLSX en w.
func WriteStockWorkbook(w io.Writer, rows []dto.StockExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, header := range exportHeaders {
		cellRef, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("celda de encabezado: %w", err)
		}
		if err := f.SetCellValue(sheet, cellRef, header); err != nil {
			return fmt.Errorf("escribir encabezado: %w", err)
		}
	}

	for i, row := range rows {
		values := []any{
			row.Code, row.Name, row.Type,
			row.MinStock.String(), row.MaxStock.String(),
			row.UnitPrice.String(), row.TaxRate.String(),
			row.SupplierDiscount.String(), row.CurrentStock.String(),
		}
		for col, v := range values {
			cellRef, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("celda de datos: %w", err)
			}
			if err := f.SetCellValue(sheet, cellRef, v); err != nil {
				return fmt.Errorf("escribir celda: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("escribir workbook: %w", err)
	}
	return nil
}
