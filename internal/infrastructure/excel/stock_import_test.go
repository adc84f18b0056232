package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Planeacion2510/NX-01-sub000/internal/infrastructure/excel"
)

// buildWorkbook arma un XLSX en memoria con encabezado más las filas dadas.
func buildWorkbook(t *testing.T, rows [][]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	all := append([][]any{{"Codigo", "Nombre", "Cantidad"}}, rows...)
	for i, row := range all {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestParseStockWorkbook_DescartaEncabezadoYParseaFilas(t *testing.T) {
	r := buildWorkbook(t, [][]any{
		{"MP-001", "Varilla 3/8", 10},
		{"MP-002", "Cemento gris", "4.5"},
	})

	rows, err := excel.ParseStockWorkbook(r)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "MP-001", rows[0].Code)
	assert.Equal(t, "Varilla 3/8", rows[0].Name)
	assert.True(t, rows[0].Quantity.Equal(rows[0].Quantity.Truncate(0)), "10 debe parsear entero")
	assert.Equal(t, "10", rows[0].Quantity.String())
	assert.Equal(t, "4.5", rows[1].Quantity.String())
}

// Cantidades ilegibles quedan en 0: la validación fila a fila es del caso de uso.
func TestParseStockWorkbook_CantidadIlegibleQuedaEnCero(t *testing.T) {
	r := buildWorkbook(t, [][]any{
		{"MP-001", "Varilla 3/8", "diez"},
	})

	rows, err := excel.ParseStockWorkbook(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Quantity.IsZero())
}

// Celdas faltantes al final de la fila se tratan como vacías.
func TestParseStockWorkbook_FilaCorta(t *testing.T) {
	r := buildWorkbook(t, [][]any{
		{"MP-001"},
	})

	rows, err := excel.ParseStockWorkbook(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "MP-001", rows[0].Code)
	assert.Empty(t, rows[0].Name)
	assert.True(t, rows[0].Quantity.IsZero())
}

func TestParseStockWorkbook_ArchivoInvalido(t *testing.T) {
	_, err := excel.ParseStockWorkbook(bytes.NewReader([]byte("esto no es un xlsx")))
	assert.Error(t, err)
}
