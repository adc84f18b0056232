package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/dto"
	"github.com/Planeacion2510/NX-01-sub000/internal/application/stock"
	"github.com/Planeacion2510/NX-01-sub000/internal/infrastructure/excel"
)

// ImportHandler importación y exportación masiva de inventario en XLSX (protegido).
type ImportHandler struct {
	uc *stock.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *stock.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import godoc
// @Summary      Importación masiva de ítems desde XLSX
// @Description  Multipart con campo "file". Upsert por código; las filas malas se
//               omiten y se reportan, el lote nunca aborta por una sola fila.
// @Tags         stock
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo XLSX (código, nombre, cantidad)"
// @Success      200  {object}  dto.StockImportSummary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	rows, err := excel.ParseStockWorkbook(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_WORKBOOK", Message: err.Error()})
	}

	summary, err := h.uc.ImportRows(c.Context(), GetUserID(c), rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// Export godoc
// @Summary      Exportación del inventario completo a XLSX
// @Description  Incluye todos los campos del ítem más el stock derivado del ledger.
// @Tags         stock
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/stock/export [get]
func (h *ImportHandler) Export(c *fiber.Ctx) error {
	rows, err := h.uc.ExportRows(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	var buf bytes.Buffer
	if err := excel.WriteStockWorkbook(&buf, rows); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.xlsx"`)
	return c.Send(buf.Bytes())
}
