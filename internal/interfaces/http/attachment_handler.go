package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/attachments"
	"github.com/Planeacion2510/NX-01-sub000/internal/application/dto"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain"
)

// AttachmentHandler adjuntos de documentos (protegido).
// La ruta final se deriva del número del documento y la extensión del archivo:
// <raíz>/<número>/<categoría>/<archivo>, con categoría evidencias | documentos | otros.
type AttachmentHandler struct {
	uc *attachments.UseCase
}

// NewAttachmentHandler construye el handler.
func NewAttachmentHandler(uc *attachments.UseCase) *AttachmentHandler {
	return &AttachmentHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir adjunto de un documento
// @Description  Multipart con campo "file". Las imágenes van a evidencias/, los
//               documentos de oficina y PDF a documentos/, el resto a otros/.
// @Tags         attachments
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        number  path      string  true  "Número del documento (p.ej. 00042)"
// @Param        file    formData  file    true  "Archivo a adjuntar"
// @Success      201  {object}  attachments.SavedAttachment
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/documents/{number}/attachments [post]
func (h *AttachmentHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	saved, err := h.uc.Save(c.Context(), c.Params("number"), fileHeader.Filename, f)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número de documento o archivo inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}
