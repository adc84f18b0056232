package attachments

import (
	"context"
	"io"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/attachment"
)

// Storage puerto de almacenamiento de archivos (disco local, bucket, etc.).
type Storage interface {
	// Save escribe el contenido bajo la ruta relativa y devuelve la ruta final.
	Save(ctx context.Context, relPath string, content io.Reader) (string, error)
}

// SavedAttachment resultado de guardar un adjunto.
type SavedAttachment struct {
	DocumentNumber string `json:"document_number"`
	Category       string `json:"category"`
	Path           string `json:"path"`
}

// UseCase guarda adjuntos bajo la ruta derivada del número del documento dueño:
// <número>/<categoría>/<archivo>, con la categoría decidida por la extensión.
type UseCase struct {
	storage Storage
}

// NewUseCase construye el caso de uso.
func NewUseCase(storage Storage) *UseCase {
	return &UseCase{storage: storage}
}

// Save guarda el archivo del documento indicado. La ruta es determinística:
// el mismo documento y nombre de archivo siempre caen en el mismo lugar.
func (uc *UseCase) Save(ctx context.Context, documentNumber, filename string, content io.Reader) (*SavedAttachment, error) {
	if documentNumber == "" || filename == "" {
		return nil, domain.ErrInvalidInput
	}
	relPath := attachment.PathFor(documentNumber, filename)
	finalPath, err := uc.storage.Save(ctx, relPath, content)
	if err != nil {
		return nil, err
	}
	return &SavedAttachment{
		DocumentNumber: documentNumber,
		Category:       attachment.CategoryFor(filename),
		Path:           finalPath,
	}, nil
}
