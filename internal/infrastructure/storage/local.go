package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/attachments"
)

var _ attachments.Storage = (*LocalStorage)(nil)

// LocalStorage guarda adjuntos en el sistema de archivos bajo un directorio raíz.
type LocalStorage struct {
	root string
}

// NewLocalStorage construye el adaptador con el directorio raíz de adjuntos.
func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{root: root}
}

// Save escribe el contenido bajo root/relPath, creando los directorios
// intermedios. Rechaza rutas que escapen del raíz.
func (s *LocalStorage) Save(_ context.Context, relPath string, content io.Reader) (string, error) {
	clean := filepath.Clean(relPath)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("ruta inválida: %s", relPath)
	}
	fullPath := filepath.Join(s.root, clean)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("crear directorio: %w", err)
	}
	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	return fullPath, nil
}
