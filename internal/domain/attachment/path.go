package attachment

import (
	"path"
	"strings"
)

// Categorías de adjunto según la extensión del archivo.
const (
	CategoryEvidencias = "evidencias"
	CategoryDocumentos = "documentos"
	CategoryOtros      = "otros"
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".bmp": true, ".webp": true, ".heic": true,
}

var documentExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
	".xls": true, ".xlsx": true, ".ppt": true, ".pptx": true,
	".txt": true, ".csv": true,
}

// CategoryFor decide la carpeta destino de un archivo por su extensión:
// imágenes → evidencias, ofimática/pdf → documentos, resto → otros.
func CategoryFor(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	switch {
	case imageExtensions[ext]:
		return CategoryEvidencias
	case documentExtensions[ext]:
		return CategoryDocumentos
	default:
		return CategoryOtros
	}
}

// PathFor deriva la ruta de almacenamiento de un adjunto a partir del número
// del documento dueño: <número>/<categoría>/<archivo>. Determinística: el mismo
// documento y archivo siempre producen la misma ruta.
func PathFor(documentNumber, filename string) string {
	return path.Join(documentNumber, CategoryFor(filename), path.Base(filename))
}
