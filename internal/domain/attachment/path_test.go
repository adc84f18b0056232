package attachment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain/attachment"
)

func TestCategoryFor(t *testing.T) {
	cases := map[string]string{
		"foto.jpg":      attachment.CategoryEvidencias,
		"FOTO.PNG":      attachment.CategoryEvidencias,
		"avance.webp":   attachment.CategoryEvidencias,
		"contrato.pdf":  attachment.CategoryDocumentos,
		"acta.docx":     attachment.CategoryDocumentos,
		"listado.xlsx":  attachment.CategoryDocumentos,
		"respaldo.zip":  attachment.CategoryOtros,
		"sin_extension": attachment.CategoryOtros,
	}
	for filename, want := range cases {
		assert.Equal(t, want, attachment.CategoryFor(filename), "archivo %s", filename)
	}
}

func TestPathFor_EsDeterministica(t *testing.T) {
	p1 := attachment.PathFor("00042", "foto.jpg")
	p2 := attachment.PathFor("00042", "foto.jpg")
	assert.Equal(t, p1, p2)
	assert.Equal(t, "00042/evidencias/foto.jpg", p1)
}

func TestPathFor_IgnoraDirectoriosDelNombre(t *testing.T) {
	// El nombre del archivo no puede sacar la ruta fuera del documento.
	p := attachment.PathFor("00001", "carpeta/oculta/informe.pdf")
	assert.Equal(t, "00001/documentos/informe.pdf", p)
}
