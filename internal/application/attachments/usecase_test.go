package attachments_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/attachments"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain"
)

// fakeStorage captura la ruta relativa pedida y devuelve una ruta final simulada.
type fakeStorage struct {
	lastRelPath string
}

func (s *fakeStorage) Save(_ context.Context, relPath string, content io.Reader) (string, error) {
	s.lastRelPath = relPath
	if _, err := io.Copy(io.Discard, content); err != nil {
		return "", err
	}
	return "/adjuntos/" + relPath, nil
}

func TestSave_RutaDerivadaPorCategoria(t *testing.T) {
	st := &fakeStorage{}
	uc := attachments.NewUseCase(st)
	ctx := context.Background()

	cases := []struct {
		filename string
		category string
	}{
		{"evidencia.jpg", "evidencias"},
		{"cotizacion.pdf", "documentos"},
		{"listado.xlsx", "documentos"},
		{"backup.zip", "otros"},
	}
	for _, tc := range cases {
		saved, err := uc.Save(ctx, "00042", tc.filename, strings.NewReader("contenido"))
		require.NoError(t, err)
		assert.Equal(t, tc.category, saved.Category, "archivo %s", tc.filename)
		assert.Equal(t, "00042/"+tc.category+"/"+tc.filename, st.lastRelPath)
		assert.Equal(t, "/adjuntos/00042/"+tc.category+"/"+tc.filename, saved.Path)
	}
}

// El mismo documento y archivo siempre caen en la misma ruta.
func TestSave_RutaDeterminista(t *testing.T) {
	st := &fakeStorage{}
	uc := attachments.NewUseCase(st)
	ctx := context.Background()

	first, err := uc.Save(ctx, "00007", "informe.pdf", strings.NewReader("v1"))
	require.NoError(t, err)
	second, err := uc.Save(ctx, "00007", "informe.pdf", strings.NewReader("v2"))
	require.NoError(t, err)
	assert.Equal(t, first.Path, second.Path)
}

func TestSave_EntradasVacias(t *testing.T) {
	uc := attachments.NewUseCase(&fakeStorage{})
	ctx := context.Background()

	_, err := uc.Save(ctx, "", "a.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Save(ctx, "00001", "", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
