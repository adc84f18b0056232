package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Planeacion2510/NX-01-sub000/internal/infrastructure/storage"
)

func TestLocalStorage_GuardaBajoElRaiz(t *testing.T) {
	root := t.TempDir()
	st := storage.NewLocalStorage(root)

	path, err := st.Save(context.Background(), "00042/documentos/informe.pdf", strings.NewReader("contenido"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "00042", "documentos", "informe.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "contenido", string(data))
}

func TestLocalStorage_SobrescribeArchivoExistente(t *testing.T) {
	root := t.TempDir()
	st := storage.NewLocalStorage(root)
	ctx := context.Background()

	_, err := st.Save(ctx, "00001/otros/nota.txt", strings.NewReader("v1"))
	require.NoError(t, err)
	path, err := st.Save(ctx, "00001/otros/nota.txt", strings.NewReader("v2"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestLocalStorage_RechazaRutasQueEscapanDelRaiz(t *testing.T) {
	st := storage.NewLocalStorage(t.TempDir())
	ctx := context.Background()

	_, err := st.Save(ctx, "../fuera.txt", strings.NewReader("x"))
	assert.Error(t, err)

	_, err = st.Save(ctx, "/etc/passwd", strings.NewReader("x"))
	assert.Error(t, err)
}
