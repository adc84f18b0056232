package numbering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain/numbering"
)

func TestFormat_CincoDigitosConCeros(t *testing.T) {
	assert.Equal(t, "00001", numbering.Format(1))
	assert.Equal(t, "00042", numbering.Format(42))
	assert.Equal(t, "99999", numbering.Format(99999))
}

// A partir de 99999 el número crece en dígitos, no se trunca ni reinicia.
func TestFormat_DesbordeDelAncho(t *testing.T) {
	assert.Equal(t, "100000", numbering.Format(100000))
}

func TestParse_NumeroValido(t *testing.T) {
	n, err := numbering.Parse("00009")
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)

	n, err = numbering.Parse("00010")
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)
}

func TestParse_EntradaInvalida(t *testing.T) {
	for _, s := range []string{"", "   ", "abc", "12a45", "-0001"} {
		_, err := numbering.Parse(s)
		assert.Error(t, err, "debe rechazar %q", s)
	}
}

// El orden correcto es numérico: Format(9) va antes que Format(10).
func TestFormatParse_OrdenNumerico(t *testing.T) {
	prev := int64(0)
	for _, n := range []int64{1, 2, 9, 10, 99, 100, 99999, 100000} {
		parsed, err := numbering.Parse(numbering.Format(n))
		require.NoError(t, err)
		assert.Equal(t, n, parsed)
		assert.Greater(t, parsed, prev)
		prev = parsed
	}
}
