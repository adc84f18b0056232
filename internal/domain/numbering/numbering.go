package numbering

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain"
)

// Width es el ancho del consecutivo: 5 dígitos con ceros a la izquierda.
const Width = 5

// Format convierte el valor del contador en el número de documento ("00001", "00042"...).
// A partir de 99999 el número crece en dígitos en lugar de truncarse.
func Format(n int64) string {
	return fmt.Sprintf("%0*d", Width, n)
}

// Parse convierte un número de documento a su valor entero.
// La comparación entre números SIEMPRE debe ser numérica, no lexicográfica:
// "00009" < "00010" aunque como strings el orden coincida solo por el padding.
func Parse(number string) (int64, error) {
	s := strings.TrimSpace(number)
	if s == "" {
		return 0, domain.ErrInvalidInput
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, domain.ErrInvalidInput
	}
	return n, nil
}
