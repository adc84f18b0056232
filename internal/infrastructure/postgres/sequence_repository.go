package postgres

import (
	"context"
	"fmt"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo implementación de SequenceRepository sobre PostgreSQL.
// Tabla document_sequences(kind text primary key, last_issued bigint).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// NextNumber incrementa y devuelve el contador del tipo de documento en una
// sola sentencia atómica. El upsert toma el bloqueo de fila: dos asignaciones
// concurrentes se serializan en la base de datos y jamás observan el mismo
// valor (elimina la carrera del patrón "max existente + 1").
//
// Debe invocarse con una tx como Querier: si la transacción del documento hace
// rollback, el incremento se revierte con ella.
func (r *SequenceRepo) NextNumber(ctx context.Context, kind string) (int64, error) {
	const query = `
		INSERT INTO document_sequences (kind, last_issued)
		VALUES ($1, 1)
		ON CONFLICT (kind)
		DO UPDATE SET last_issued = document_sequences.last_issued + 1
		RETURNING last_issued`
	var n int64
	if err := r.q.QueryRow(ctx, query, kind).Scan(&n); err != nil {
		return 0, fmt.Errorf("next number for %s: %w", kind, err)
	}
	return n, nil
}
