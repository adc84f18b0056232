package repository

import "context"

// SequenceRepository define el puerto del contador de consecutivos por tipo de documento.
//
// NextNumber incrementa y devuelve el contador de forma atómica. DEBE ejecutarse
// dentro de la misma transacción que el insert del documento: si la transacción
// hace rollback, el consumo del número se revierte junto con el documento.
// El contador nunca retrocede: borrar el documento con el número más alto no
// libera ese número.
type SequenceRepository interface {
	NextNumber(ctx context.Context, kind string) (int64, error)
}
