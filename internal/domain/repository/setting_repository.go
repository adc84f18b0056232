package repository

import (
	"context"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
)

// SettingRepository define el puerto de configuración persistida (clave/valor).
// Sustituye variables globales de proceso: el valor vive en la base de datos
// y es visible para todas las instancias.
type SettingRepository interface {
	// Get devuelve nil, nil si la clave no existe.
	Get(ctx context.Context, key string) (*entity.Setting, error)
	// Set crea o sobrescribe el valor de la clave.
	Set(ctx context.Context, key, value string) error
}
