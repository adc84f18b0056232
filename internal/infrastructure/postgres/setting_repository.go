package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo configuración persistida clave/valor sobre PostgreSQL.
type SettingRepo struct {
	q Querier
}

// NewSettingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingRepository(q Querier) *SettingRepo {
	return &SettingRepo{q: q}
}

// Get devuelve nil, nil si la clave no existe.
func (r *SettingRepo) Get(ctx context.Context, key string) (*entity.Setting, error) {
	query := `SELECT key, value, updated_at FROM app_settings WHERE key = $1`
	var s entity.Setting
	err := r.q.QueryRow(ctx, query, key).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return &s, nil
}

// Set crea o sobrescribe el valor de la clave.
func (r *SettingRepo) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO app_settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}
