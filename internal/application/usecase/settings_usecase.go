package usecase

import (
	"context"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/dto"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/repository"
)

// SettingsUseCase lectura y escritura de configuración persistida.
// El valor vive en la base de datos: varias instancias del servicio ven el
// mismo estado (a diferencia de una variable global de proceso).
type SettingsUseCase struct {
	repo repository.SettingRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve el valor de una clave o ErrNotFound.
func (uc *SettingsUseCase) Get(ctx context.Context, key string) (*dto.SettingResponse, error) {
	setting, err := uc.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.SettingResponse{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt,
	}, nil
}

// Set crea o sobrescribe el valor de una clave.
func (uc *SettingsUseCase) Set(ctx context.Context, key, value string) (*dto.SettingResponse, error) {
	if key == "" || value == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Set(ctx, key, value); err != nil {
		return nil, err
	}
	return uc.Get(ctx, key)
}
