package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/dto"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/repository"
)

// ImportUseCase importación y exportación masiva de ítems de inventario.
type ImportUseCase struct {
	itemRepo repository.StockItemRepository
	movRepo  repository.StockMovementRepository
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(itemRepo repository.StockItemRepository, movRepo repository.StockMovementRepository) *ImportUseCase {
	return &ImportUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// ImportRows hace upsert de ítems por código: crea si no existe, actualiza el
// nombre si ya existe. La cantidad de la fila siembra el ledger con una entrada
// inicial (solo al crear; en actualización la cantidad del archivo se ignora
// porque el stock vigente lo manda el ledger).
//
// Filas con código o nombre vacío se omiten y se cuentan como error, pero el
// lote continúa: el fallo de una fila nunca aborta la importación completa.
func (uc *ImportUseCase) ImportRows(ctx context.Context, userID string, rows []dto.StockImportRow) (*dto.StockImportSummary, error) {
	summary := &dto.StockImportSummary{}
	for i, row := range rows {
		code := strings.TrimSpace(row.Code)
		name := strings.TrimSpace(row.Name)
		if code == "" || name == "" {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("fila %d: código o nombre vacío", i+1))
			continue
		}

		existing, err := uc.itemRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		if existing != nil {
			existing.Name = name
			existing.UpdatedAt = now
			if err := uc.itemRepo.Update(ctx, existing); err != nil {
				summary.Skipped++
				summary.Errors = append(summary.Errors, fmt.Sprintf("fila %d: %v", i+1, err))
				continue
			}
			summary.Updated++
			continue
		}

		item := &entity.StockItem{
			ID:        uuid.New().String(),
			Code:      code,
			Name:      name,
			Type:      entity.ItemTypeMateriaPrima,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.itemRepo.Create(ctx, item); err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("fila %d: %v", i+1, err))
			continue
		}
		if row.Quantity.GreaterThan(decimal.Zero) {
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				ItemID:    item.ID,
				Direction: entity.DirectionEntrada,
				Quantity:  row.Quantity,
				Note:      "saldo inicial (importación)",
				CreatedBy: userID,
				CreatedAt: now,
			}
			if err := uc.movRepo.Create(ctx, mov); err != nil {
				return nil, err
			}
		}
		summary.Created++
	}
	return summary, nil
}

// ExportRows produce todas las filas de exportación: campos del ítem más el
// stock derivado del ledger.
func (uc *ImportUseCase) ExportRows(ctx context.Context) ([]dto.StockExportRow, error) {
	const pageSize = 500
	var out []dto.StockExportRow
	for offset := 0; ; offset += pageSize {
		items, err := uc.itemRepo.List(ctx, pageSize, offset)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			break
		}
		for _, item := range items {
			current, err := uc.movRepo.CurrentStock(ctx, item.ID)
			if err != nil {
				return nil, err
			}
			out = append(out, dto.StockExportRow{
				Code:             item.Code,
				Name:             item.Name,
				Type:             item.Type,
				MinStock:         item.MinStock,
				MaxStock:         item.MaxStock,
				UnitPrice:        item.UnitPrice,
				TaxRate:          item.TaxRate,
				SupplierDiscount: item.SupplierDiscount,
				CurrentStock:     current,
			})
		}
		if len(items) < pageSize {
			break
		}
	}
	return out, nil
}
