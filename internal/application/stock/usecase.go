package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/dto"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/pricing"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/repository"
)

// Policy políticas del ledger de inventario.
// AllowNegativeStock: el sistema original nunca impidió que el stock quedara
// negativo (permite registrar backorders); se mantiene como comportamiento por
// defecto y se deja configurable.
type Policy struct {
	AllowNegativeStock bool
}

// UseCase casos de uso de inventario: CRUD de ítems, ledger de movimientos y
// consultas de stock/valorización derivadas.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.StockItemRepository
	movRepo  repository.StockMovementRepository
	policy   Policy
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, itemRepo repository.StockItemRepository, movRepo repository.StockMovementRepository, policy Policy) *UseCase {
	return &UseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo, policy: policy}
}

// CreateItem crea un ítem de inventario. El stock inicia en 0 (sin movimientos).
func (uc *UseCase) CreateItem(ctx context.Context, in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	existing, err := uc.itemRepo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:               uuid.New().String(),
		Code:             in.Code,
		Name:             in.Name,
		Description:      in.Description,
		Type:             in.Type,
		SupplierID:       in.SupplierID,
		MinStock:         in.MinStock,
		MaxStock:         in.MaxStock,
		UnitPrice:        in.UnitPrice,
		TaxRate:          in.TaxRate,
		SupplierDiscount: in.SupplierDiscount,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return uc.toResponse(item, decimal.Zero), nil
}

// GetItem devuelve el ítem con su stock derivado y precios calculados.
func (uc *UseCase) GetItem(ctx context.Context, id string) (*dto.StockItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	current, err := uc.movRepo.CurrentStock(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(item, current), nil
}

// UpdateItem actualiza los campos editables del ítem. Code es inmutable.
func (uc *UseCase) UpdateItem(ctx context.Context, id string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = in.Name
	item.Description = in.Description
	item.Type = in.Type
	item.SupplierID = in.SupplierID
	item.MinStock = in.MinStock
	item.MaxStock = in.MaxStock
	item.UnitPrice = in.UnitPrice
	item.TaxRate = in.TaxRate
	item.SupplierDiscount = in.SupplierDiscount
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	current, err := uc.movRepo.CurrentStock(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(item, current), nil
}

// DeleteItem borra el ítem y, en cascada, todo su ledger de movimientos.
func (uc *UseCase) DeleteItem(ctx context.Context, id string) error {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(ctx, id)
}

// ListItems lista ítems con stock derivado, paginado.
func (uc *UseCase) ListItems(ctx context.Context, limit, offset int) (*dto.StockItemListResponse, error) {
	items, err := uc.itemRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockItemResponse, 0, len(items))
	for _, item := range items {
		current, err := uc.movRepo.CurrentStock(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, uc.toResponse(item, current))
	}
	return &dto.StockItemListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// RegisterMovement agrega un registro al ledger (entrada o salida).
// La cantidad debe ser estrictamente positiva. Todo ocurre en una transacción:
// bloqueo de la fila del ítem, verificación de la política de stock negativo y
// append del movimiento. No se muta ninguna columna de stock: no existe.
func (uc *UseCase) RegisterMovement(ctx context.Context, userID, itemID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Direction != entity.DirectionEntrada && in.Direction != entity.DirectionSalida {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Direction: in.Direction,
		Quantity:  in.Quantity,
		Note:      in.Note,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del ítem (SELECT FOR UPDATE): serializa salidas
		// concurrentes frente a la verificación de stock.
		item, err := itemRepo.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if in.Direction == entity.DirectionSalida && !uc.policy.AllowNegativeStock {
			current, err := movRepo.CurrentStock(ctx, itemID)
			if err != nil {
				return err
			}
			if current.Sub(in.Quantity).IsNegative() {
				return domain.ErrInsufficientStock
			}
		}
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// CurrentStock deriva el stock actual del ítem desde el ledger.
func (uc *UseCase) CurrentStock(ctx context.Context, itemID string) (decimal.Decimal, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return decimal.Zero, err
	}
	if item == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	return uc.movRepo.CurrentStock(ctx, itemID)
}

// ListMovements devuelve el ledger de un ítem con su stock derivado.
func (uc *UseCase) ListMovements(ctx context.Context, itemID string, limit, offset int) (*dto.MovementListResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movRepo.ListByItem(ctx, itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	current, err := uc.movRepo.CurrentStock(ctx, itemID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		ItemID:       itemID,
		CurrentStock: current,
		Movements:    out,
		Page:         dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *UseCase) toResponse(item *entity.StockItem, current decimal.Decimal) *dto.StockItemResponse {
	withTax := pricing.PriceWithTax(item.UnitPrice, item.TaxRate)
	net := pricing.NetPrice(withTax, item.SupplierDiscount)
	return &dto.StockItemResponse{
		ID:               item.ID,
		Code:             item.Code,
		Name:             item.Name,
		Description:      item.Description,
		Type:             item.Type,
		SupplierID:       item.SupplierID,
		MinStock:         item.MinStock,
		MaxStock:         item.MaxStock,
		UnitPrice:        item.UnitPrice,
		TaxRate:          item.TaxRate,
		SupplierDiscount: item.SupplierDiscount,
		CurrentStock:     current,
		PriceWithTax:     withTax,
		NetPrice:         net,
		TotalValue:       pricing.TotalValue(net, current),
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Direction: m.Direction,
		Quantity:  m.Quantity,
		Note:      m.Note,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
