package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/dto"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/numbering"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/repository"
)

// Transiciones permitidas para órdenes de compra:
// borrador → pendiente → {aprobada, rechazada} → cerrada.
var purchaseTransitions = map[string][]string{
	entity.PurchaseStatusBorrador:  {entity.PurchaseStatusPendiente},
	entity.PurchaseStatusPendiente: {entity.PurchaseStatusAprobada, entity.PurchaseStatusRechazada},
	entity.PurchaseStatusAprobada:  {entity.PurchaseStatusCerrada},
	entity.PurchaseStatusRechazada: {entity.PurchaseStatusCerrada},
}

// PurchaseUseCase órdenes de compra: creación con consecutivo transaccional,
// transiciones de estado y cierre idempotente.
type PurchaseUseCase struct {
	txRunner     TxRunner
	orderRepo    repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(txRunner TxRunner, orderRepo repository.PurchaseOrderRepository, supplierRepo repository.SupplierRepository) *PurchaseUseCase {
	return &PurchaseUseCase{txRunner: txRunner, orderRepo: orderRepo, supplierRepo: supplierRepo}
}

// Create crea la orden en una sola transacción: toma el siguiente consecutivo
// de orden_compra (incremento atómico, sin carrera "max+1") e inserta cabecera
// y líneas. Si algo falla, el rollback devuelve también el número.
func (uc *PurchaseUseCase) Create(ctx context.Context, userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Product == "" || !item.Quantity.GreaterThan(decimal.Zero) || item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	order := &entity.PurchaseOrder{
		ID:         uuid.New().String(),
		SupplierID: in.SupplierID,
		Status:     entity.PurchaseStatusBorrador,
		Date:       date,
		Notes:      in.Notes,
		CreatedBy:  userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, item := range in.Items {
		order.Items = append(order.Items, entity.PurchaseOrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	err = uc.txRunner.RunPurchase(ctx, func(
		seqRepo repository.SequenceRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		n, err := seqRepo.NextNumber(ctx, entity.KindPurchaseOrder)
		if err != nil {
			return err
		}
		order.Number = numbering.Format(n)
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		for i := range order.Items {
			if err := orderRepo.CreateItem(ctx, &order.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(order), nil
}

// GetByID devuelve la orden con sus líneas y totales derivados.
func (uc *PurchaseUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toPurchaseResponse(order), nil
}

// List lista órdenes paginadas.
func (uc *PurchaseUseCase) List(ctx context.Context, limit, offset int) (*dto.PurchaseOrderListResponse, error) {
	list, err := uc.orderRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseOrderResponse, 0, len(list))
	for _, order := range list {
		out = append(out, toPurchaseResponse(order))
	}
	return &dto.PurchaseOrderListResponse{
		Orders: out,
		Page:   dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Transition cambia el estado de la orden siguiendo el flujo
// borrador → pendiente → {aprobada, rechazada} → cerrada.
// Para cerrar usar Close (estampa fecha de cierre y es idempotente).
func (uc *PurchaseUseCase) Transition(ctx context.Context, id, newStatus string) (*dto.PurchaseOrderResponse, error) {
	if newStatus == entity.PurchaseStatusCerrada {
		return uc.Close(ctx, id)
	}
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !transitionAllowed(purchaseTransitions, order.Status, newStatus) {
		return nil, domain.ErrInvalidTransition
	}
	order.Status = newStatus
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.UpdateStatus(ctx, order); err != nil {
		return nil, err
	}
	return toPurchaseResponse(order), nil
}

// Close cierra la orden y estampa la fecha de cierre una sola vez.
// Cerrar una orden ya cerrada es un no-op: no cambia fecha_cierre ni falla.
func (uc *PurchaseUseCase) Close(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.IsClosed() {
		return toPurchaseResponse(order), nil
	}
	now := time.Now()
	order.Status = entity.PurchaseStatusCerrada
	order.ClosedAt = &now
	order.UpdatedAt = now
	if err := uc.orderRepo.UpdateStatus(ctx, order); err != nil {
		return nil, err
	}
	return toPurchaseResponse(order), nil
}

// Delete borra la orden. El consecutivo NO retrocede: el número queda consumido.
func (uc *PurchaseUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(ctx, id)
}

func transitionAllowed(transitions map[string][]string, from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func toPurchaseResponse(order *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	items := make([]dto.PurchaseOrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.PurchaseOrderItemResponse{
			ID:        item.ID,
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal(),
		})
	}
	return &dto.PurchaseOrderResponse{
		ID:         order.ID,
		Number:     order.Number,
		SupplierID: order.SupplierID,
		Status:     order.Status,
		Date:       order.Date,
		Notes:      order.Notes,
		ClosedAt:   order.ClosedAt,
		Total:      order.Total(),
		Items:      items,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}
