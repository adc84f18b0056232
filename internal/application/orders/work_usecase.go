package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/dto"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/numbering"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/repository"
)

// Transiciones permitidas para órdenes de trabajo: abierta → en_proceso → cerrada.
var workTransitions = map[string][]string{
	entity.WorkStatusAbierta:   {entity.WorkStatusEnProceso},
	entity.WorkStatusEnProceso: {entity.WorkStatusCerrada},
}

// WorkUseCase órdenes de trabajo: creación con consecutivo transaccional,
// avance de estado y cierre idempotente.
type WorkUseCase struct {
	txRunner  TxRunner
	orderRepo repository.WorkOrderRepository
}

// NewWorkUseCase construye el caso de uso.
func NewWorkUseCase(txRunner TxRunner, orderRepo repository.WorkOrderRepository) *WorkUseCase {
	return &WorkUseCase{txRunner: txRunner, orderRepo: orderRepo}
}

// Create crea la orden tomando el siguiente consecutivo de orden_trabajo en la
// misma transacción del insert (todo o nada).
func (uc *WorkUseCase) Create(ctx context.Context, userID string, in dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	if in.Project == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	order := &entity.WorkOrder{
		ID:          uuid.New().String(),
		Project:     in.Project,
		Description: in.Description,
		Status:      entity.WorkStatusAbierta,
		AssignedTo:  in.AssignedTo,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.RunWork(ctx, func(
		seqRepo repository.SequenceRepository,
		orderRepo repository.WorkOrderRepository,
	) error {
		n, err := seqRepo.NextNumber(ctx, entity.KindWorkOrder)
		if err != nil {
			return err
		}
		order.Number = numbering.Format(n)
		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return toWorkResponse(order), nil
}

// GetByID devuelve la orden o ErrNotFound.
func (uc *WorkUseCase) GetByID(ctx context.Context, id string) (*dto.WorkOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toWorkResponse(order), nil
}

// List lista órdenes paginadas.
func (uc *WorkUseCase) List(ctx context.Context, limit, offset int) (*dto.WorkOrderListResponse, error) {
	list, err := uc.orderRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WorkOrderResponse, 0, len(list))
	for _, order := range list {
		out = append(out, toWorkResponse(order))
	}
	return &dto.WorkOrderListResponse{
		Orders: out,
		Page:   dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Transition avanza el estado (abierta → en_proceso → cerrada).
// Cerrar pasa por Close para mantener la idempotencia del cierre.
func (uc *WorkUseCase) Transition(ctx context.Context, id, newStatus string) (*dto.WorkOrderResponse, error) {
	if newStatus == entity.WorkStatusCerrada {
		return uc.Close(ctx, id)
	}
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !transitionAllowed(workTransitions, order.Status, newStatus) {
		return nil, domain.ErrInvalidTransition
	}
	order.Status = newStatus
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.UpdateStatus(ctx, order); err != nil {
		return nil, err
	}
	return toWorkResponse(order), nil
}

// Close cierra la orden estampando fecha_cierre una sola vez; si ya está
// cerrada devuelve la orden tal cual, sin error y sin tocar la fecha.
func (uc *WorkUseCase) Close(ctx context.Context, id string) (*dto.WorkOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.IsClosed() {
		return toWorkResponse(order), nil
	}
	now := time.Now()
	order.Status = entity.WorkStatusCerrada
	order.ClosedAt = &now
	order.UpdatedAt = now
	if err := uc.orderRepo.UpdateStatus(ctx, order); err != nil {
		return nil, err
	}
	return toWorkResponse(order), nil
}

// Delete borra la orden; su número queda consumido para siempre.
func (uc *WorkUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(ctx, id)
}

func toWorkResponse(order *entity.WorkOrder) *dto.WorkOrderResponse {
	return &dto.WorkOrderResponse{
		ID:          order.ID,
		Number:      order.Number,
		Project:     order.Project,
		Description: order.Description,
		Status:      order.Status,
		AssignedTo:  order.AssignedTo,
		ClosedAt:    order.ClosedAt,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}
