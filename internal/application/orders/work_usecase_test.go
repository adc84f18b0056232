package orders_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/dto"
	"github.com/Planeacion2510/NX-01-sub000/internal/application/orders"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
)

type fakeWorkRepo struct {
	mu      sync.Mutex
	orders  map[string]*entity.WorkOrder
	numbers map[string]bool
}

func newFakeWorkRepo() *fakeWorkRepo {
	return &fakeWorkRepo{
		orders:  make(map[string]*entity.WorkOrder),
		numbers: make(map[string]bool),
	}
}

func (r *fakeWorkRepo) Create(_ context.Context, order *entity.WorkOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.numbers[order.Number] {
		return domain.ErrConflict
	}
	r.numbers[order.Number] = true
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeWorkRepo) GetByID(_ context.Context, id string) (*entity.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *order
	return &cp, nil
}

func (r *fakeWorkRepo) List(_ context.Context, limit, offset int) ([]*entity.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.WorkOrder, 0, len(r.orders))
	for _, order := range r.orders {
		cp := *order
		all = append(all, &cp)
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeWorkRepo) UpdateStatus(_ context.Context, order *entity.WorkOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[order.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Status = order.Status
	stored.ClosedAt = order.ClosedAt
	stored.UpdatedAt = order.UpdatedAt
	return nil
}

func (r *fakeWorkRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func newWorkUseCase(t *testing.T) *orders.WorkUseCase {
	t.Helper()
	seqRepo := newFakeSeqRepo()
	workRepo := newFakeWorkRepo()
	runner := &fakeOrdersTxRunner{seqRepo: seqRepo, workRepo: workRepo}
	return orders.NewWorkUseCase(runner, workRepo)
}

func workRequest() dto.CreateWorkOrderRequest {
	return dto.CreateWorkOrderRequest{
		Project:     "Bodega planta 2",
		Description: "Montaje de estantería pesada",
		AssignedTo:  "Cuadrilla A",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestWorkCreate_ConsecutivoIndependienteDelDeCompras(t *testing.T) {
	// Un mismo contador compartido entre tipos produciría huecos cruzados;
	// cada tipo de documento lleva su propia serie.
	seqRepo := newFakeSeqRepo()
	workRepo := newFakeWorkRepo()
	purchaseRepo := newFakePurchaseRepo()
	supplierRepo := newFakeSupplierRepo()
	runner := &fakeOrdersTxRunner{seqRepo: seqRepo, purchaseRepo: purchaseRepo, workRepo: workRepo}
	workUC := orders.NewWorkUseCase(runner, workRepo)
	purchaseUC := orders.NewPurchaseUseCase(runner, purchaseRepo, supplierRepo)
	ctx := context.Background()

	supplierID := "11111111-1111-1111-1111-111111111111"
	require.NoError(t, supplierRepo.Create(ctx, &entity.Supplier{ID: supplierID, Name: "X", NIT: "1"}))

	po, err := purchaseUC.Create(ctx, "user-1", purchaseRequest(supplierID))
	require.NoError(t, err)
	wo, err := workUC.Create(ctx, "user-1", workRequest())
	require.NoError(t, err)

	assert.Equal(t, "00001", po.Number)
	assert.Equal(t, "00001", wo.Number, "la serie de trabajo arranca aparte de la de compras")
}

func TestWorkCreate_ProyectoRequerido(t *testing.T) {
	uc := newWorkUseCase(t)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateWorkOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWorkTransition_FlujoCompleto(t *testing.T) {
	uc := newWorkUseCase(t)
	ctx := context.Background()

	order, err := uc.Create(ctx, "user-1", workRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.WorkStatusAbierta, order.Status)
	assert.Nil(t, order.ClosedAt)

	order, err = uc.Transition(ctx, order.ID, entity.WorkStatusEnProceso)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkStatusEnProceso, order.Status)

	order, err = uc.Transition(ctx, order.ID, entity.WorkStatusCerrada)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkStatusCerrada, order.Status)
	assert.NotNil(t, order.ClosedAt)
}

func TestWorkTransition_RetrocesoInvalido(t *testing.T) {
	uc := newWorkUseCase(t)
	ctx := context.Background()

	order, err := uc.Create(ctx, "user-1", workRequest())
	require.NoError(t, err)

	order, err = uc.Transition(ctx, order.ID, entity.WorkStatusEnProceso)
	require.NoError(t, err)

	_, err = uc.Transition(ctx, order.ID, entity.WorkStatusAbierta)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestWorkClose_Idempotente(t *testing.T) {
	uc := newWorkUseCase(t)
	ctx := context.Background()

	order, err := uc.Create(ctx, "user-1", workRequest())
	require.NoError(t, err)

	closed, err := uc.Close(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.ClosedAt)
	firstClosedAt := *closed.ClosedAt

	time.Sleep(10 * time.Millisecond)

	again, err := uc.Close(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, again.ClosedAt)
	assert.True(t, firstClosedAt.Equal(*again.ClosedAt),
		"cerrar una orden ya cerrada no debe mover fecha_cierre")
}

func TestWorkDelete_NoReutilizaElNumero(t *testing.T) {
	uc := newWorkUseCase(t)
	ctx := context.Background()

	first, err := uc.Create(ctx, "user-1", workRequest())
	require.NoError(t, err)
	require.Equal(t, "00001", first.Number)

	require.NoError(t, uc.Delete(ctx, first.ID))

	next, err := uc.Create(ctx, "user-1", workRequest())
	require.NoError(t, err)
	assert.Equal(t, "00002", next.Number)
}

func TestWorkGetByID_NoExiste(t *testing.T) {
	uc := newWorkUseCase(t)

	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
