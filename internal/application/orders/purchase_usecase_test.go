package orders_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Planeacion2510/NX-01-sub000/internal/application/dto"
	"github.com/Planeacion2510/NX-01-sub000/internal/application/orders"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/entity"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/numbering"
	"github.com/Planeacion2510/NX-01-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeSeqRepo serializa NextNumber con un mutex, igual que lo hace la fila
// bloqueada del contador en PostgreSQL. Nunca retrocede.
type fakeSeqRepo struct {
	mu       sync.Mutex
	counters map[string]int64
}

func newFakeSeqRepo() *fakeSeqRepo {
	return &fakeSeqRepo{counters: make(map[string]int64)}
}

func (r *fakeSeqRepo) NextNumber(_ context.Context, kind string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[kind]++
	return r.counters[kind], nil
}

type fakePurchaseRepo struct {
	mu      sync.Mutex
	orders  map[string]*entity.PurchaseOrder
	numbers map[string]bool // unique constraint sobre number
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{
		orders:  make(map[string]*entity.PurchaseOrder),
		numbers: make(map[string]bool),
	}
}

func (r *fakePurchaseRepo) Create(_ context.Context, order *entity.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.numbers[order.Number] {
		return domain.ErrConflict
	}
	r.numbers[order.Number] = true
	cp := *order
	cp.Items = nil
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) CreateItem(_ context.Context, item *entity.PurchaseOrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[item.OrderID]
	if !ok {
		return domain.ErrNotFound
	}
	order.Items = append(order.Items, *item)
	return nil
}

func (r *fakePurchaseRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *order
	cp.Items = append([]entity.PurchaseOrderItem(nil), order.Items...)
	return &cp, nil
}

func (r *fakePurchaseRepo) List(_ context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.PurchaseOrder, 0, len(r.orders))
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

func (r *fakePurchaseRepo) UpdateStatus(_ context.Context, order *entity.PurchaseOrder) error {
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

// Delete borra la orden pero NO libera el número: el contador vive aparte.
func (r *fakePurchaseRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

type fakeSupplierRepo struct {
	mu        sync.Mutex
	suppliers map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[string]*entity.Supplier)}
}

func (r *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) List(_ context.Context, _, _ int) ([]*entity.Supplier, error) {
	return nil, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, _ *entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) Delete(_ context.Context, _ string) error           { return nil }

// fakeOrdersTxRunner pasa los mismos repos al callback (sin tx real).
type fakeOrdersTxRunner struct {
	seqRepo      repository.SequenceRepository
	purchaseRepo repository.PurchaseOrderRepository
	workRepo     repository.WorkOrderRepository
}

func (r *fakeOrdersTxRunner) RunPurchase(ctx context.Context, fn func(
	seqRepo repository.SequenceRepository,
	orderRepo repository.PurchaseOrderRepository,
) error) error {
	return fn(r.seqRepo, r.purchaseRepo)
}

func (r *fakeOrdersTxRunner) RunWork(ctx context.Context, fn func(
	seqRepo repository.SequenceRepository,
	orderRepo repository.WorkOrderRepository,
) error) error {
	return fn(r.seqRepo, r.workRepo)
}

func newPurchaseUseCase(t *testing.T) (*orders.PurchaseUseCase, *fakeSupplierRepo, string) {
	t.Helper()
	seqRepo := newFakeSeqRepo()
	orderRepo := newFakePurchaseRepo()
	supplierRepo := newFakeSupplierRepo()
	runner := &fakeOrdersTxRunner{seqRepo: seqRepo, purchaseRepo: orderRepo}
	uc := orders.NewPurchaseUseCase(runner, orderRepo, supplierRepo)

	supplierID := uuid.New().String()
	require.NoError(t, supplierRepo.Create(context.Background(), &entity.Supplier{
		ID: supplierID, Name: "Aceros del Norte", NIT: "900123456-7",
	}))
	return uc, supplierRepo, supplierID
}

func purchaseRequest(supplierID string) dto.CreatePurchaseOrderRequest {
	return dto.CreatePurchaseOrderRequest{
		SupplierID: supplierID,
		Items: []dto.PurchaseOrderItemRequest{
			{Product: "Varilla 3/8", Quantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(2500)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del consecutivo
// ──────────────────────────────────────────────────────────────────────────────

// El número es de 5 dígitos con ceros a la izquierda y arranca en 00001.
func TestPurchaseCreate_NumeroConFormatoConsecutivo(t *testing.T) {
	uc, _, supplierID := newPurchaseUseCase(t)
	ctx := context.Background()

	first, err := uc.Create(ctx, "user-1", purchaseRequest(supplierID))
	require.NoError(t, err)
	assert.Equal(t, "00001", first.Number)

	second, err := uc.Create(ctx, "user-1", purchaseRequest(supplierID))
	require.NoError(t, err)
	assert.Equal(t, "00002", second.Number)
}

// Creación concurrente: todos los números asignados son únicos, sin huecos.
func TestPurchaseCreate_ConcurrenciaSinDuplicados(t *testing.T) {
	uc, _, supplierID := newPurchaseUseCase(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	numbers := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := uc.Create(ctx, "user-1", purchaseRequest(supplierID))
			require.NoError(t, err)
			numbers <- out.Number
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool, n)
	for num := range numbers {
		assert.False(t, seen[num], "número duplicado: %s", num)
		seen[num] = true
	}
	assert.Len(t, seen, n)
	// El rango completo 00001..00050 debe estar cubierto (sin saltos).
	for i := 1; i <= n; i++ {
		assert.True(t, seen[numbering.Format(int64(i))], "falta el número %d", i)
	}
}

// Borrar una orden nunca retrocede el contador: el número queda consumido.
func TestPurchaseDelete_NoReutilizaElNumero(t *testing.T) {
	uc, _, supplierID := newPurchaseUseCase(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, "user-1", purchaseRequest(supplierID))
		require.NoError(t, err)
	}
	third, err := uc.Create(ctx, "user-1", purchaseRequest(supplierID))
	require.NoError(t, err)
	require.Equal(t, "00004", third.Number)

	require.NoError(t, uc.Delete(ctx, third.ID))

	next, err := uc.Create(ctx, "user-1", purchaseRequest(supplierID))
	require.NoError(t, err)
	assert.Equal(t, "00005", next.Number, "el 00004 borrado no debe reaparecer")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de validación y estados
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseCreate_SinLineas(t *testing.T) {
	uc, _, supplierID := newPurchaseUseCase(t)

	_, err := uc.Create(context.Background(), "user-1", dto.CreatePurchaseOrderRequest{
		SupplierID: supplierID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurchaseCreate_ProveedorInexistente(t *testing.T) {
	uc, _, _ := newPurchaseUseCase(t)

	_, err := uc.Create(context.Background(), "user-1", purchaseRequest(uuid.New().String()))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPurchaseCreate_TotalesDerivados(t *testing.T) {
	uc, _, supplierID := newPurchaseUseCase(t)

	out, err := uc.Create(context.Background(), "user-1", dto.CreatePurchaseOrderRequest{
		SupplierID: supplierID,
		Items: []dto.PurchaseOrderItemRequest{
			{Product: "Varilla 3/8", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(2500)},
			{Product: "Cemento gris", Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(32000)},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.True(t, decimal.NewFromInt(25000).Equal(out.Items[0].LineTotal))
	assert.True(t, decimal.NewFromInt(128000).Equal(out.Items[1].LineTotal))
	assert.True(t, decimal.NewFromInt(153000).Equal(out.Total))
}

func TestPurchaseTransition_FlujoCompleto(t *testing.T) {
	uc, _, supplierID := newPurchaseUseCase(t)
	ctx := context.Background()

	order, err := uc.Create(ctx, "user-1", purchaseRequest(supplierID))
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusBorrador, order.Status)

	for _, status := range []string{
		entity.PurchaseStatusPendiente,
		entity.PurchaseStatusAprobada,
		entity.PurchaseStatusCerrada,
	} {
		order, err = uc.Transition(ctx, order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, order.Status)
	}
	assert.NotNil(t, order.ClosedAt)
}

func TestPurchaseTransition_SaltoInvalido(t *testing.T) {
	uc, _, supplierID := newPurchaseUseCase(t)
	ctx := context.Background()

	order, err := uc.Create(ctx, "user-1", purchaseRequest(supplierID))
	require.NoError(t, err)

	// borrador → aprobada se salta el estado pendiente.
	_, err = uc.Transition(ctx, order.ID, entity.PurchaseStatusAprobada)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Cerrar dos veces no cambia la fecha de cierre ni devuelve error.
func TestPurchaseClose_Idempotente(t *testing.T) {
	uc, _, supplierID := newPurchaseUseCase(t)
	ctx := context.Background()

	order, err := uc.Create(ctx, "user-1", purchaseRequest(supplierID))
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
		"el segundo cierre no debe mover fecha_cierre")
	assert.Equal(t, entity.PurchaseStatusCerrada, again.Status)
}
