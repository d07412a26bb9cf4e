package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/distrifarma/internal/application/dto"
	"github.com/tu-usuario/distrifarma/internal/application/orders"
	"github.com/tu-usuario/distrifarma/internal/domain"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"github.com/tu-usuario/distrifarma/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memState es el estado "comprometido" compartido. Cada tx opera directo sobre
// él llevando un journal de deshacer: si fn falla, se revierte en orden
// inverso (semántica de rollback). La deducción condicional verifica la
// versión contra el estado comprometido, igual que el UPDATE condicional en
// PostgreSQL, así los tests de conflicto modelan a un competidor que
// comprometió entre la lectura y la escritura.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	items  map[string]*entity.InventoryItem
	orders map[string]*entity.Order
	audits []*entity.AuditLogEntry
}

func newMemState() *memState {
	return &memState{
		items:  make(map[string]*entity.InventoryItem),
		orders: make(map[string]*entity.Order),
	}
}

// commitDeduct aplica una deducción comprometida por "otra transacción"
// (el competidor de los tests de conflicto).
func (s *memState) commitDeduct(t *testing.T, id string, amount int64) {
	t.Helper()
	item, ok := s.items[id]
	require.True(t, ok, "el ítem competidor debe existir")
	require.GreaterOrEqual(t, item.Quantity, amount)
	item.Quantity -= amount
	item.Version++
}

type memTx struct {
	st           *memState
	undo         []func()
	beforeDeduct func() // hook de test: corre antes del chequeo de versión
}

type memInvRepo struct{ tx *memTx }

var _ repository.InventoryItemRepository = (*memInvRepo)(nil)

func (m *memInvRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	cp := *item
	m.tx.st.items[item.ID] = &cp
	m.tx.undo = append(m.tx.undo, func() { delete(m.tx.st.items, item.ID) })
	return nil
}

func (m *memInvRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	item, ok := m.tx.st.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (m *memInvRepo) GetBySKU(_ context.Context, sku string) (*entity.InventoryItem, error) {
	for _, item := range m.tx.st.items {
		if item.SKU == sku {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memInvRepo) List(_ context.Context, _, _ int) ([]*entity.InventoryItem, error) {
	var list []*entity.InventoryItem
	for _, item := range m.tx.st.items {
		cp := *item
		list = append(list, &cp)
	}
	return list, nil
}

func (m *memInvRepo) DeductIfVersionMatches(_ context.Context, id string, expectedVersion, amount int64) (bool, error) {
	if m.tx.beforeDeduct != nil {
		hook := m.tx.beforeDeduct
		m.tx.beforeDeduct = nil
		hook()
	}
	item, ok := m.tx.st.items[id]
	if !ok || item.Version != expectedVersion || item.Quantity < amount {
		return false, nil
	}
	item.Quantity -= amount
	item.Version++
	m.tx.undo = append(m.tx.undo, func() {
		item.Quantity += amount
		item.Version--
	})
	return true, nil
}

type memOrderRepo struct{ tx *memTx }

var _ repository.OrderRepository = (*memOrderRepo)(nil)

func (m *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	cp := *order
	m.tx.st.orders[order.ID] = &cp
	m.tx.undo = append(m.tx.undo, func() { delete(m.tx.st.orders, order.ID) })
	return nil
}

func (m *memOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := m.tx.st.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *memOrderRepo) ListByHospital(_ context.Context, hospitalID string, _, _ int) ([]*entity.Order, error) {
	var list []*entity.Order
	for _, o := range m.tx.st.orders {
		if o.HospitalID == hospitalID {
			list = append(list, o)
		}
	}
	return list, nil
}

func (m *memOrderRepo) List(_ context.Context, _, _ int) ([]*entity.Order, error) {
	var list []*entity.Order
	for _, o := range m.tx.st.orders {
		list = append(list, o)
	}
	return list, nil
}

type memAuditRepo struct{ tx *memTx }

var _ repository.AuditLogRepository = (*memAuditRepo)(nil)

func (m *memAuditRepo) Create(_ context.Context, entry *entity.AuditLogEntry) error {
	cp := *entry
	m.tx.st.audits = append(m.tx.st.audits, &cp)
	m.tx.undo = append(m.tx.undo, func() {
		m.tx.st.audits = m.tx.st.audits[:len(m.tx.st.audits)-1]
	})
	return nil
}

func (m *memAuditRepo) List(_ context.Context, _, _ int) ([]*entity.AuditLogEntry, error) {
	return m.tx.st.audits, nil
}

type memTxRunner struct {
	st           *memState
	beforeDeduct func()
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	invRepo repository.InventoryItemRepository,
	orderRepo repository.OrderRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx := &memTx{st: r.st, beforeDeduct: r.beforeDeduct}
	r.beforeDeduct = nil
	if err := fn(&memInvRepo{tx}, &memOrderRepo{tx}, &memAuditRepo{tx}); err != nil {
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		return err
	}
	return nil
}

type memHospitalRepo struct {
	hospitals map[string]*entity.Hospital
}

func (r *memHospitalRepo) Create(_ context.Context, h *entity.Hospital) error {
	r.hospitals[h.ID] = h
	return nil
}

func (r *memHospitalRepo) GetByID(_ context.Context, id string) (*entity.Hospital, error) {
	return r.hospitals[id], nil
}

func (r *memHospitalRepo) List(_ context.Context, _, _ int) ([]*entity.Hospital, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testHospitalID = "hospital-1"
	testActorID    = "user-admin"
)

func newFixture(t *testing.T) (*orders.PlaceOrderUseCase, *memState, *memTxRunner) {
	t.Helper()
	st := newMemState()
	runner := &memTxRunner{st: st}
	hospitals := &memHospitalRepo{hospitals: map[string]*entity.Hospital{
		testHospitalID: {ID: testHospitalID, Name: "City General Hospital"},
	}}
	uc := orders.NewPlaceOrderUseCase(runner, hospitals, orders.NewFixedRatePricer())
	return uc, st, runner
}

func seedItem(st *memState, quantity, version int64) string {
	id := uuid.New().String()
	st.items[id] = &entity.InventoryItem{
		ID:          id,
		SKU:         "MED-001",
		Name:        "Panadol Extra",
		BatchNumber: "BATCH-2024-X",
		ExpiryDate:  time.Now().AddDate(1, 0, 0),
		Quantity:    quantity,
		Version:     version,
	}
	return id
}

func orderOf(items ...dto.OrderItemRequest) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{HospitalID: testHospitalID, Items: items}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Monotonía de versión: una deducción exitosa descuenta exactamente lo pedido
// y avanza la versión exactamente en 1.
func TestPlaceOrder_ExitosoAvanzaVersion(t *testing.T) {
	uc, st, _ := newFixture(t)
	itemID := seedItem(st, 100, 0)

	resp, err := uc.PlaceOrder(context.Background(), testActorID, orderOf(
		dto.OrderItemRequest{InventoryID: itemID, Quantity: 10},
	))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.True(t, resp.TotalPrice.Equal(decimal.NewFromInt(100)),
		"10 unidades a tarifa fija 10 = 100, total fue %s", resp.TotalPrice)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, itemID, resp.Items[0].InventoryID)

	item := st.items[itemID]
	assert.Equal(t, int64(90), item.Quantity)
	assert.Equal(t, int64(1), item.Version)

	require.Contains(t, st.orders, resp.ID)
	require.Len(t, st.audits, 1)
	assert.Equal(t, testActorID, st.audits[0].UserID)
	assert.Equal(t, entity.AuditActionCreateOrder, st.audits[0].Action)
	assert.Equal(t, "Order:"+resp.ID, st.audits[0].Resource)
}

// Atomicidad: si una línea falla, ninguna fila cambia — tampoco la línea
// válida que ya se había deducido dentro de la misma transacción.
func TestPlaceOrder_AtomicidadConLineaInvalida(t *testing.T) {
	uc, st, _ := newFixture(t)
	okID := seedItem(st, 100, 0)
	shortID := seedItem(st, 3, 0)

	resp, err := uc.PlaceOrder(context.Background(), testActorID, orderOf(
		dto.OrderItemRequest{InventoryID: okID, Quantity: 10},
		dto.OrderItemRequest{InventoryID: shortID, Quantity: 5},
	))
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, shortID, stockErr.InventoryID)
	assert.Equal(t, int64(3), stockErr.Available)
	assert.Equal(t, int64(5), stockErr.Requested)

	// La línea válida también quedó intacta (rollback completo).
	assert.Equal(t, int64(100), st.items[okID].Quantity)
	assert.Equal(t, int64(0), st.items[okID].Version)
	assert.Empty(t, st.orders)
	assert.Empty(t, st.audits)
}

// Frontera de stock: pedir exactamente lo disponible compromete; pedir una
// unidad más falla y no cambia nada.
func TestPlaceOrder_FronteraDeStock(t *testing.T) {
	uc, st, _ := newFixture(t)
	itemID := seedItem(st, 7, 0)

	_, err := uc.PlaceOrder(context.Background(), testActorID, orderOf(
		dto.OrderItemRequest{InventoryID: itemID, Quantity: 8},
	))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(7), st.items[itemID].Quantity)
	assert.Equal(t, int64(0), st.items[itemID].Version)

	resp, err := uc.PlaceOrder(context.Background(), testActorID, orderOf(
		dto.OrderItemRequest{InventoryID: itemID, Quantity: 7},
	))
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(0), st.items[itemID].Quantity)
	assert.Equal(t, int64(1), st.items[itemID].Version)
}

// Conflicto: dos transacciones leen la misma fila en versión 0 pidiendo 10
// con 15 en stock. Exactamente una compromete (5 restantes, versión 1); la
// otra falla con conflicto de concurrencia y no deja rastro.
func TestPlaceOrder_ConflictoDeConcurrencia(t *testing.T) {
	uc, st, runner := newFixture(t)
	itemID := seedItem(st, 15, 0)

	// El competidor compromete su deducción entre nuestra lectura y nuestra
	// escritura condicional.
	runner.beforeDeduct = func() {
		st.commitDeduct(t, itemID, 10)
	}

	resp, err := uc.PlaceOrder(context.Background(), testActorID, orderOf(
		dto.OrderItemRequest{InventoryID: itemID, Quantity: 10},
	))
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)

	var conflictErr *domain.ConcurrencyConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, itemID, conflictErr.InventoryID)

	// Solo sobrevive el efecto del competidor.
	assert.Equal(t, int64(5), st.items[itemID].Quantity)
	assert.Equal(t, int64(1), st.items[itemID].Version)
	assert.Empty(t, st.orders)
	assert.Empty(t, st.audits)

	// Reintento con lectura fresca (versión nueva) y cantidad alcanzable.
	resp, err = uc.PlaceOrder(context.Background(), testActorID, orderOf(
		dto.OrderItemRequest{InventoryID: itemID, Quantity: 5},
	))
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(0), st.items[itemID].Quantity)
	assert.Equal(t, int64(2), st.items[itemID].Version)
}

// Bitácora independiente: sin actor el pedido igual compromete y no se
// escribe entrada; con actor, exactamente una por pedido.
func TestPlaceOrder_BitacoraBestEffort(t *testing.T) {
	uc, st, _ := newFixture(t)
	itemID := seedItem(st, 100, 0)

	resp, err := uc.PlaceOrder(context.Background(), "", orderOf(
		dto.OrderItemRequest{InventoryID: itemID, Quantity: 10},
	))
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Empty(t, st.audits, "sin actor no debe escribirse bitácora")

	resp, err = uc.PlaceOrder(context.Background(), testActorID, orderOf(
		dto.OrderItemRequest{InventoryID: itemID, Quantity: 10},
	))
	require.NoError(t, err)
	require.Len(t, st.audits, 1)
	assert.Equal(t, "Order:"+resp.ID, st.audits[0].Resource)
}

// Idempotencia del fallo: repetir una petición que falla por hospital o ítem
// inexistente falla igual cada vez y nunca muta estado.
func TestPlaceOrder_FallosIdempotentes(t *testing.T) {
	uc, st, _ := newFixture(t)
	itemID := seedItem(st, 50, 0)

	badHospital := dto.CreateOrderRequest{
		HospitalID: "hospital-fantasma",
		Items:      []dto.OrderItemRequest{{InventoryID: itemID, Quantity: 1}},
	}
	badItem := orderOf(dto.OrderItemRequest{InventoryID: "inexistente", Quantity: 1})

	for i := 0; i < 3; i++ {
		_, err := uc.PlaceOrder(context.Background(), testActorID, badHospital)
		assert.ErrorIs(t, err, domain.ErrInvalidHospital)

		_, err = uc.PlaceOrder(context.Background(), testActorID, badItem)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		var notFound *domain.ItemNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "inexistente", notFound.InventoryID)
	}

	assert.Equal(t, int64(50), st.items[itemID].Quantity)
	assert.Equal(t, int64(0), st.items[itemID].Version)
	assert.Empty(t, st.orders)
	assert.Empty(t, st.audits)
}

// Entradas inválidas se rechazan antes de abrir la unidad de trabajo.
func TestPlaceOrder_EntradaInvalida(t *testing.T) {
	uc, _, _ := newFixture(t)

	cases := []dto.CreateOrderRequest{
		{HospitalID: "", Items: []dto.OrderItemRequest{{InventoryID: "x", Quantity: 1}}},
		{HospitalID: testHospitalID, Items: nil},
		orderOf(dto.OrderItemRequest{InventoryID: "x", Quantity: 0}),
		orderOf(dto.OrderItemRequest{InventoryID: "x", Quantity: -2}),
		orderOf(dto.OrderItemRequest{InventoryID: "", Quantity: 1}),
	}
	for _, in := range cases {
		_, err := uc.PlaceOrder(context.Background(), testActorID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
