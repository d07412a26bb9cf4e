package warehouse_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/distrifarma/internal/application/dto"
	"github.com/tu-usuario/distrifarma/internal/application/warehouse"
	"github.com/tu-usuario/distrifarma/internal/domain"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"github.com/tu-usuario/distrifarma/pkg/logger"
)

type fakeInvRepo struct {
	items map[string]*entity.InventoryItem
}

func newFakeInvRepo() *fakeInvRepo {
	return &fakeInvRepo{items: make(map[string]*entity.InventoryItem)}
}

func (f *fakeInvRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	for _, it := range f.items {
		if it.SKU == item.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeInvRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return it, nil
}

func (f *fakeInvRepo) GetBySKU(_ context.Context, sku string) (*entity.InventoryItem, error) {
	for _, it := range f.items {
		if it.SKU == sku {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeInvRepo) List(_ context.Context, _, _ int) ([]*entity.InventoryItem, error) {
	var list []*entity.InventoryItem
	for _, it := range f.items {
		list = append(list, it)
	}
	return list, nil
}

func (f *fakeInvRepo) DeductIfVersionMatches(_ context.Context, id string, expectedVersion, amount int64) (bool, error) {
	it, ok := f.items[id]
	if !ok || it.Version != expectedVersion || it.Quantity < amount {
		return false, nil
	}
	it.Quantity -= amount
	it.Version++
	return true, nil
}

type fakeAuditRepo struct {
	entries []*entity.AuditLogEntry
	fail    bool
}

func (f *fakeAuditRepo) Create(_ context.Context, entry *entity.AuditLogEntry) error {
	if f.fail {
		return assert.AnError
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditRepo) List(_ context.Context, _, _ int) ([]*entity.AuditLogEntry, error) {
	return f.entries, nil
}

func request() dto.AddInventoryRequest {
	return dto.AddInventoryRequest{
		SKU:               "MED-001",
		Name:              "Panadol Extra",
		BatchNumber:       "BATCH-2025-A1",
		ExpiryDate:        "2027-06-30",
		Quantity:          5000,
		WarehouseLocation: "A-01-03",
	}
}

func TestAddInventory_CreaConSerial(t *testing.T) {
	invRepo := newFakeInvRepo()
	audit := &fakeAuditRepo{}
	uc := warehouse.NewUseCase(invRepo, audit, logger.Nop())

	resp, err := uc.AddInventory(context.Background(), "user-admin", request())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(5000), resp.Quantity)
	assert.Equal(t, int64(0), resp.Version, "una recepción nueva inicia en versión 0")
	assert.True(t, strings.HasPrefix(resp.Barcode, "SN-MED-001-BATCH-2025-A1-"),
		"serial fue %q", resp.Barcode)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, entity.AuditActionAddInventory, audit.entries[0].Action)
	assert.Equal(t, "Inventory:"+resp.ID, audit.entries[0].Resource)
}

func TestAddInventory_FechaFlexible(t *testing.T) {
	uc := warehouse.NewUseCase(newFakeInvRepo(), &fakeAuditRepo{}, logger.Nop())

	in := request()
	in.ExpiryDate = "2027-06-30T00:00:00Z" // RFC 3339 también vale
	_, err := uc.AddInventory(context.Background(), "", in)
	assert.NoError(t, err)

	in = request()
	in.SKU = "MED-002"
	in.ExpiryDate = "30/06/2027"
	_, err = uc.AddInventory(context.Background(), "", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddInventory_BitacoraNoBloquea(t *testing.T) {
	invRepo := newFakeInvRepo()
	audit := &fakeAuditRepo{fail: true}
	uc := warehouse.NewUseCase(invRepo, audit, logger.Nop())

	// El fallo de bitácora no revierte la recepción ya comprometida.
	resp, err := uc.AddInventory(context.Background(), "user-admin", request())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Len(t, invRepo.items, 1)
}

func TestAddInventory_Validacion(t *testing.T) {
	uc := warehouse.NewUseCase(newFakeInvRepo(), &fakeAuditRepo{}, logger.Nop())

	cases := []func(*dto.AddInventoryRequest){
		func(r *dto.AddInventoryRequest) { r.SKU = "" },
		func(r *dto.AddInventoryRequest) { r.Name = "" },
		func(r *dto.AddInventoryRequest) { r.BatchNumber = "" },
		func(r *dto.AddInventoryRequest) { r.Quantity = 0 },
		func(r *dto.AddInventoryRequest) { r.Quantity = -5 },
	}
	for _, mutate := range cases {
		in := request()
		mutate(&in)
		_, err := uc.AddInventory(context.Background(), "user-admin", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCheckStock(t *testing.T) {
	invRepo := newFakeInvRepo()
	uc := warehouse.NewUseCase(invRepo, &fakeAuditRepo{}, logger.Nop())

	created, err := uc.AddInventory(context.Background(), "", request())
	require.NoError(t, err)

	found, err := uc.CheckStock(context.Background(), "MED-001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, int64(5000), found.Quantity)

	_, err = uc.CheckStock(context.Background(), "MED-999")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
