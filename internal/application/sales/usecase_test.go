package sales_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Microgestion-api/internal/application/dto"
	"github.com/jhoicas/Microgestion-api/internal/application/sales"
	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products      map[string]*entity.Product
	sales         map[string]*entity.Sale
	items         map[string][]*entity.SaleItem
	notifications []*entity.StockNotification
	clients       map[string]*entity.Client
	saleSequence  int64
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]*entity.Product),
		sales:    make(map[string]*entity.Sale),
		items:    make(map[string][]*entity.SaleItem),
		clients:  make(map[string]*entity.Client),
	}
}

// snapshot copia el estado mutable para emular rollback de transacción.
func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.products {
		p := *v
		cp.products[k] = &p
	}
	for k, v := range s.sales {
		sv := *v
		cp.sales[k] = &sv
	}
	for k, v := range s.items {
		cp.items[k] = append([]*entity.SaleItem(nil), v...)
	}
	cp.notifications = append([]*entity.StockNotification(nil), s.notifications...)
	for k, v := range s.clients {
		c := *v
		cp.clients[k] = &c
	}
	cp.saleSequence = s.saleSequence
	return cp
}

func (s *memStore) restore(from *memStore) { *s = *from }

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.store.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(tenantID, id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok || p.TenantID != tenantID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) ListByTenant(string, int, int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListVisible(string) ([]*entity.Product, error)           { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                          { r.store.products[p.ID] = p; return nil }
func (r *fakeProductRepo) Delete(tenantID, id string) error                        { delete(r.store.products, id); return nil }
func (r *fakeProductRepo) SetStock(tenantID, productID string, qty int) (*entity.Product, error) {
	p, ok := r.store.products[productID]
	if !ok || p.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	p.StockActual = qty
	p.VisiblePortal = entity.Visible(qty)
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) IncrementStock(tenantID, productID string, delta int) (int, error) {
	p, ok := r.store.products[productID]
	if !ok || p.TenantID != tenantID {
		return 0, domain.ErrNotFound
	}
	p.StockActual += delta
	p.VisiblePortal = entity.Visible(p.StockActual)
	return p.StockActual, nil
}
func (r *fakeProductRepo) DecrementStockIfAvailable(tenantID, productID string, qty int) (int, bool, error) {
	p, ok := r.store.products[productID]
	if !ok || p.TenantID != tenantID {
		return 0, false, domain.ErrNotFound
	}
	if p.StockActual < qty {
		return p.StockActual, false, nil
	}
	p.StockActual -= qty
	p.VisiblePortal = entity.Visible(p.StockActual)
	return p.StockActual, true, nil
}

type fakeSaleRepo struct{ store *memStore }

func (r *fakeSaleRepo) Create(s *entity.Sale) error { r.store.sales[s.ID] = s; return nil }
func (r *fakeSaleRepo) CreateItem(i *entity.SaleItem) error {
	r.store.items[i.SaleID] = append(r.store.items[i.SaleID], i)
	return nil
}
func (r *fakeSaleRepo) GetByID(tenantID, id string) (*entity.Sale, error) {
	s, ok := r.store.sales[id]
	if !ok || s.TenantID != tenantID {
		return nil, nil
	}
	return s, nil
}
func (r *fakeSaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	return r.store.items[saleID], nil
}
func (r *fakeSaleRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.store.sales {
		if s.TenantID == tenantID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeNotifRepo struct{ store *memStore }

func (r *fakeNotifRepo) CreateIfUnread(n *entity.StockNotification) (bool, error) {
	for _, existing := range r.store.notifications {
		if existing.ProductID == n.ProductID && existing.Kind == n.Kind && !existing.Read {
			return false, nil
		}
	}
	r.store.notifications = append(r.store.notifications, n)
	return true, nil
}
func (r *fakeNotifRepo) ListByTenant(string, bool, int, int) ([]*entity.StockNotification, error) {
	return r.store.notifications, nil
}
func (r *fakeNotifRepo) MarkRead(string, string) error        { return nil }
func (r *fakeNotifRepo) DeleteByProduct(string, string) error { return nil }

type fakeCompanyRepo struct{ store *memStore }

func (r *fakeCompanyRepo) Create(*entity.Company) error          { return nil }
func (r *fakeCompanyRepo) GetByID(string) (*entity.Company, error) { return nil, nil }
func (r *fakeCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }
func (r *fakeCompanyRepo) Update(*entity.Company) error          { return nil }
func (r *fakeCompanyRepo) NextSaleNumber(tenantID string) (int64, error) {
	r.store.saleSequence++
	return r.store.saleSequence, nil
}

type fakeClientRepo struct{ store *memStore }

func (r *fakeClientRepo) Create(c *entity.Client) error { r.store.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(tenantID, id string) (*entity.Client, error) {
	c, ok := r.store.clients[id]
	if !ok || c.TenantID != tenantID {
		return nil, nil
	}
	return c, nil
}
func (r *fakeClientRepo) ListByTenant(string, int, int) ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Update(*entity.Client) error                             { return nil }
func (r *fakeClientRepo) Delete(string, string) error                             { return nil }

// fakeTxRunner ejecuta el callback contra los fakes y restaura el estado si
// el callback falla, emulando el rollback de la transacción real. El mutex
// serializa transacciones concurrentes igual que el candado de fila del
// UPDATE condicional en Postgres.
type fakeTxRunner struct {
	mu    sync.Mutex
	store *memStore
}

func (tx *fakeTxRunner) RunSale(ctx context.Context, fn func(
	repository.SaleRepository,
	repository.ProductRepository,
	repository.NotificationRepository,
	repository.CompanyRepository,
) error) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	before := tx.store.snapshot()
	err := fn(
		&fakeSaleRepo{store: tx.store},
		&fakeProductRepo{store: tx.store},
		&fakeNotifRepo{store: tx.store},
		&fakeCompanyRepo{store: tx.store},
	)
	if err != nil {
		tx.store.restore(before)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

const tenantA = "tenant-a"

func setupSale(t *testing.T) (*sales.ProcessSaleUseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	store.products["cafe"] = &entity.Product{
		ID: "cafe", TenantID: tenantA, Name: "Café molido",
		Price: decimal.NewFromInt(10000), StockActual: 10, VisiblePortal: true,
	}
	store.products["pan"] = &entity.Product{
		ID: "pan", TenantID: tenantA, Name: "Pan artesanal",
		Price: decimal.NewFromInt(5000), StockActual: 2, VisiblePortal: true,
	}
	store.clients["cli-1"] = &entity.Client{ID: "cli-1", TenantID: tenantA, Name: "Ana Gómez"}
	uc := sales.NewProcessSaleUseCase(
		&fakeTxRunner{store: store},
		&fakeClientRepo{store: store},
		&fakeSaleRepo{store: store},
	)
	return uc, store
}

func adminScope() domain.Scope { return domain.Scope{TenantID: tenantA, Role: domain.RoleAdmin} }

func TestProcessSale_DescuentaStockYCalculaTotal(t *testing.T) {
	uc, store := setupSale(t)

	out, err := uc.ProcessSale(context.Background(), adminScope(), dto.ProcessSaleRequest{
		PaymentMethod: entity.PaymentCash,
		Items: []dto.SaleItemRequest{
			{ProductID: "cafe", Quantity: 3},
			{ProductID: "pan", Quantity: 2},
		},
	})
	require.NoError(t, err)

	// 3×10000 + 2×5000 = 40000
	assert.True(t, out.Total.Equal(decimal.NewFromInt(40000)), "total = %s", out.Total)
	assert.Equal(t, int64(1), out.Number, "primera venta lleva el consecutivo 1")
	assert.Equal(t, 7, store.products["cafe"].StockActual)
	assert.Equal(t, 0, store.products["pan"].StockActual)
	assert.False(t, store.products["pan"].VisiblePortal, "producto agotado sale del portal")
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].UnitPrice.Equal(decimal.NewFromInt(10000)),
		"la línea guarda el precio snapshot del producto")
}

func TestProcessSale_AgotamientoEmiteNotificacion(t *testing.T) {
	uc, store := setupSale(t)

	_, err := uc.ProcessSale(context.Background(), adminScope(), dto.ProcessSaleRequest{
		PaymentMethod: entity.PaymentCard,
		Items:         []dto.SaleItemRequest{{ProductID: "pan", Quantity: 2}},
	})
	require.NoError(t, err)

	require.Len(t, store.notifications, 1)
	assert.Equal(t, "pan", store.notifications[0].ProductID)
	assert.Equal(t, entity.NotificationOutOfStock, store.notifications[0].Kind)
}

func TestProcessSale_StockInsuficienteRechazaVentaCompleta(t *testing.T) {
	uc, store := setupSale(t)

	_, err := uc.ProcessSale(context.Background(), adminScope(), dto.ProcessSaleRequest{
		PaymentMethod: entity.PaymentCash,
		Items: []dto.SaleItemRequest{
			{ProductID: "cafe", Quantity: 3}, // alcanza
			{ProductID: "pan", Quantity: 5},  // no alcanza (hay 2)
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rollback: ni la línea que alcanzaba debe haber descontado.
	assert.Equal(t, 10, store.products["cafe"].StockActual,
		"una línea insuficiente revierte la venta completa")
	assert.Equal(t, 2, store.products["pan"].StockActual)
	assert.Empty(t, store.sales, "no debe quedar cabecera de venta")
	assert.Equal(t, int64(0), store.saleSequence, "el consecutivo reservado se revierte con la tx")
}

func TestProcessSale_VentasConcurrentesSoloUnaGana(t *testing.T) {
	uc, store := setupSale(t)
	ctx := context.Background()

	// Dos ventas simultáneas de 6 unidades contra stock 10: el descuento
	// condicional debe dejar pasar exactamente una.
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.ProcessSale(ctx, adminScope(), dto.ProcessSaleRequest{
				PaymentMethod: entity.PaymentCash,
				Items:         []dto.SaleItemRequest{{ProductID: "cafe", Quantity: 6}},
			})
		}(i)
	}
	wg.Wait()

	completed, rejected := 0, 0
	for _, err := range errs {
		if err == nil {
			completed++
			continue
		}
		require.ErrorIs(t, err, domain.ErrInsufficientStock)
		rejected++
	}
	assert.Equal(t, 1, completed, "exactamente una venta debe completarse")
	assert.Equal(t, 1, rejected)

	assert.Equal(t, 4, store.products["cafe"].StockActual,
		"solo la venta ganadora descuenta stock")
	assert.Len(t, store.sales, 1, "la venta rechazada no deja cabecera")
	assert.Equal(t, int64(1), store.saleSequence,
		"el consecutivo de la venta rechazada se revierte con la tx")
}

func TestProcessSale_ConsecutivoPorMicroempresaEsSecuencial(t *testing.T) {
	uc, _ := setupSale(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		out, err := uc.ProcessSale(ctx, adminScope(), dto.ProcessSaleRequest{
			PaymentMethod: entity.PaymentCash,
			Items:         []dto.SaleItemRequest{{ProductID: "cafe", Quantity: 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, want, out.Number)
	}
}

func TestProcessSale_ClienteDesconocidoRechazado(t *testing.T) {
	uc, _ := setupSale(t)
	unknown := "cli-fantasma"

	_, err := uc.ProcessSale(context.Background(), adminScope(), dto.ProcessSaleRequest{
		ClientID:      &unknown,
		PaymentMethod: entity.PaymentCash,
		Items:         []dto.SaleItemRequest{{ProductID: "cafe", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProcessSale_ValidacionesDeEntrada(t *testing.T) {
	uc, _ := setupSale(t)
	ctx := context.Background()

	_, err := uc.ProcessSale(ctx, adminScope(), dto.ProcessSaleRequest{
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "carrito vacío")

	_, err = uc.ProcessSale(ctx, adminScope(), dto.ProcessSaleRequest{
		PaymentMethod: "cheque",
		Items:         []dto.SaleItemRequest{{ProductID: "cafe", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "método de pago no soportado")

	_, err = uc.ProcessSale(ctx, adminScope(), dto.ProcessSaleRequest{
		PaymentMethod: entity.PaymentCash,
		Items:         []dto.SaleItemRequest{{ProductID: "cafe", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")
}
