package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Microgestion-api/internal/application/inventory"
	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product // key: tenantID + "/" + id
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) key(tenantID, id string) string { return tenantID + "/" + id }

func (r *fakeProductRepo) add(p *entity.Product) { r.products[r.key(p.TenantID, p.ID)] = p }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.add(p); return nil }

func (r *fakeProductRepo) GetByID(tenantID, id string) (*entity.Product, error) {
	p, ok := r.products[r.key(tenantID, id)]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListVisible(tenantID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.TenantID == tenantID && p.VisiblePortal {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { r.add(p); return nil }

func (r *fakeProductRepo) Delete(tenantID, id string) error {
	delete(r.products, r.key(tenantID, id))
	return nil
}

func (r *fakeProductRepo) SetStock(tenantID, productID string, qty int) (*entity.Product, error) {
	p, ok := r.products[r.key(tenantID, productID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.StockActual = qty
	p.VisiblePortal = entity.Visible(qty)
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) IncrementStock(tenantID, productID string, delta int) (int, error) {
	p, ok := r.products[r.key(tenantID, productID)]
	if !ok {
		return 0, domain.ErrNotFound
	}
	p.StockActual += delta
	p.VisiblePortal = entity.Visible(p.StockActual)
	return p.StockActual, nil
}

func (r *fakeProductRepo) DecrementStockIfAvailable(tenantID, productID string, qty int) (int, bool, error) {
	p, ok := r.products[r.key(tenantID, productID)]
	if !ok {
		return 0, false, domain.ErrNotFound
	}
	if p.StockActual < qty {
		return p.StockActual, false, nil
	}
	p.StockActual -= qty
	p.VisiblePortal = entity.Visible(p.StockActual)
	return p.StockActual, true, nil
}

type fakeNotifRepo struct {
	notifications []*entity.StockNotification
}

func (r *fakeNotifRepo) CreateIfUnread(n *entity.StockNotification) (bool, error) {
	for _, existing := range r.notifications {
		if existing.TenantID == n.TenantID && existing.ProductID == n.ProductID &&
			existing.Kind == n.Kind && !existing.Read {
			return false, nil
		}
	}
	r.notifications = append(r.notifications, n)
	return true, nil
}

func (r *fakeNotifRepo) ListByTenant(tenantID string, onlyUnread bool, limit, offset int) ([]*entity.StockNotification, error) {
	var out []*entity.StockNotification
	for _, n := range r.notifications {
		if n.TenantID == tenantID && (!onlyUnread || !n.Read) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotifRepo) MarkRead(tenantID, id string) error {
	for _, n := range r.notifications {
		if n.TenantID == tenantID && n.ID == id {
			n.Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeNotifRepo) DeleteByProduct(tenantID, productID string) error {
	kept := r.notifications[:0]
	for _, n := range r.notifications {
		if !(n.TenantID == tenantID && n.ProductID == productID) {
			kept = append(kept, n)
		}
	}
	r.notifications = kept
	return nil
}

// fakeTxRunner ejecuta el callback directamente contra los fakes.
type fakeTxRunner struct {
	productRepo *fakeProductRepo
	notifRepo   *fakeNotifRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.NotificationRepository) error) error {
	return fn(tx.productRepo, tx.notifRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

const tenantA = "tenant-a"

func setupEngine(t *testing.T, stock int) (*inventory.StockUseCase, *fakeProductRepo, *fakeNotifRepo) {
	t.Helper()
	productRepo := newFakeProductRepo()
	notifRepo := &fakeNotifRepo{}
	productRepo.add(&entity.Product{
		ID:            "prod-1",
		TenantID:      tenantA,
		Name:          "Café molido",
		Price:         decimal.NewFromInt(12500),
		StockActual:   stock,
		VisiblePortal: entity.Visible(stock),
	})
	uc := inventory.NewStockUseCase(&fakeTxRunner{productRepo: productRepo, notifRepo: notifRepo})
	return uc, productRepo, notifRepo
}

func adminScope() domain.Scope {
	return domain.Scope{TenantID: tenantA, Role: domain.RoleAdmin}
}

func TestApplyStockChange_StockPositivoQuedaVisible(t *testing.T) {
	uc, _, _ := setupEngine(t, 0)

	out, err := uc.ApplyStockChange(context.Background(), adminScope(), "prod-1", 7)
	require.NoError(t, err)

	assert.Equal(t, 7, out.Product.StockActual)
	assert.True(t, out.Product.VisiblePortal, "stock > 0 debe dejar el producto visible en portal")
	assert.False(t, out.NotificationEmitted)
}

func TestApplyStockChange_StockCeroOcultaYNotifica(t *testing.T) {
	uc, productRepo, notifRepo := setupEngine(t, 5)

	out, err := uc.ApplyStockChange(context.Background(), adminScope(), "prod-1", 0)
	require.NoError(t, err)

	assert.Equal(t, 0, out.Product.StockActual)
	assert.False(t, out.Product.VisiblePortal, "stock 0 debe ocultar el producto del portal")
	assert.True(t, out.NotificationEmitted, "llegar a cero debe emitir notificación de agotado")

	require.Len(t, notifRepo.notifications, 1)
	n := notifRepo.notifications[0]
	assert.Equal(t, entity.NotificationOutOfStock, n.Kind)
	assert.Contains(t, n.Message, "Café molido")

	visible, err := productRepo.ListVisible(tenantA)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestApplyStockChange_NoDuplicaNotificacionNoLeida(t *testing.T) {
	uc, _, notifRepo := setupEngine(t, 5)
	ctx := context.Background()

	_, err := uc.ApplyStockChange(ctx, adminScope(), "prod-1", 0)
	require.NoError(t, err)

	// Reponer y volver a agotar con la primera notificación aún sin leer.
	_, err = uc.ApplyStockChange(ctx, adminScope(), "prod-1", 3)
	require.NoError(t, err)
	out, err := uc.ApplyStockChange(ctx, adminScope(), "prod-1", 0)
	require.NoError(t, err)

	assert.False(t, out.NotificationEmitted, "no debe duplicarse mientras la anterior siga sin leer")
	assert.Len(t, notifRepo.notifications, 1)
}

func TestApplyStockChange_NotificacionLeidaPermiteUnaNueva(t *testing.T) {
	uc, _, notifRepo := setupEngine(t, 5)
	ctx := context.Background()

	_, err := uc.ApplyStockChange(ctx, adminScope(), "prod-1", 0)
	require.NoError(t, err)
	require.NoError(t, notifRepo.MarkRead(tenantA, notifRepo.notifications[0].ID))

	_, err = uc.ApplyStockChange(ctx, adminScope(), "prod-1", 2)
	require.NoError(t, err)
	out, err := uc.ApplyStockChange(ctx, adminScope(), "prod-1", 0)
	require.NoError(t, err)

	assert.True(t, out.NotificationEmitted, "con la anterior leída, un nuevo agotamiento notifica otra vez")
	assert.Len(t, notifRepo.notifications, 2)
}

func TestApplyStockChange_CantidadNegativaRechazada(t *testing.T) {
	uc, _, _ := setupEngine(t, 5)

	_, err := uc.ApplyStockChange(context.Background(), adminScope(), "prod-1", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock negativo se rechaza, nunca se recorta a cero")
}

func TestApplyStockChange_ProductoDeOtroTenantNoVisible(t *testing.T) {
	uc, _, _ := setupEngine(t, 5)
	otherScope := domain.Scope{TenantID: "tenant-b", Role: domain.RoleAdmin}

	_, err := uc.ApplyStockChange(context.Background(), otherScope, "prod-1", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un producto de otra microempresa debe comportarse como inexistente")
}
