package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Microgestion-api/internal/application/dto"
	"github.com/jhoicas/Microgestion-api/internal/application/usecase"
	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct{ companies map[string]*entity.Company }

func (r *fakeCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }
func (r *fakeCompanyRepo) Update(*entity.Company) error             { return nil }
func (r *fakeCompanyRepo) NextSaleNumber(string) (int64, error)     { return 0, nil }

type fakePortalProductRepo struct{ products []*entity.Product }

func (r *fakePortalProductRepo) Create(*entity.Product) error { return nil }
func (r *fakePortalProductRepo) GetByID(string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakePortalProductRepo) ListByTenant(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakePortalProductRepo) ListVisible(tenantID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.TenantID == tenantID && p.VisiblePortal {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakePortalProductRepo) Update(*entity.Product) error { return nil }
func (r *fakePortalProductRepo) Delete(string, string) error  { return nil }
func (r *fakePortalProductRepo) SetStock(string, string, int) (*entity.Product, error) {
	return nil, nil
}
func (r *fakePortalProductRepo) IncrementStock(string, string, int) (int, error) { return 0, nil }
func (r *fakePortalProductRepo) DecrementStockIfAvailable(string, string, int) (int, bool, error) {
	return 0, false, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

const portalTenant = "tenant-portal"

func setupPortal(t *testing.T) *usecase.PortalUseCase {
	t.Helper()
	companyRepo := &fakeCompanyRepo{companies: map[string]*entity.Company{
		portalTenant: {ID: portalTenant, Name: "Tienda La Esquina", NIT: "900123456"},
	}}
	cat := "Bebidas"
	productRepo := &fakePortalProductRepo{products: []*entity.Product{
		{ID: "p1", TenantID: portalTenant, Name: "Café de origen", Category: &cat,
			Price: decimal.NewFromInt(18000), StockActual: 5, VisiblePortal: true},
		{ID: "p2", TenantID: portalTenant, Name: "Panela orgánica",
			Price: decimal.NewFromInt(6000), StockActual: 9, VisiblePortal: true},
		{ID: "p3", TenantID: portalTenant, Name: "Té verde agotado",
			Price: decimal.NewFromInt(9000), StockActual: 0, VisiblePortal: false},
	}}
	return usecase.NewPortalUseCase(companyRepo, productRepo)
}

func TestPortal_SoloProductosConStock(t *testing.T) {
	uc := setupPortal(t)

	out, err := uc.ListProducts(context.Background(), portalTenant, "", dto.PageRequest{})
	require.NoError(t, err)

	require.Len(t, out.Items, 2, "el producto agotado no debe aparecer en el portal")
	for _, item := range out.Items {
		assert.NotEqual(t, "p3", item.ID)
	}
}

func TestPortal_BusquedaInsensibleATildes(t *testing.T) {
	uc := setupPortal(t)

	// "cafe" sin tilde debe encontrar "Café de origen".
	out, err := uc.ListProducts(context.Background(), portalTenant, "cafe", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Café de origen", out.Items[0].Name)

	// Mayúsculas tampoco importan.
	out, err = uc.ListProducts(context.Background(), portalTenant, "PANELA", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Panela orgánica", out.Items[0].Name)
}

func TestPortal_BusquedaPorCategoria(t *testing.T) {
	uc := setupPortal(t)

	out, err := uc.ListProducts(context.Background(), portalTenant, "bebidas", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "p1", out.Items[0].ID)
}

func TestPortal_MicroempresaDesconocida(t *testing.T) {
	uc := setupPortal(t)

	_, err := uc.ListProducts(context.Background(), "tenant-fantasma", "", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPortal_Paginacion(t *testing.T) {
	uc := setupPortal(t)

	out, err := uc.ListProducts(context.Background(), portalTenant, "", dto.PageRequest{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Page.Limit)
	assert.Equal(t, 1, out.Page.Offset)
}
