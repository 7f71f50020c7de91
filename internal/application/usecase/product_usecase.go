package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Microgestion-api/internal/application/dto"
	"github.com/jhoicas/Microgestion-api/internal/application/inventory"
	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock NO se actualiza
// por aquí después de la creación: se muta vía /stock, compras y ventas.
type ProductUseCase struct {
	repo      repository.ProductRepository
	notifRepo repository.NotificationRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, notifRepo repository.NotificationRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, notifRepo: notifRepo}
}

// Create crea un producto. La visibilidad en portal se deriva del stock
// inicial; crear con stock cero no emite notificación de agotado.
func (uc *ProductUseCase) Create(ctx context.Context, scope domain.Scope, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	if in.Name == "" || in.StockActual < 0 || in.StockMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		Price:         in.Price,
		StockActual:   in.StockActual,
		StockMinimo:   in.StockMinimo,
		VisiblePortal: entity.Visible(in.StockActual),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	resp := inventory.ToProductResponse(product)
	return &resp, nil
}

// GetByID obtiene un producto de la microempresa.
func (uc *ProductUseCase) GetByID(ctx context.Context, scope domain.Scope, id string) (*dto.ProductResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := inventory.ToProductResponse(product)
	return &resp, nil
}

// Update actualiza nombre, descripción, categoría, precio y stock mínimo.
// No toca stock_actual ni visible_portal.
func (uc *ProductUseCase) Update(ctx context.Context, scope domain.Scope, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = in.Category
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.StockMinimo != nil {
		if *in.StockMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.StockMinimo = *in.StockMinimo
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	resp := inventory.ToProductResponse(product)
	return &resp, nil
}

// Delete elimina un producto y limpia sus notificaciones de stock. Un
// producto referenciado por ventas o compras no puede eliminarse
// (ErrIntegrity desde el repositorio).
func (uc *ProductUseCase) Delete(ctx context.Context, scope domain.Scope, id string) error {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return err
	}
	if err := uc.notifRepo.DeleteByProduct(tenantID, id); err != nil {
		return err
	}
	return uc.repo.Delete(tenantID, id)
}

// List lista productos de la microempresa con paginación.
func (uc *ProductUseCase) List(ctx context.Context, scope domain.Scope, page dto.PageRequest) (*dto.ProductListResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	page.DefaultPage()
	products, err := uc.repo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(products)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range products {
		out.Items = append(out.Items, inventory.ToProductResponse(p))
	}
	return out, nil
}
