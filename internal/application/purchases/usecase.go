package purchases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Microgestion-api/internal/application/dto"
	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// RegisterPurchaseUseCase registra compras a proveedor: calcula subtotales y
// total en decimal, persiste cabecera + detalle e incrementa el stock de
// cada producto en una sola transacción. Una compra puede devolver un
// producto agotado al portal (la visibilidad se re-deriva en el UPDATE).
type RegisterPurchaseUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
}

// NewRegisterPurchaseUseCase construye el caso de uso.
func NewRegisterPurchaseUseCase(
	txRunner TxRunner,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
) *RegisterPurchaseUseCase {
	return &RegisterPurchaseUseCase{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
	}
}

// RegisterPurchase valida y registra la compra. Cualquier línea con producto
// fuera de la microempresa rechaza la operación completa.
func (uc *RegisterPurchaseUseCase) RegisterPurchase(ctx context.Context, scope domain.Scope, in dto.RegisterPurchaseRequest) (*dto.PurchaseResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPayment(in.PaymentType) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 || !item.UnitPrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	// Proveedor y productos deben existir bajo la microempresa (lecturas
	// fuera de la tx; la tx vuelve a fallar si algo cambió).
	supplier, err := uc.supplierRepo.GetByID(tenantID, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(tenantID, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		SupplierID:    in.SupplierID,
		InvoiceNumber: in.InvoiceNumber,
		PaymentType:   in.PaymentType,
		Date:          now,
		CreatedAt:     now,
	}
	var details []*entity.PurchaseDetail
	total := decimal.Zero
	for _, item := range in.Items {
		subtotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		total = total.Add(subtotal)
		details = append(details, &entity.PurchaseDetail{
			ID:         uuid.New().String(),
			PurchaseID: purchase.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   subtotal,
		})
	}
	purchase.Total = total

	err = uc.txRunner.RunPurchase(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		_ repository.NotificationRepository,
	) error {
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for _, d := range details {
			if err := purchaseRepo.CreateDetail(d); err != nil {
				return err
			}
			// Incremento + re-derivación de visibilidad en un solo UPDATE.
			if _, err := productRepo.IncrementStock(tenantID, d.ProductID, d.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toResponse(purchase, details), nil
}

// GetPurchase obtiene una compra con su detalle.
func (uc *RegisterPurchaseUseCase) GetPurchase(ctx context.Context, scope domain.Scope, id string) (*dto.PurchaseResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	purchase, err := uc.purchaseRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.purchaseRepo.GetDetails(id)
	if err != nil {
		return nil, err
	}
	return toResponse(purchase, details), nil
}

// ListPurchases lista compras de la microempresa.
func (uc *RegisterPurchaseUseCase) ListPurchases(ctx context.Context, scope domain.Scope, page dto.PageRequest) (*dto.PurchaseListResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	page.DefaultPage()
	purchases, err := uc.purchaseRepo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PurchaseListResponse{
		Items: make([]dto.PurchaseResponse, 0, len(purchases)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range purchases {
		out.Items = append(out.Items, *toResponse(p, nil))
	}
	return out, nil
}

func toResponse(p *entity.Purchase, details []*entity.PurchaseDetail) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:            p.ID,
		TenantID:      p.TenantID,
		SupplierID:    p.SupplierID,
		InvoiceNumber: p.InvoiceNumber,
		PaymentType:   p.PaymentType,
		Total:         p.Total,
		Date:          p.Date,
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.PurchaseDetailResponse{
			ID:        d.ID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  d.Subtotal,
		})
	}
	return resp
}
