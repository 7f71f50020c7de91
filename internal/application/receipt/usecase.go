package receipt

import (
	"context"

	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// ReceiptUseCase arma el recibo PDF de una venta: resuelve venta, líneas,
// microempresa y cliente, y delega el render al generador.
type ReceiptUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	companyRepo repository.CompanyRepository
	clientRepo  repository.ClientRepository
	generator   ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		companyRepo: companyRepo,
		clientRepo:  clientRepo,
		generator:   generator,
	}
}

// GenerateReceipt genera el PDF del recibo de la venta. Los precios del
// recibo son los snapshots guardados en las líneas, no los actuales.
func (uc *ReceiptUseCase) GenerateReceipt(ctx context.Context, scope domain.Scope, saleID string) ([]byte, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	sale, err := uc.saleRepo.GetByID(tenantID, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItems(sale.ID)
	if err != nil {
		return nil, err
	}
	lines := make([]SaleLineForPDF, 0, len(items))
	for _, it := range items {
		name := it.ProductID
		product, err := uc.productRepo.GetByID(tenantID, it.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			name = product.Name
		}
		lines = append(lines, SaleLineForPDF{
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	if sale.ClientID != nil {
		c, err := uc.clientRepo.GetByID(tenantID, *sale.ClientID)
		if err != nil {
			return nil, err
		}
		return uc.generator.GenerateReceiptPDF(ctx, sale, company, c, lines)
	}
	return uc.generator.GenerateReceiptPDF(ctx, sale, company, nil, lines)
}
