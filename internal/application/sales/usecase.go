package sales

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

// ProcessSaleUseCase procesa ventas de punto de venta. El descuento de stock
// es condicional y atómico por línea (stock_actual >= cantidad en el mismo
// UPDATE): si alguna línea no alcanza, la venta completa se revierte. El
// precio de cada línea es un snapshot del producto al momento de la venta y
// el consecutivo por microempresa se reserva dentro de la misma transacción.
type ProcessSaleUseCase struct {
	txRunner   TxRunner
	clientRepo repository.ClientRepository
	saleRepo   repository.SaleRepository
}

// NewProcessSaleUseCase construye el caso de uso.
func NewProcessSaleUseCase(txRunner TxRunner, clientRepo repository.ClientRepository, saleRepo repository.SaleRepository) *ProcessSaleUseCase {
	return &ProcessSaleUseCase{txRunner: txRunner, clientRepo: clientRepo, saleRepo: saleRepo}
}

// ProcessSale valida y registra la venta.
func (uc *ProcessSaleUseCase) ProcessSale(ctx context.Context, scope domain.Scope, in dto.ProcessSaleRequest) (*dto.SaleResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	if len(in.Items) == 0 || !entity.ValidPayment(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.ClientID != nil {
		client, err := uc.clientRepo.GetByID(tenantID, *in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		ClientID:      in.ClientID,
		PaymentMethod: in.PaymentMethod,
		Date:          now,
		CreatedAt:     now,
	}
	var items []*entity.SaleItem

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		notifRepo repository.NotificationRepository,
		companyRepo repository.CompanyRepository,
	) error {
		number, err := companyRepo.NextSaleNumber(tenantID)
		if err != nil {
			return err
		}
		sale.Number = number

		total := decimal.Zero
		items = items[:0]
		for _, item := range in.Items {
			product, err := productRepo.GetByID(tenantID, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			// Descuento condicional: protege contra sobreventa bajo
			// ventas concurrentes sin bloqueo pesimista.
			newStock, ok, err := productRepo.DecrementStockIfAvailable(tenantID, product.ID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrInsufficientStock
			}
			if newStock == 0 {
				if _, err := inventory.EmitOutOfStockInTx(notifRepo, tenantID, product.ID, product.Name, now); err != nil {
					return err
				}
			}
			subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
			total = total.Add(subtotal)
			items = append(items, &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			})
		}
		sale.Total = total

		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, it := range items {
			if err := saleRepo.CreateItem(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toResponse(sale, items), nil
}

// GetSale obtiene una venta con sus líneas.
func (uc *ProcessSaleUseCase) GetSale(ctx context.Context, scope domain.Scope, id string) (*dto.SaleResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	sale, err := uc.saleRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return toResponse(sale, items), nil
}

// ListSales lista ventas de la microempresa.
func (uc *ProcessSaleUseCase) ListSales(ctx context.Context, scope domain.Scope, page dto.PageRequest) (*dto.SaleListResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	page.DefaultPage()
	sales, err := uc.saleRepo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(sales)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, s := range sales {
		out.Items = append(out.Items, *toResponse(s, nil))
	}
	return out, nil
}

func toResponse(s *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		TenantID:      s.TenantID,
		ClientID:      s.ClientID,
		Number:        s.Number,
		PaymentMethod: s.PaymentMethod,
		Total:         s.Total,
		Date:          s.Date,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}
