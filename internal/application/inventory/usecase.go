package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Microgestion-api/internal/application/dto"
	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// StockUseCase es el motor de reglas de inventario: fija el stock de un
// producto derivando visible_portal en el mismo statement y emite la
// notificación de agotado cuando el stock llega a cero.
type StockUseCase struct {
	txRunner TxRunner
}

// NewStockUseCase construye el motor.
func NewStockUseCase(txRunner TxRunner) *StockUseCase {
	return &StockUseCase{txRunner: txRunner}
}

// ApplyStockChange fija el stock del producto en newQty.
//
// newQty negativo se rechaza (nunca se recorta a cero). newQty == 0 emite
// una notificación "agotado" salvo que ya exista una no leída para el
// producto. Producto inexistente bajo la microempresa -> ErrNotFound.
func (uc *StockUseCase) ApplyStockChange(ctx context.Context, scope domain.Scope, productID string, newQty int) (*dto.StockChangeResponse, error) {
	if productID == "" || newQty < 0 {
		return nil, domain.ErrInvalidInput
	}
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}

	var out *dto.StockChangeResponse
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		notifRepo repository.NotificationRepository,
	) error {
		product, err := productRepo.SetStock(tenantID, productID, newQty)
		if err != nil {
			return err
		}
		emitted := false
		if newQty == 0 {
			emitted, err = EmitOutOfStockInTx(notifRepo, tenantID, product.ID, product.Name, time.Now())
			if err != nil {
				return err
			}
		}
		out = &dto.StockChangeResponse{
			Product:             ToProductResponse(product),
			NotificationEmitted: emitted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EmitOutOfStockInTx inserta la notificación de agotado usando el
// repositorio proporcionado (misma transacción del caller). El dedupe por
// producto-no-leída lo resuelve el repositorio en un solo statement.
// Lo usan también los procesadores de venta y compra.
func EmitOutOfStockInTx(notifRepo repository.NotificationRepository, tenantID, productID, productName string, now time.Time) (bool, error) {
	n := &entity.StockNotification{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		ProductID: productID,
		Kind:      entity.NotificationOutOfStock,
		Message:   fmt.Sprintf("El producto %q está agotado", productName),
		CreatedAt: now,
	}
	return notifRepo.CreateIfUnread(n)
}

// ToProductResponse mapea la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		TenantID:      p.TenantID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Price:         p.Price,
		StockActual:   p.StockActual,
		StockMinimo:   p.StockMinimo,
		VisiblePortal: p.VisiblePortal,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
