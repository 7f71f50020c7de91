package purchases

import (
	"context"

	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de compra atados a esa tx. Cabecera, detalles e incrementos
// de stock se confirman o revierten juntos: no hay compra parcial.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		notifRepo repository.NotificationRepository,
	) error) error
}
