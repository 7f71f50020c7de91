package sales

import (
	"context"

	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de venta atados a esa tx. Cabecera, líneas, descuentos de
// stock, consecutivo y notificaciones se confirman o revierten juntos.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		notifRepo repository.NotificationRepository,
		companyRepo repository.CompanyRepository,
	) error) error
}
