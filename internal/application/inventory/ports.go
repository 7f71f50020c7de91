package inventory

import (
	"context"

	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que stock y notificación se
// confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		notifRepo repository.NotificationRepository,
	) error) error
}
