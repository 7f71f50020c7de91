package repository

import "github.com/jhoicas/Microgestion-api/internal/domain/entity"

// NotificationRepository puerto de persistencia para notificaciones de stock.
type NotificationRepository interface {
	// CreateIfUnread inserta la notificación solo si el producto no tiene ya
	// una no leída del mismo tipo. Devuelve true si insertó.
	CreateIfUnread(n *entity.StockNotification) (bool, error)
	ListByTenant(tenantID string, onlyUnread bool, limit, offset int) ([]*entity.StockNotification, error)
	MarkRead(tenantID, id string) error
	// DeleteByProduct limpia las notificaciones de un producto (al eliminarlo).
	DeleteByProduct(tenantID, productID string) error
}
