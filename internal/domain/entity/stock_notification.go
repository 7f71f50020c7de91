package entity

import "time"

// Tipos de notificación de stock.
const (
	NotificationOutOfStock = "agotado"
)

// StockNotification aviso generado por el motor de inventario cuando un
// producto llega a stock cero (tabla notificacion_stock). Mientras exista
// una no leída para el producto no se crean duplicadas.
type StockNotification struct {
	ID        string
	TenantID  string
	ProductID string
	Kind      string
	Message   string
	Read      bool
	CreatedAt time.Time
}
