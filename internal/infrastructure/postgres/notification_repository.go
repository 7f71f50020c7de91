package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL
// (usable con pool o tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de persistencia para
// notificaciones de stock.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// CreateIfUnread inserta la notificación solo si el producto no tiene ya una
// no leída del mismo tipo. El INSERT condicional corre en un solo statement
// para que el dedupe valga también dentro de la transacción de venta.
func (r *NotificationRepo) CreateIfUnread(n *entity.StockNotification) (bool, error) {
	query := `
		INSERT INTO notificacion_stock (id, microempresa_id, producto_id, tipo, mensaje, leida, created_at)
		SELECT $1, $2, $3, $4, $5, false, $6
		WHERE NOT EXISTS (
			SELECT 1 FROM notificacion_stock
			WHERE microempresa_id = $2 AND producto_id = $3 AND tipo = $4 AND leida = false
		)`
	cmd, err := r.q.Exec(context.Background(), query,
		n.ID, n.TenantID, n.ProductID, n.Kind, n.Message, n.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert notificacion_stock: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// ListByTenant lista notificaciones de la microempresa, opcionalmente solo
// las no leídas.
func (r *NotificationRepo) ListByTenant(tenantID string, onlyUnread bool, limit, offset int) ([]*entity.StockNotification, error) {
	query := `
		SELECT id, microempresa_id, producto_id, tipo, mensaje, leida, created_at
		FROM notificacion_stock
		WHERE microempresa_id = $1 AND ($2 = false OR leida = false)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, tenantID, onlyUnread, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notificaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockNotification
	for rows.Next() {
		var n entity.StockNotification
		if err := rows.Scan(&n.ID, &n.TenantID, &n.ProductID, &n.Kind,
			&n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notificacion: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca una notificación como leída.
func (r *NotificationRepo) MarkRead(tenantID, id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE notificacion_stock SET leida = true WHERE microempresa_id = $1 AND id = $2`,
		tenantID, id)
	if err != nil {
		return fmt.Errorf("mark notificacion leída: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByProduct limpia las notificaciones de un producto.
func (r *NotificationRepo) DeleteByProduct(tenantID, productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM notificacion_stock WHERE microempresa_id = $1 AND producto_id = $2`,
		tenantID, productID)
	if err != nil {
		return fmt.Errorf("delete notificaciones de producto: %w", err)
	}
	return nil
}
