package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL
// (usable con pool o tx; el procesador de ventas lo usa siempre en tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `
		INSERT INTO venta (id, microempresa_id, cliente_id, consecutivo, metodo_pago, total, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.TenantID, s.ClientID, s.Number, s.PaymentMethod, s.Total, s.Date, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta con su precio snapshot.
func (r *SaleRepo) CreateItem(i *entity.SaleItem) error {
	query := `
		INSERT INTO detalle_venta (id, venta_id, producto_id, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.SaleID, i.ProductID, i.Quantity, i.UnitPrice, i.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert detalle_venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID bajo la microempresa.
func (r *SaleRepo) GetByID(tenantID, id string) (*entity.Sale, error) {
	query := `
		SELECT id, microempresa_id, cliente_id, consecutivo, metodo_pago, total, fecha, created_at
		FROM venta WHERE microempresa_id = $1 AND id = $2`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&s.ID, &s.TenantID, &s.ClientID, &s.Number, &s.PaymentMethod, &s.Total, &s.Date, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &s, nil
}

// GetItems obtiene las líneas de una venta.
func (r *SaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, venta_id, producto_id, cantidad, precio_unitario, subtotal
		FROM detalle_venta WHERE venta_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list detalle_venta: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var i entity.SaleItem
		if err := rows.Scan(&i.ID, &i.SaleID, &i.ProductID, &i.Quantity, &i.UnitPrice, &i.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle_venta: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// ListByTenant lista ventas de la microempresa con paginación.
func (r *SaleRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, microempresa_id, cliente_id, consecutivo, metodo_pago, total, fecha, created_at
		FROM venta WHERE microempresa_id = $1 ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.TenantID, &s.ClientID, &s.Number,
			&s.PaymentMethod, &s.Total, &s.Date, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
