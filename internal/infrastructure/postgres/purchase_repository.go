package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL
// (usable con pool o tx; el procesador de compras lo usa siempre en tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de persistencia para compras.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera de la compra.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	query := `
		INSERT INTO compra (id, microempresa_id, proveedor_id, numero_factura, tipo_pago, total, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.TenantID, p.SupplierID, p.InvoiceNumber, p.PaymentType, p.Total, p.Date, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert compra: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de compra.
func (r *PurchaseRepo) CreateDetail(d *entity.PurchaseDetail) error {
	query := `
		INSERT INTO detalle_compra (id, compra_id, producto_id, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.PurchaseID, d.ProductID, d.Quantity, d.UnitPrice, d.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert detalle_compra: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID bajo la microempresa.
func (r *PurchaseRepo) GetByID(tenantID, id string) (*entity.Purchase, error) {
	query := `
		SELECT id, microempresa_id, proveedor_id, numero_factura, tipo_pago, total, fecha, created_at
		FROM compra WHERE microempresa_id = $1 AND id = $2`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&p.ID, &p.TenantID, &p.SupplierID, &p.InvoiceNumber, &p.PaymentType, &p.Total, &p.Date, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	return &p, nil
}

// GetDetails obtiene las líneas de una compra.
func (r *PurchaseRepo) GetDetails(purchaseID string) ([]*entity.PurchaseDetail, error) {
	query := `
		SELECT id, compra_id, producto_id, cantidad, precio_unitario, subtotal
		FROM detalle_compra WHERE compra_id = $1`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list detalle_compra: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseDetail
	for rows.Next() {
		var d entity.PurchaseDetail
		if err := rows.Scan(&d.ID, &d.PurchaseID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle_compra: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListByTenant lista compras de la microempresa con paginación.
func (r *PurchaseRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, microempresa_id, proveedor_id, numero_factura, tipo_pago, total, fecha, created_at
		FROM compra WHERE microempresa_id = $1 ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.TenantID, &p.SupplierID, &p.InvoiceNumber,
			&p.PaymentType, &p.Total, &p.Date, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
