package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL
// (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO proveedor (id, microempresa_id, nombre, nit, email, telefono, direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.TenantID, s.Name, s.TaxID, s.Email, s.Phone, s.Address, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID bajo la microempresa.
func (r *SupplierRepo) GetByID(tenantID, id string) (*entity.Supplier, error) {
	query := `
		SELECT id, microempresa_id, nombre, nit, email, telefono, direccion, created_at, updated_at
		FROM proveedor WHERE microempresa_id = $1 AND id = $2`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&s.ID, &s.TenantID, &s.Name, &s.TaxID, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &s, nil
}

// ListByTenant lista proveedores de la microempresa con paginación.
func (r *SupplierRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, microempresa_id, nombre, nit, email, telefono, direccion, created_at, updated_at
		FROM proveedor WHERE microempresa_id = $1 ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Name, &s.TaxID, &s.Email,
			&s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE proveedor SET nombre = $3, nit = $4, email = $5, telefono = $6, direccion = $7, updated_at = $8
		WHERE microempresa_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		s.TenantID, s.ID, s.Name, s.TaxID, s.Email, s.Phone, s.Address, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor sin compras asociadas.
func (r *SupplierRepo) Delete(tenantID, id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM proveedor WHERE microempresa_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrIntegrity
		}
		return fmt.Errorf("delete proveedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountPurchases cuenta las compras registradas contra el proveedor.
func (r *SupplierRepo) CountPurchases(tenantID, supplierID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM compra WHERE microempresa_id = $1 AND proveedor_id = $2`,
		tenantID, supplierID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count compras de proveedor: %w", err)
	}
	return n, nil
}
