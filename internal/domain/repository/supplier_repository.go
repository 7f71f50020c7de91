package repository

import "github.com/jhoicas/Microgestion-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(tenantID, id string) (*entity.Supplier, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Supplier, error)
	Update(s *entity.Supplier) error
	Delete(tenantID, id string) error
	// CountPurchases cuenta las compras asociadas al proveedor; un proveedor
	// con compras no puede eliminarse.
	CountPurchases(tenantID, supplierID string) (int, error)
}
