package repository

import "github.com/jhoicas/Microgestion-api/internal/domain/entity"

// PurchaseRepository puerto de persistencia para compras a proveedor.
type PurchaseRepository interface {
	Create(p *entity.Purchase) error
	CreateDetail(d *entity.PurchaseDetail) error
	GetByID(tenantID, id string) (*entity.Purchase, error)
	GetDetails(purchaseID string) ([]*entity.PurchaseDetail, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Purchase, error)
}
