package repository

import "github.com/jhoicas/Microgestion-api/internal/domain/entity"

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	Create(s *entity.Sale) error
	CreateItem(i *entity.SaleItem) error
	GetByID(tenantID, id string) (*entity.Sale, error)
	GetItems(saleID string) ([]*entity.SaleItem, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Sale, error)
}
