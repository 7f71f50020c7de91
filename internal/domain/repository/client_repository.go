package repository

import "github.com/jhoicas/Microgestion-api/internal/domain/entity"

// ClientRepository puerto de persistencia para clientes.
// Todas las lecturas/escrituras van filtradas por microempresa.
type ClientRepository interface {
	Create(c *entity.Client) error
	GetByID(tenantID, id string) (*entity.Client, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Client, error)
	Update(c *entity.Client) error
	Delete(tenantID, id string) error
}
