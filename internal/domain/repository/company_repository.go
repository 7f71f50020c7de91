package repository

import "github.com/jhoicas/Microgestion-api/internal/domain/entity"

// CompanyRepository puerto de persistencia para microempresas.
type CompanyRepository interface {
	Create(c *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
	Update(c *entity.Company) error
	// NextSaleNumber incrementa y devuelve el consecutivo de venta de la
	// microempresa. Debe llamarse dentro de la transacción de venta para
	// que el número quede reservado de forma atómica.
	NextSaleNumber(tenantID string) (int64, error)
}
