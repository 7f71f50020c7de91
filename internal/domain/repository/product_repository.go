package repository

import "github.com/jhoicas/Microgestion-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
//
// Las tres operaciones de stock escriben stock_actual y visible_portal en un
// solo UPDATE, manteniendo el invariante visible_portal == (stock_actual > 0)
// sin segunda ronda a la base.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(tenantID, id string) (*entity.Product, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, error)
	// ListVisible productos con stock para el portal público.
	ListVisible(tenantID string) ([]*entity.Product, error)
	Update(p *entity.Product) error
	Delete(tenantID, id string) error

	// SetStock fija el stock en qty y deriva la visibilidad. Devuelve el
	// producto actualizado o ErrNotFound si no existe bajo la microempresa.
	SetStock(tenantID, productID string, qty int) (*entity.Product, error)
	// IncrementStock suma delta al stock (compras) y deriva la visibilidad.
	// Devuelve el stock resultante.
	IncrementStock(tenantID, productID string, delta int) (int, error)
	// DecrementStockIfAvailable resta qty solo si stock_actual >= qty, en un
	// único UPDATE condicional (protección contra sobreventa concurrente).
	// ok=false significa stock insuficiente; producto inexistente es error.
	DecrementStockIfAvailable(tenantID, productID string, qty int) (newStock int, ok bool, err error)
}
