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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL
// (usable con pool o tx).
//
// Las operaciones de stock escriben stock_actual y visible_portal en el
// mismo UPDATE: el invariante visible_portal == (stock_actual > 0) nunca
// queda a mitad de camino entre dos statements.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para
// productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productCols = `id, microempresa_id, nombre, descripcion, categoria, precio, stock_actual, stock_minimo, visible_portal, created_at, updated_at`

// Create persiste un nuevo producto. La visibilidad se deriva del stock inicial.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO producto (id, microempresa_id, nombre, descripcion, categoria, precio, stock_actual, stock_minimo, visible_portal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $7 > 0, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.TenantID, p.Name, p.Description, p.Category, p.Price,
		p.StockActual, p.StockMinimo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID bajo la microempresa.
func (r *ProductRepo) GetByID(tenantID, id string) (*entity.Product, error) {
	query := `SELECT ` + productCols + ` FROM producto WHERE microempresa_id = $1 AND id = $2`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// ListByTenant lista productos de la microempresa con paginación.
func (r *ProductRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productCols + ` FROM producto
		WHERE microempresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryProducts(query, tenantID, limit, offset)
}

// ListVisible productos visibles en el portal público (stock > 0).
func (r *ProductRepo) ListVisible(tenantID string) ([]*entity.Product, error) {
	query := `SELECT ` + productCols + ` FROM producto
		WHERE microempresa_id = $1 AND visible_portal = true ORDER BY nombre`
	return r.queryProducts(query, tenantID)
}

// Update actualiza datos del producto. No toca stock ni visibilidad:
// esos pasan por SetStock/IncrementStock/DecrementStockIfAvailable.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE producto SET nombre = $3, descripcion = $4, categoria = $5, precio = $6, stock_minimo = $7, updated_at = $8
		WHERE microempresa_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		p.TenantID, p.ID, p.Name, p.Description, p.Category, p.Price, p.StockMinimo, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto de la microempresa. Las notificaciones se
// limpian aparte (NotificationRepository.DeleteByProduct); filas de detalle
// de compras/ventas existentes bloquean el borrado (ErrIntegrity).
func (r *ProductRepo) Delete(tenantID, id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM producto WHERE microempresa_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrIntegrity
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStock fija el stock y deriva la visibilidad en un solo UPDATE.
func (r *ProductRepo) SetStock(tenantID, productID string, qty int) (*entity.Product, error) {
	query := `
		UPDATE producto SET stock_actual = $3, visible_portal = ($3 > 0), updated_at = now()
		WHERE microempresa_id = $1 AND id = $2
		RETURNING ` + productCols
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, tenantID, productID, qty))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("set stock: %w", err)
	}
	return p, nil
}

// IncrementStock suma delta al stock (entradas por compra) y deriva la
// visibilidad. Devuelve el stock resultante.
func (r *ProductRepo) IncrementStock(tenantID, productID string, delta int) (int, error) {
	var newStock int
	err := r.q.QueryRow(context.Background(), `
		UPDATE producto SET stock_actual = stock_actual + $3, visible_portal = (stock_actual + $3 > 0), updated_at = now()
		WHERE microempresa_id = $1 AND id = $2
		RETURNING stock_actual`,
		tenantID, productID, delta,
	).Scan(&newStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("increment stock: %w", err)
	}
	return newStock, nil
}

// DecrementStockIfAvailable resta qty solo si hay stock suficiente, en un
// único UPDATE condicional evaluado por la base: dos ventas simultáneas
// sobre el mismo producto no pueden descontar más de lo disponible.
func (r *ProductRepo) DecrementStockIfAvailable(tenantID, productID string, qty int) (int, bool, error) {
	var newStock int
	err := r.q.QueryRow(context.Background(), `
		UPDATE producto SET stock_actual = stock_actual - $3, visible_portal = (stock_actual - $3 > 0), updated_at = now()
		WHERE microempresa_id = $1 AND id = $2 AND stock_actual >= $3
		RETURNING stock_actual`,
		tenantID, productID, qty,
	).Scan(&newStock)
	if err == nil {
		return newStock, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, fmt.Errorf("decrement stock: %w", err)
	}
	// Sin filas: distinguir producto inexistente de stock insuficiente.
	var exists bool
	err = r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM producto WHERE microempresa_id = $1 AND id = $2)`,
		tenantID, productID,
	).Scan(&exists)
	if err != nil {
		return 0, false, fmt.Errorf("check producto: %w", err)
	}
	if !exists {
		return 0, false, domain.ErrNotFound
	}
	return 0, false, nil
}

func (r *ProductRepo) queryProducts(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.TenantID, &p.Name, &p.Description, &p.Category,
		&p.Price, &p.StockActual, &p.StockMinimo, &p.VisiblePortal,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
