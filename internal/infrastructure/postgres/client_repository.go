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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre PostgreSQL
// (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(c *entity.Client) error {
	query := `
		INSERT INTO cliente (id, microempresa_id, nombre, nit, email, telefono, direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.TenantID, c.Name, c.TaxID, c.Email, c.Phone, c.Address, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID bajo la microempresa.
func (r *ClientRepo) GetByID(tenantID, id string) (*entity.Client, error) {
	query := `
		SELECT id, microempresa_id, nombre, nit, email, telefono, direccion, created_at, updated_at
		FROM cliente WHERE microempresa_id = $1 AND id = $2`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&c.ID, &c.TenantID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// ListByTenant lista clientes de la microempresa con paginación.
func (r *ClientRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT id, microempresa_id, nombre, nit, email, telefono, direccion, created_at, updated_at
		FROM cliente WHERE microempresa_id = $1 ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Name, &c.TaxID, &c.Email,
			&c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente existente.
func (r *ClientRepo) Update(c *entity.Client) error {
	query := `
		UPDATE cliente SET nombre = $3, nit = $4, email = $5, telefono = $6, direccion = $7, updated_at = $8
		WHERE microempresa_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		c.TenantID, c.ID, c.Name, c.TaxID, c.Email, c.Phone, c.Address, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente. Ventas históricas referencian cliente_id con
// ON DELETE SET NULL, así que el historial no bloquea el borrado.
func (r *ClientRepo) Delete(tenantID, id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM cliente WHERE microempresa_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrIntegrity
		}
		return fmt.Errorf("delete cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
