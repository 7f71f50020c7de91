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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository sobre PostgreSQL
// (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para
// microempresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva microempresa. El consecutivo de venta inicia en 0.
func (r *CompanyRepo) Create(c *entity.Company) error {
	query := `
		INSERT INTO microempresa (id, nombre, nit, email, telefono, direccion, plan_id, consecutivo_venta, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.NIT, c.Email, c.Phone, c.Address, nullIfEmpty(c.PlanID), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert microempresa: %w", err)
	}
	return nil
}

// GetByID obtiene una microempresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, nombre, nit, email, telefono, direccion, plan_id, consecutivo_venta, created_at, updated_at
		FROM microempresa WHERE id = $1`
	c, err := scanCompany(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get microempresa: %w", err)
	}
	return c, nil
}

// List lista microempresas con paginación (solo super_admin).
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, nombre, nit, email, telefono, direccion, plan_id, consecutivo_venta, created_at, updated_at
		FROM microempresa ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list microempresas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan microempresa: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza los datos de contacto y el plan. No toca el consecutivo.
func (r *CompanyRepo) Update(c *entity.Company) error {
	query := `
		UPDATE microempresa SET nombre = $2, nit = $3, email = $4, telefono = $5, direccion = $6, plan_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.NIT, c.Email, c.Phone, c.Address, nullIfEmpty(c.PlanID), c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update microempresa: %w", err)
	}
	return nil
}

// NextSaleNumber incrementa y devuelve el consecutivo de venta en un solo
// statement; llamado dentro de la transacción de venta.
func (r *CompanyRepo) NextSaleNumber(tenantID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`UPDATE microempresa SET consecutivo_venta = consecutivo_venta + 1 WHERE id = $1 RETURNING consecutivo_venta`,
		tenantID,
	).Scan(&n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("next sale number: %w", err)
	}
	return n, nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	var planID *string
	if err := row.Scan(&c.ID, &c.Name, &c.NIT, &c.Email, &c.Phone, &c.Address,
		&planID, &c.SaleSequence, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if planID != nil {
		c.PlanID = *planID
	}
	return &c, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
