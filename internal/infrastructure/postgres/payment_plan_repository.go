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

var _ repository.PaymentPlanRepository = (*PaymentPlanRepo)(nil)

// PaymentPlanRepo implementación de PaymentPlanRepository sobre PostgreSQL.
type PaymentPlanRepo struct {
	q Querier
}

// NewPaymentPlanRepository construye el adaptador de persistencia para
// planes de pago.
func NewPaymentPlanRepository(q Querier) *PaymentPlanRepo {
	return &PaymentPlanRepo{q: q}
}

// Create persiste un nuevo plan de pago (solo super_admin).
func (r *PaymentPlanRepo) Create(p *entity.PaymentPlan) error {
	query := `
		INSERT INTO plan_pago (id, nombre, precio_mensual, max_productos, max_usuarios, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.MonthlyPrice, p.MaxProducts, p.MaxUsers, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert plan_pago: %w", err)
	}
	return nil
}

// GetByID obtiene un plan por ID.
func (r *PaymentPlanRepo) GetByID(id string) (*entity.PaymentPlan, error) {
	query := `
		SELECT id, nombre, precio_mensual, max_productos, max_usuarios, created_at
		FROM plan_pago WHERE id = $1`
	var p entity.PaymentPlan
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.MonthlyPrice, &p.MaxProducts, &p.MaxUsers, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan_pago: %w", err)
	}
	return &p, nil
}

// List lista todos los planes de pago.
func (r *PaymentPlanRepo) List() ([]*entity.PaymentPlan, error) {
	query := `
		SELECT id, nombre, precio_mensual, max_productos, max_usuarios, created_at
		FROM plan_pago ORDER BY precio_mensual`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list planes: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentPlan
	for rows.Next() {
		var p entity.PaymentPlan
		if err := rows.Scan(&p.ID, &p.Name, &p.MonthlyPrice, &p.MaxProducts, &p.MaxUsers, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan plan_pago: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
