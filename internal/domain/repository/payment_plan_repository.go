package repository

import "github.com/jhoicas/Microgestion-api/internal/domain/entity"

// PaymentPlanRepository puerto de persistencia para planes de pago.
type PaymentPlanRepository interface {
	Create(p *entity.PaymentPlan) error
	GetByID(id string) (*entity.PaymentPlan, error)
	List() ([]*entity.PaymentPlan, error)
}
