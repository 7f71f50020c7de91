package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Microgestion-api/internal/application/dto"
	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// PaymentPlanUseCase casos de uso para planes de pago de la plataforma.
type PaymentPlanUseCase struct {
	repo repository.PaymentPlanRepository
}

// NewPaymentPlanUseCase construye el caso de uso.
func NewPaymentPlanUseCase(repo repository.PaymentPlanRepository) *PaymentPlanUseCase {
	return &PaymentPlanUseCase{repo: repo}
}

// Create crea un plan de pago. Solo super_admin.
func (uc *PaymentPlanUseCase) Create(ctx context.Context, scope domain.Scope, in dto.CreatePaymentPlanRequest) (*dto.PaymentPlanResponse, error) {
	if !scope.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.MonthlyPrice.LessThan(decimal.Zero) || in.MaxProducts < 0 || in.MaxUsers < 0 {
		return nil, domain.ErrInvalidInput
	}
	plan := &entity.PaymentPlan{
		ID:           uuid.New().String(),
		Name:         in.Name,
		MonthlyPrice: in.MonthlyPrice,
		MaxProducts:  in.MaxProducts,
		MaxUsers:     in.MaxUsers,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// GetByID obtiene un plan de pago.
func (uc *PaymentPlanUseCase) GetByID(ctx context.Context, id string) (*dto.PaymentPlanResponse, error) {
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	return toPlanResponse(plan), nil
}

// List lista los planes de pago disponibles.
func (uc *PaymentPlanUseCase) List(ctx context.Context) ([]dto.PaymentPlanResponse, error) {
	plans, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, *toPlanResponse(p))
	}
	return out, nil
}

func toPlanResponse(p *entity.PaymentPlan) *dto.PaymentPlanResponse {
	return &dto.PaymentPlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		MonthlyPrice: p.MonthlyPrice,
		MaxProducts:  p.MaxProducts,
		MaxUsers:     p.MaxUsers,
		CreatedAt:    p.CreatedAt,
	}
}
