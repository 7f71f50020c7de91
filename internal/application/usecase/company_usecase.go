package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Microgestion-api/internal/application/dto"
	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/entity"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// CompanyUseCase casos de uso para microempresas. Crear y listar son
// operaciones de super_admin; obtener y actualizar quedan atadas a la
// microempresa del llamador.
type CompanyUseCase struct {
	repo     repository.CompanyRepository
	planRepo repository.PaymentPlanRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository, planRepo repository.PaymentPlanRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, planRepo: planRepo}
}

// Create registra una microempresa. Solo super_admin.
func (uc *CompanyUseCase) Create(ctx context.Context, scope domain.Scope, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if !scope.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.NIT == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PlanID != "" {
		plan, err := uc.planRepo.GetByID(in.PlanID)
		if err != nil {
			return nil, err
		}
		if plan == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		NIT:       in.NIT,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		PlanID:    in.PlanID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una microempresa. El llamador solo ve la suya salvo que
// sea super_admin.
func (uc *CompanyUseCase) GetByID(ctx context.Context, scope domain.Scope, id string) (*dto.CompanyResponse, error) {
	tenantID, err := scope.TenantFor(id)
	if err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Update actualiza datos de la microempresa.
func (uc *CompanyUseCase) Update(ctx context.Context, scope domain.Scope, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	tenantID, err := scope.TenantFor(id)
	if err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		company.Name = *in.Name
	}
	if in.NIT != nil {
		company.NIT = *in.NIT
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.PlanID != nil {
		if *in.PlanID != "" {
			plan, err := uc.planRepo.GetByID(*in.PlanID)
			if err != nil {
				return nil, err
			}
			if plan == nil {
				return nil, domain.ErrNotFound
			}
		}
		company.PlanID = *in.PlanID
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List lista microempresas. Solo super_admin.
func (uc *CompanyUseCase) List(ctx context.Context, scope domain.Scope, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	if !scope.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	companies, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.CompanyListResponse{
		Items: make([]dto.CompanyResponse, 0, len(companies)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, c := range companies {
		out.Items = append(out.Items, *toCompanyResponse(c))
	}
	return out, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		NIT:       c.NIT,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		PlanID:    c.PlanID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
