package usecase

import (
	"context"

	"github.com/jhoicas/Microgestion-api/internal/application/dto"
	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// DashboardUseCase resumen operativo de la microempresa.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary devuelve los contadores del tablero.
func (uc *DashboardUseCase) Summary(ctx context.Context, scope domain.Scope) (*dto.DashboardResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	s, err := uc.repo.Summary(tenantID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Products:            s.Products,
		Clients:             s.Clients,
		SalesToday:          s.SalesToday,
		SalesTodayTotal:     s.SalesTodayTotal,
		UnreadNotifications: s.UnreadNotifications,
		LowStockProducts:    s.LowStockProducts,
	}, nil
}
