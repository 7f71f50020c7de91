package usecase

import (
	"context"

	"github.com/jhoicas/Microgestion-api/internal/application/dto"
	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// NotificationUseCase listado y marcado de notificaciones de stock.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List lista notificaciones de la microempresa, opcionalmente solo no leídas.
func (uc *NotificationUseCase) List(ctx context.Context, scope domain.Scope, onlyUnread bool, page dto.PageRequest) (*dto.NotificationListResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	page.DefaultPage()
	notifications, err := uc.repo.ListByTenant(tenantID, onlyUnread, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.NotificationListResponse{
		Items: make([]dto.NotificationResponse, 0, len(notifications)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, n := range notifications {
		out.Items = append(out.Items, dto.NotificationResponse{
			ID:        n.ID,
			ProductID: n.ProductID,
			Kind:      n.Kind,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

// MarkRead marca una notificación como leída. Tras esto, si el producto
// vuelve a agotarse se genera una notificación nueva.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, scope domain.Scope, id string) error {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return err
	}
	return uc.repo.MarkRead(tenantID, id)
}
