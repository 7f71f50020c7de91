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

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente de la microempresa.
func (uc *ClientUseCase) Create(ctx context.Context, scope domain.Scope, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente de la microempresa.
func (uc *ClientUseCase) GetByID(ctx context.Context, scope domain.Scope, id string) (*dto.ClientResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	client, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// Update actualiza un cliente.
func (uc *ClientUseCase) Update(ctx context.Context, scope domain.Scope, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	client, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		client.Name = *in.Name
	}
	if in.TaxID != nil {
		client.TaxID = *in.TaxID
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente. Las ventas que lo referencian conservan la
// referencia (la FK usa SET NULL); el historial no se pierde.
func (uc *ClientUseCase) Delete(ctx context.Context, scope domain.Scope, id string) error {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return err
	}
	return uc.repo.Delete(tenantID, id)
}

// List lista clientes de la microempresa con paginación.
func (uc *ClientUseCase) List(ctx context.Context, scope domain.Scope, page dto.PageRequest) (*dto.ClientListResponse, error) {
	tenantID, err := scope.TenantFor("")
	if err != nil {
		return nil, err
	}
	page.DefaultPage()
	clients, err := uc.repo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ClientListResponse{
		Items: make([]dto.ClientResponse, 0, len(clients)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, c := range clients {
		out.Items = append(out.Items, *toClientResponse(c))
	}
	return out, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		TenantID:  c.TenantID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
