package usecase

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Microgestion-api/internal/application/dto"
	"github.com/jhoicas/Microgestion-api/internal/domain"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// PortalUseCase vitrina pública de una microempresa: solo productos con
// stock. No requiere autenticación y nunca expone stock ni costos.
type PortalUseCase struct {
	companyRepo repository.CompanyRepository
	productRepo repository.ProductRepository
}

// NewPortalUseCase construye el caso de uso.
func NewPortalUseCase(companyRepo repository.CompanyRepository, productRepo repository.ProductRepository) *PortalUseCase {
	return &PortalUseCase{companyRepo: companyRepo, productRepo: productRepo}
}

// ListProducts lista los productos visibles del portal de la microempresa,
// con búsqueda opcional insensible a mayúsculas y tildes ("cafe" encuentra
// "Café") sobre nombre y categoría.
func (uc *PortalUseCase) ListProducts(ctx context.Context, tenantID, query string, page dto.PageRequest) (*dto.PortalListResponse, error) {
	if tenantID == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	products, err := uc.productRepo.ListVisible(tenantID)
	if err != nil {
		return nil, err
	}
	page.DefaultPage()

	needle := foldAccents(strings.ToLower(strings.TrimSpace(query)))
	out := &dto.PortalListResponse{
		Items: []dto.PortalProductResponse{},
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	skipped := 0
	for _, p := range products {
		if needle != "" {
			haystack := foldAccents(strings.ToLower(p.Name))
			if p.Category != nil {
				haystack += " " + foldAccents(strings.ToLower(*p.Category))
			}
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		if skipped < page.Offset {
			skipped++
			continue
		}
		if len(out.Items) >= page.Limit {
			break
		}
		out.Items = append(out.Items, dto.PortalProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
		})
	}
	return out, nil
}

// foldAccents elimina marcas diacríticas vía descomposición NFD.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
