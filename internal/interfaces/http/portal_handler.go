package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Microgestion-api/internal/application/dto"
	"github.com/jhoicas/Microgestion-api/internal/application/usecase"
)

// PortalHandler expone la vitrina pública de una microempresa. No requiere
// autenticación y nunca expone stock, costos ni datos internos.
type PortalHandler struct {
	uc *usecase.PortalUseCase
}

// NewPortalHandler construye el handler.
func NewPortalHandler(uc *usecase.PortalUseCase) *PortalHandler {
	return &PortalHandler{uc: uc}
}

// ListProducts godoc
// @Summary      Productos visibles del portal
// @Description  Solo productos con stock; búsqueda insensible a mayúsculas y tildes.
// @Tags         portal
// @Produce      json
// @Param        tenantID  path   string  true   "ID de la microempresa"
// @Param        q         query  string  false  "Búsqueda por nombre o categoría"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200       {object}  dto.PortalListResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /portal/{tenantID}/products [get]
func (h *PortalHandler) ListProducts(c *fiber.Ctx) error {
	tenantID := c.Params("tenantID")
	if tenantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "tenantID es requerido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListProducts(c.Context(), tenantID, c.Query("q"), page)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
