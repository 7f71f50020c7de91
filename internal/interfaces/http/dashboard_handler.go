package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Microgestion-api/internal/application/usecase"
)

// DashboardHandler expone el resumen operativo de la microempresa (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del tablero
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), GetScope(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
