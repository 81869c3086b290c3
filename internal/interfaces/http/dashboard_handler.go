package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventario-pyme/internal/application/analytics"
	"github.com/jhoicas/inventario-pyme/internal/application/inventory"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc            *appanalytics.DashboardUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, replenishment *inventory.ReplenishmentUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, replenishment: replenishment}
}

// GetMetrics devuelve total de productos, productos en stock bajo (incluye agotados),
// valor total del inventario y proveedores activos.
// GET /api/dashboard/metrics
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	out, err := h.uc.Metrics(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetLowStock GET /api/dashboard/low-stock
func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetRecentActivity devuelve los últimos movimientos enriquecidos.
// GET /api/dashboard/recent-activity?limit=10
//
// Un limit ausente, no numérico o <= 0 usa el valor por defecto configurado.
func (h *DashboardHandler) GetRecentActivity(c *fiber.Ctx) error {
	out, err := h.uc.RecentActivity(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetCategories GET /api/dashboard/categories
func (h *DashboardHandler) GetCategories(c *fiber.Ctx) error {
	out, err := h.uc.CategorySummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Productos en o por debajo del punto de reorden con la cantidad sugerida
//
//	de pedido, ordenados por unidades vendidas en los últimos 90 días.
//
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/replenishment [get]
func (h *DashboardHandler) GetReplenishmentList(c *fiber.Ctx) error {
	out, err := h.replenishment.GenerateReplenishmentList(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
