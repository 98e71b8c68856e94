package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventory-pro/internal/application/analytics"
	"github.com/jhoicas/inventory-pro/internal/application/dto"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Conteos y valor ilustrativo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary(c.UserContext()))
}

// GetActivity godoc
// @Summary      Actividad reciente (últimas 10 entradas)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ActivityDTO]
// @Router       /api/dashboard/activity [get]
func (h *DashboardHandler) GetActivity(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.uc.GetActivity(c.UserContext())))
}
