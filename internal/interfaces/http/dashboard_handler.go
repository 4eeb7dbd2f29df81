package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/callcrm-api/internal/application/dto"
	"github.com/jhoicas/callcrm-api/internal/application/report"
)

// DashboardHandler maneja las peticiones HTTP de dashboards.
type DashboardHandler struct {
	uc *report.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *report.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Admin GET /api/dashboard/admin?date= o ?startDate=&endDate= (solo Admin)
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	date, err := queryDate(c, "date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("fecha inválida (YYYY-MM-DD)"))
	}
	start, err := queryDate(c, "startDate")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("fecha inválida (YYYY-MM-DD)"))
	}
	end, err := queryDate(c, "endDate")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("fecha inválida (YYYY-MM-DD)"))
	}
	out, err := h.uc.Admin(c.Context(), report.DashboardRange{Date: date, StartDate: start, EndDate: end})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Employee GET /api/dashboard/employee
func (h *DashboardHandler) Employee(c *fiber.Ctx) error {
	out, err := h.uc.Employee(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
