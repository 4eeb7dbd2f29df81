package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/callcrm-api/internal/application/dto"
	"github.com/jhoicas/callcrm-api/internal/application/report"
	"github.com/jhoicas/callcrm-api/internal/domain/policy"
)

// ReportHandler maneja las peticiones HTTP de reportes.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// queryDate parsea un parámetro de fecha opcional (YYYY-MM-DD).
func queryDate(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// queryRange parsea startDate/endDate; endDate se vuelve exclusivo (+1 día).
func queryRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	from, err := queryDate(c, "startDate")
	if err != nil {
		return nil, nil, err
	}
	to, err := queryDate(c, "endDate")
	if err != nil {
		return nil, nil, err
	}
	if to != nil {
		next := to.AddDate(0, 0, 1)
		to = &next
	}
	return from, to, nil
}

// EmployeePerformance GET /api/reports/employee-performance?employeeId=&startDate=&endDate=
// Agents solo ven su propio desempeño.
func (h *ReportHandler) EmployeePerformance(c *fiber.Ctx) error {
	from, to, err := queryRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("fecha inválida (YYYY-MM-DD)"))
	}
	employeeID := policy.ScopeEmployee(GetActor(c), int64(c.QueryInt("employeeId")))
	out, err := h.uc.EmployeePerformance(c.Context(), employeeID, from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// EmployeeBreakdown GET /api/reports/employee-breakdown?employeeId=&startDate=&endDate=
func (h *ReportHandler) EmployeeBreakdown(c *fiber.Ctx) error {
	from, to, err := queryRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("fecha inválida (YYYY-MM-DD)"))
	}
	employeeID := policy.ScopeEmployee(GetActor(c), int64(c.QueryInt("employeeId")))
	out, err := h.uc.EmployeeBreakdown(c.Context(), employeeID, from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// PurposeSummary GET /api/reports/purpose-summary?startDate=&endDate=
func (h *ReportHandler) PurposeSummary(c *fiber.Ctx) error {
	from, to, err := queryRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("fecha inválida (YYYY-MM-DD)"))
	}
	out, err := h.uc.PurposeSummary(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// CallTrends GET /api/reports/call-trends?period=daily|weekly|monthly&startDate=&endDate=
func (h *ReportHandler) CallTrends(c *fiber.Ctx) error {
	from, to, err := queryRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("fecha inválida (YYYY-MM-DD)"))
	}
	out, err := h.uc.CallTrends(c.Context(), c.Query("period", "daily"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// MissedCalls GET /api/reports/missed-calls?startDate=&endDate=
func (h *ReportHandler) MissedCalls(c *fiber.Ctx) error {
	from, to, err := queryRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("fecha inválida (YYYY-MM-DD)"))
	}
	out, err := h.uc.MissedCalls(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// PendingFollowups GET /api/reports/pending-followups
func (h *ReportHandler) PendingFollowups(c *fiber.Ctx) error {
	out, err := h.uc.PendingFollowups()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// CustomerEngagement GET /api/reports/customer-engagement
func (h *ReportHandler) CustomerEngagement(c *fiber.Ctx) error {
	out, err := h.uc.CustomerEngagement(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
