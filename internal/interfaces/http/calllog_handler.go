package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/callcrm-api/internal/application/calllog"
	"github.com/jhoicas/callcrm-api/internal/application/dto"
	"github.com/jhoicas/callcrm-api/internal/application/followup"
)

// CallLogHandler maneja las peticiones HTTP de registros de llamada.
type CallLogHandler struct {
	uc        *calllog.UseCase
	followups *followup.UseCase
}

// NewCallLogHandler construye el handler.
func NewCallLogHandler(uc *calllog.UseCase, followups *followup.UseCase) *CallLogHandler {
	return &CallLogHandler{uc: uc, followups: followups}
}

// Create POST /api/call-logs
func (h *CallLogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCallLogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List GET /api/call-logs con filtros y paginación.
func (h *CallLogHandler) List(c *fiber.Ctx) error {
	var q dto.ListCallLogsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("query inválido"))
	}
	out, err := h.uc.List(GetActor(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// MyLogs GET /api/call-logs/my-logs
func (h *CallLogHandler) MyLogs(c *fiber.Ctx) error {
	out, err := h.uc.MyLogs(GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Stats GET /api/call-logs/stats
func (h *CallLogHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Followups GET /api/call-logs/followups
func (h *CallLogHandler) Followups(c *fiber.Ctx) error {
	out, err := h.followups.Buckets(GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Get GET /api/call-logs/:id
func (h *CallLogHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id inválido"))
	}
	out, err := h.uc.Get(GetActor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update PUT /api/call-logs/:id
func (h *CallLogHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id inválido"))
	}
	var in dto.UpdateCallLogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Update(GetActor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete DELETE /api/call-logs/:id (solo Admin)
func (h *CallLogHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id inválido"))
	}
	if err := h.uc.Delete(GetActor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("registro eliminado", nil))
}
