package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/callcrm-api/internal/application/dto"
	"github.com/jhoicas/callcrm-api/internal/domain"
)

// respondError mapea errores de dominio a códigos HTTP con la envoltura estándar.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrEditWindowExpired):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDependencyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("error interno"))
	}
}
