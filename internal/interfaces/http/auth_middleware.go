package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/callcrm-api/internal/application/dto"
	"github.com/jhoicas/callcrm-api/internal/domain/policy"
	"github.com/jhoicas/callcrm-api/pkg/jwt"
)

// Locals keys para los datos del empleado autenticado en Fiber.
const (
	LocalEmployeeID = "employee_id"
	LocalEmail      = "email"
	LocalRole       = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae empleado y rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token vacío"))
		}
		employeeID, email, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token inválido o expirado"))
		}
		c.Locals(LocalEmployeeID, employeeID)
		c.Locals(LocalEmail, email)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireAdmin corta con 403 si el empleado autenticado no es Admin.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetActor(c).IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("requiere rol Admin"))
		}
		return c.Next()
	}
}

// GetActor devuelve el actor autenticado (después del middleware de auth).
func GetActor(c *fiber.Ctx) policy.Actor {
	var a policy.Actor
	if v, ok := c.Locals(LocalEmployeeID).(int64); ok {
		a.ID = v
	}
	if v, ok := c.Locals(LocalRole).(string); ok {
		a.Role = v
	}
	return a
}
