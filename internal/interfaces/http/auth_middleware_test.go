package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/callcrm-api/internal/domain/entity"
	apphttp "github.com/jhoicas/callcrm-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/callcrm-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "callcrm-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware
// (y opcionalmente RequireAdmin) y un handler que expone el actor.
func buildTestApp(adminOnly bool) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}
	if adminOnly {
		handlers = append(handlers, apphttp.RequireAdmin())
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		actor := apphttp.GetActor(c)
		return c.JSON(fiber.Map{"employeeId": actor.ID, "role": actor.Role})
	})
	app.Get("/protected", handlers...)
	return app
}

func tokenFor(t *testing.T, employeeID int64, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, employeeID, "test@example.com", role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeActor(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, tokenFor(t, 2, entity.RoleAgent))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(2), body["employeeId"])
	assert.Equal(t, entity.RoleAgent, body["role"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildTestApp(false)

	for _, header := range []string{
		"Bearer token.invalido.aqui",
		"Basic dXNlcjpwYXNz",
		"Bearer ",
	} {
		resp := doRequest(t, app, header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header: %q", header)
		resp.Body.Close()
	}
}

func TestAuthMiddleware_FirmaInvalida_Retorna401(t *testing.T) {
	app := buildTestApp(false)
	tok, err := pkgjwt.Generate("otro-secreto", 2, "test@example.com", entity.RoleAgent, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_AdminAccede(t *testing.T) {
	app := buildTestApp(true)
	resp := doRequest(t, app, tokenFor(t, 1, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"Admin debe poder acceder a rutas restringidas")
}

func TestRequireAdmin_AgentBloqueado(t *testing.T) {
	app := buildTestApp(true)
	resp := doRequest(t, app, tokenFor(t, 2, entity.RoleAgent))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"Agent no debe poder acceder a rutas solo-Admin")
}
