package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/inventory-pro/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/inventory-pro/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUsername  = "admin"
	testIssuer    = "inventory-pro-test"
	testExpMin    = 60
)

// buildMiddlewareApp aplicación mínima: AuthMiddleware + handler que devuelve los locals.
func buildMiddlewareApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"username": apphttp.GetUsername(c),
				"role":     apphttp.GetRole(c),
			})
		},
	)
	return app
}

func bearer(t *testing.T, secret string, expMin int) string {
	t.Helper()
	tok, _, err := pkgjwt.Generate(secret, testUsername, pkgjwt.RoleOperator, testIssuer, expMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) (*http.Response, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	var out map[string]string
	_ = json.Unmarshal(body, &out)
	return resp, out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValido(t *testing.T) {
	resp, body := doProtected(t, buildMiddlewareApp(), bearer(t, testJWTSecret, testExpMin))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, testUsername, body["username"])
	assert.Equal(t, pkgjwt.RoleOperator, body["role"])
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	resp, body := doProtected(t, buildMiddlewareApp(), "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}

func TestAuthMiddleware_FormatoIncorrecto(t *testing.T) {
	resp, body := doProtected(t, buildMiddlewareApp(), "Token abc")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	resp, body := doProtected(t, buildMiddlewareApp(), bearer(t, "otro-secret", testExpMin))

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestAuthMiddleware_Expirado(t *testing.T) {
	resp, _ := doProtected(t, buildMiddlewareApp(), bearer(t, testJWTSecret, -5))

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
