package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"github.com/tu-usuario/distrifarma/pkg/jwt"
)

const testSecret = "secret-de-test"

func newProtectedApp(t *testing.T, extra ...fiber.Handler) *fiber.App {
	t.Helper()
	app := fiber.New()
	handlers := append([]fiber.Handler{AuthMiddleware(testSecret)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":     GetUserID(c),
			"hospital_id": GetHospitalID(c),
			"role":        GetRole(c),
		})
	})
	app.Get("/protegida", handlers...)
	return app
}

func bearerFor(t *testing.T, userID, hospitalID, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, userID, hospitalID, role, "distrifarma", 15)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthMiddleware_SinToken(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/protegida", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenMalformado(t *testing.T) {
	app := newProtectedApp(t)

	for _, header := range []string{"abc", "Bearer ", "Basic abc", "Bearer token-basura"} {
		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := newProtectedApp(t)

	token, err := jwt.Generate("otro-secreto", "user-1", "", entity.RoleAdmin, "distrifarma", 15)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", bearerFor(t, "user-1", "hospital-1", entity.RoleHospitalManager))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	app := newProtectedApp(t, RequireRole(entity.RoleAdmin))

	// Rol permitido.
	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", bearerFor(t, "user-1", "", entity.RoleAdmin))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Rol insuficiente.
	req = httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", bearerFor(t, "user-2", "", entity.RoleDriver))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
