package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benihku_backend/internals/configs"
	"benihku_backend/internals/constants"
)

const testSecret = "rahasia-test"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func newTestApp(t *testing.T, extra ...fiber.Handler) *fiber.App {
	t.Helper()
	configs.JWTSecret = testSecret

	app := fiber.New()
	handlers := []fiber.Handler{AuthMiddleware()}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"role":    c.Locals("userRole"),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func validClaims(role string) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": uuid.NewString(),
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_BadSignature(t *testing.T) {
	app := newTestApp(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims(constants.RoleIjo))
	s, err := token.SignedString([]byte("secret-lain"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+s)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	app := newTestApp(t)

	claims := validClaims(constants.RoleIjo)
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MissingRoleClaim(t *testing.T) {
	app := newTestApp(t)

	claims := jwt.MapClaims{
		"user_id": uuid.NewString(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims(constants.RoleUltra)))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_SubClaimFallback(t *testing.T) {
	app := newTestApp(t)

	claims := jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": constants.RoleAbu,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, validClaims(constants.RoleIjo))})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoleMiddleware_Gating(t *testing.T) {
	gate := OnlyRolesSlice(constants.RoleErrorUltra("test"), constants.UltraAndAbove)

	cases := []struct {
		role string
		want int
	}{
		{constants.RoleAbu, fiber.StatusForbidden},
		{constants.RoleIjo, fiber.StatusForbidden},
		{constants.RoleUltra, fiber.StatusOK},
		{constants.RoleRaden, fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			app := newTestApp(t, gate)
			req := httptest.NewRequest("GET", "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims(tc.role)))
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
