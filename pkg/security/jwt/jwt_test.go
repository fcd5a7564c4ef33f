package jwt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employer-hub/pkg/auth"
)

const testSecret = "test-secret"

func testUser() auth.User {
	return auth.User{ID: uuid.New(), Name: "Ann", Email: "ann@x.com"}
}

func newGuardedApp(secret, issuer string) *fiber.App {
	app := fiber.New()
	app.Get("/ping", NewAuthMiddleware(secret, issuer), func(c *fiber.Ctx) error {
		claims := ClaimsFrom(c)
		return c.SendString(claims.Email)
	})
	return app
}

func doPing(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGenerateAndVerify_RoundTrip(t *testing.T) {
	gen := NewGenerator(testSecret, "employer-hub", time.Hour)
	user := testUser()
	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	app := newGuardedApp(testSecret, "employer-hub")
	resp := doPing(t, app, "Bearer "+token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, user.Email, string(body), "decoded claims carry the login email")
}

func TestMiddleware_AcceptsBareToken(t *testing.T) {
	gen := NewGenerator(testSecret, "employer-hub", time.Hour)
	token, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	app := newGuardedApp(testSecret, "employer-hub")
	resp := doPing(t, app, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddleware_MissingHeader(t *testing.T) {
	app := newGuardedApp(testSecret, "employer-hub")
	resp := doPing(t, app, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_MalformedToken(t *testing.T) {
	app := newGuardedApp(testSecret, "employer-hub")
	resp := doPing(t, app, "Bearer not.a.token")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_WrongSecret(t *testing.T) {
	gen := NewGenerator("other-secret", "employer-hub", time.Hour)
	token, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	app := newGuardedApp(testSecret, "employer-hub")
	resp := doPing(t, app, "Bearer "+token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	gen := NewGenerator(testSecret, "employer-hub", -time.Minute)
	token, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	app := newGuardedApp(testSecret, "employer-hub")
	resp := doPing(t, app, "Bearer "+token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_WrongIssuer(t *testing.T) {
	gen := NewGenerator(testSecret, "someone-else", time.Hour)
	token, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	app := newGuardedApp(testSecret, "employer-hub")
	resp := doPing(t, app, "Bearer "+token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestClaimsFrom_OutsideMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/open", func(c *fiber.Ctx) error {
		assert.Nil(t, ClaimsFrom(c))
		return c.SendStatus(http.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/open", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
