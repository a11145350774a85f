package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/taskflow/internal/auth"
)

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	return nil
}

func TestCookieManager_Attach(t *testing.T) {
	manager := auth.NewCookieManager(false, auth.TokenTTL)

	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		manager.Attach(c, "the-token")
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
	require.NoError(t, err)

	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie)

	assert.Equal(t, "the-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 604800, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestCookieManager_AttachSecureInProduction(t *testing.T) {
	manager := auth.NewCookieManager(true, auth.TokenTTL)

	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		manager.Attach(c, "the-token")
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
	require.NoError(t, err)

	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}

func TestCookieManager_ClearThenExtract(t *testing.T) {
	manager := auth.NewCookieManager(false, auth.TokenTTL)

	app := fiber.New()
	app.Post("/logout", func(c *fiber.Ctx) error {
		manager.Clear(c)
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/extract", func(c *fiber.Ctx) error {
		return c.SendString(manager.Extract(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/logout", nil), -1)
	require.NoError(t, err)

	cleared := sessionCookie(t, resp)
	require.NotNil(t, cleared)

	// Attributes must match Attach exactly so browsers replace the cookie
	// instead of keeping a stale copy next to the cleared one. Removal is
	// signaled by the empty value and an Expires in the past; the transport
	// drops non-positive Max-Age values from the header entirely.
	assert.Empty(t, cleared.Value)
	assert.Equal(t, "/", cleared.Path)
	assert.True(t, cleared.HttpOnly)
	assert.True(t, cleared.Expires.Before(time.Now()), "cleared cookie must already be expired")
	assert.Equal(t, http.SameSiteLaxMode, cleared.SameSite)

	// A client that applied the cleared cookie carries no token anymore.
	req := httptest.NewRequest(http.MethodGet, "/extract", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: cleared.Value})

	resp, err = app.Test(req, -1)
	require.NoError(t, err)

	body := make([]byte, 16)
	n, _ := resp.Body.Read(body)
	assert.Zero(t, n, "extract after clear should yield absent")
}

func TestCookieManager_ExtractAbsent(t *testing.T) {
	manager := auth.NewCookieManager(false, auth.TokenTTL)

	app := fiber.New()
	app.Get("/extract", func(c *fiber.Ctx) error {
		if manager.Extract(c) == "" {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/extract", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
