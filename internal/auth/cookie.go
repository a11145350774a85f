package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the fixed name of the session cookie.
const CookieName = "auth_token"

// CookieManager owns the session cookie attribute policy. Attach and Clear
// must emit identical name/path/security flags or browsers keep a stale
// cookie instance alongside the cleared one.
type CookieManager struct {
	secure bool
	ttl    time.Duration
	now    func() time.Time
}

// NewCookieManager builds the session carrier. secure should be true in
// production environments only; the cookie lifetime follows the token TTL.
func NewCookieManager(secure bool, ttl time.Duration) *CookieManager {
	if ttl <= 0 {
		ttl = TokenTTL
	}
	return &CookieManager{
		secure: secure,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Attach binds the token to the client via the session cookie.
func (m *CookieManager) Attach(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		Expires:  m.now().Add(m.ttl),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Clear removes the session cookie: same name, path, and flags with an
// empty value and an immediate expiry.
func (m *CookieManager) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  m.now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Extract reads the raw token from the request cookie. It does not
// validate; that is the resolver's job through the token service. An empty
// string means no session cookie was carried.
func (m *CookieManager) Extract(c *fiber.Ctx) string {
	return c.Cookies(CookieName)
}
