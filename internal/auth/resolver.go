package auth

import "github.com/gofiber/fiber/v2"

// Resolver turns an inbound request into a verified identity or anonymous.
type Resolver struct {
	tokens  *TokenService
	cookies *CookieManager
	logger  Logger
}

// NewResolver builds the identity resolver.
func NewResolver(tokens *TokenService, cookies *CookieManager, logger Logger) *Resolver {
	if logger == nil {
		logger = defLogger{}
	}
	return &Resolver{
		tokens:  tokens,
		cookies: cookies,
		logger:  logger,
	}
}

// Resolve extracts the carried token, verifies it, and returns the
// identity, or nil for anonymous. Verification failures of any kind are
// deliberately swallowed: a corrupted or expired cookie degrades to "not
// authenticated" and must never produce a request error.
func (r *Resolver) Resolve(c *fiber.Ctx) *Identity {
	raw := r.cookies.Extract(c)
	if raw == "" {
		return nil
	}

	claims, err := r.tokens.Validate(raw)
	if err != nil {
		r.logger.Debug("session verification failed, treating as anonymous", "error", err)
		return nil
	}

	identity := IdentityFromClaims(claims)
	return &identity
}
