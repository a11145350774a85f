package auth

import "github.com/gofiber/fiber/v2"

// Guard messages are fixed; no internal detail leaks to clients.
const (
	msgNotAuthenticated = "Not authenticated"
	msgAccessDenied     = "Access denied"
)

// Guard is the route level access policy. Authentication is always
// evaluated before authorization: a request with no verified identity
// receives 401, never 403, even on admin-only routes.
type Guard struct {
	resolver *Resolver
}

// NewGuard builds the access guard around an identity resolver.
func NewGuard(resolver *Resolver) *Guard {
	return &Guard{resolver: resolver}
}

// RequireAuth rejects anonymous requests with 401 and injects the verified
// identity into the request context for downstream handlers.
func (g *Guard) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := g.resolver.Resolve(c)
		if identity == nil {
			return unauthenticated(c)
		}

		SetIdentity(c, identity)
		return c.Next()
	}
}

// RequireRole rejects identities whose role does not exactly match the
// required one with 403. There is no hierarchy between roles. When used
// without RequireAuth earlier in the chain it resolves the identity itself
// so the 401-before-403 ordering still holds.
func (g *Guard) RequireRole(role Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := GetIdentity(c)
		if !ok {
			identity = g.resolver.Resolve(c)
			if identity == nil {
				return unauthenticated(c)
			}
			SetIdentity(c, identity)
		}

		if identity.Role != role {
			return forbidden(c)
		}

		return c.Next()
	}
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": msgNotAuthenticated,
	})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"success": false,
		"message": msgAccessDenied,
	})
}
