package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

var identityCtxKey = &contextKey{"identity"}

type contextKey struct {
	name string
}

// identityLocalsKey is where the guard stores the identity on the fiber
// request context.
const identityLocalsKey = "auth.identity"

// WithContext sets the verified identity in the given context
func WithContext(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, identity)
}

// FromContext finds the identity from the context.
func FromContext(ctx context.Context) (*Identity, bool) {
	raw, ok := ctx.Value(identityCtxKey).(*Identity)
	if !ok || raw == nil {
		return nil, false
	}
	return raw, true
}

// SetIdentity attaches the identity to the fiber request context. Only the
// access guard should call this.
func SetIdentity(c *fiber.Ctx, identity *Identity) {
	c.Locals(identityLocalsKey, identity)
	c.SetUserContext(WithContext(c.UserContext(), identity))
}

// GetIdentity extracts the verified identity injected by the access guard.
func GetIdentity(c *fiber.Ctx) (*Identity, bool) {
	raw, ok := c.Locals(identityLocalsKey).(*Identity)
	if !ok || raw == nil {
		return nil, false
	}
	return raw, true
}
