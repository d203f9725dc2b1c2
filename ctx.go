package metawall

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// ClaimsContextKey is the fiber.Ctx locals key the auth gate stores verified
// claims under.
const ClaimsContextKey = "user"

type contextKey struct {
	name string
}

var claimsCtxKey = &contextKey{"claims"}

// WithClaimsContext sets the AuthClaims in the given context
func WithClaimsContext(ctx context.Context, claims AuthClaims) context.Context {
	return context.WithValue(ctx, claimsCtxKey, claims)
}

// GetClaims extracts the AuthClaims from the standard context
func GetClaims(ctx context.Context) (AuthClaims, bool) {
	raw, ok := ctx.Value(claimsCtxKey).(AuthClaims)
	return raw, ok
}

// CurrentClaims extracts the verified claims the auth gate attached to the
// request. The second return is false on ungated or rejected requests.
func CurrentClaims(c *fiber.Ctx) (AuthClaims, bool) {
	raw := c.Locals(ClaimsContextKey)
	if raw == nil {
		return nil, false
	}
	claims, ok := raw.(AuthClaims)
	return claims, ok
}
