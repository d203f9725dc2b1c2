package metawall

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// payloadLocalsKey is where the validation gate stores the parsed body for
// the downstream handler.
const payloadLocalsKey = "payload"

// WrapHandler is the async failure adapter: it produces a handler with the
// same contract whose failures, returned or panicked, always reach the
// central error responder. Every business handler must be registered through
// it; successful results pass through untouched.
func WrapHandler(handler fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.New(fmt.Sprintf("%v", r), errors.CategoryInternal).
					WithCode(fiber.StatusInternalServerError).
					WithMetadata(map[string]any{"stack": string(debug.Stack())})
			}
		}()

		return handler(c)
	}
}

// AuthGate extracts and verifies the bearer token, then attaches the
// resolved identity to the request context. Missing, malformed, tampered,
// and expired tokens all reject with 401; only the message differs. The gate
// is stateless: every request re-verifies.
func AuthGate(tokens TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := extractBearerToken(c)
		if err != nil {
			return err
		}

		claims, err := tokens.Validate(raw)
		if err != nil {
			return err
		}

		c.Locals(ClaimsContextKey, claims)
		c.SetUserContext(WithClaimsContext(c.UserContext(), claims))

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", ErrNotLoggedIn
	}

	const scheme = "Bearer "
	if !strings.HasPrefix(header, scheme) {
		return "", ErrNotLoggedIn
	}

	token := strings.TrimSpace(header[len(scheme):])
	if token == "" {
		return "", ErrNotLoggedIn
	}

	return token, nil
}

// ValidateBody is the validation gate. It parses the request body into a
// fresh payload, evaluates the payload's declared rules, and short-circuits
// with a structured failure before the handler runs. On success the payload
// is attached for the handler to pick up via BodyPayload.
func ValidateBody[T Validatable](newPayload func() T) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := newPayload()

		if len(c.Body()) > 0 {
			if err := c.BodyParser(payload); err != nil {
				return errors.Wrap(err, errors.CategoryBadInput, "傳入的資料格式錯誤").
					WithCode(fiber.StatusBadRequest)
			}
		}

		if err := payload.Validate(); err != nil {
			return firstFailure(err)
		}

		c.Locals(payloadLocalsKey, payload)
		return c.Next()
	}
}

// BodyPayload returns the validated payload the gate attached. The zero value
// is returned on ungated routes.
func BodyPayload[T Validatable](c *fiber.Ctx) T {
	payload, _ := c.Locals(payloadLocalsKey).(T)
	return payload
}
