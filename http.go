package metawall

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
)

// genericErrorMessage is the only thing a production 500 ever says.
const genericErrorMessage = "An internal server error occurred."

// AuthEnvelope is the success shape of the account endpoints.
type AuthEnvelope struct {
	Status bool   `json:"status"`
	Token  string `json:"token,omitempty"`
	Result any    `json:"result,omitempty"`
}

// DataEnvelope is the success shape of the resource endpoints.
type DataEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorEnvelope is the uniform failure shape.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DebugErrorEnvelope replaces ErrorEnvelope in development configuration.
type DebugErrorEnvelope struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail carries diagnostic detail that must never leave a development
// deployment.
type ErrorDetail struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

func sendAuthToken(c *fiber.Ctx, status int, token string) error {
	return c.Status(status).JSON(AuthEnvelope{Status: true, Token: token})
}

func sendAuthResult(c *fiber.Ctx, status int, result any) error {
	return c.Status(status).JSON(AuthEnvelope{Status: true, Result: result})
}

func sendAuthOK(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(AuthEnvelope{Status: true})
}

func sendResponse(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(DataEnvelope{Success: true, Message: message, Data: data})
}

// NewErrorHandler builds the central error responder: the terminal stage that
// converts every raised failure into the uniform envelope. Declared failures
// keep their status and message; anything undeclared becomes a generic 500.
// Development mode exposes diagnostic detail; production never does.
func NewErrorHandler(development bool, logger Logger) fiber.ErrorHandler {
	if logger == nil {
		logger = defLogger{}
	}

	return func(c *fiber.Ctx, err error) error {
		richErr := asRichError(err)

		status := richErr.Code
		if status == 0 {
			status = statusFromCategory(richErr.Category)
		}

		logger.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"category", richErr.Category,
			"message", richErr.Message,
			"details", print.MaybePrettyJSON(richErr.Metadata),
		)

		if development {
			return c.Status(status).JSON(DebugErrorEnvelope{
				Success: false,
				Error: ErrorDetail{
					Message: richErr.Message,
					Stack:   errStack(richErr),
				},
			})
		}

		message := richErr.Message
		if status >= fiber.StatusInternalServerError {
			message = genericErrorMessage
		}

		return c.Status(status).JSON(ErrorEnvelope{Success: false, Message: message})
	}
}

// NotFoundHandler is the catch-all terminal stage for requests no route
// matched. Equivalent inputs produce byte-identical envelopes.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorEnvelope{
		Success: false,
		Message: "Resource not found",
	})
}

// asRichError normalizes any failure into a structured error. Undeclared
// failures become internal 500s with their detail preserved for logging only.
func asRichError(err error) *errors.Error {
	var richErr *errors.Error
	if errors.As(err, &richErr) {
		return richErr
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return errors.New(fiberErr.Message, errors.CategoryInternal).WithCode(fiberErr.Code)
	}

	return errors.Wrap(err, errors.CategoryInternal, genericErrorMessage).
		WithCode(fiber.StatusInternalServerError)
}

func errStack(richErr *errors.Error) string {
	if richErr.Metadata == nil {
		return ""
	}
	stack, _ := richErr.Metadata["stack"].(string)
	return stack
}
