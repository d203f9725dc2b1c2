package metawall

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// Text codes carried by structured errors so API clients can branch on a
// stable identifier instead of the human-readable message.
const (
	TextCodeNotLoggedIn      = "NOT_LOGGED_IN"
	TextCodeTokenExpired     = "TOKEN_EXPIRED"
	TextCodeTokenInvalid     = "TOKEN_INVALID"
	TextCodeTokenMalformed   = "TOKEN_MALFORMED"
	TextCodeInvalidCreds     = "INVALID_CREDENTIALS"
	TextCodeEmailTaken       = "EMAIL_TAKEN"
	TextCodeUserNotFound     = "USER_NOT_FOUND"
	TextCodeBadVerifyCode    = "BAD_VERIFICATION_CODE"
	TextCodePasswordMismatch = "PASSWORD_MISMATCH"
)

// ErrNotLoggedIn is returned by the auth gate when no bearer token is present.
var ErrNotLoggedIn = errors.New("你尚未登入！", errors.CategoryAuth).
	WithCode(fiber.StatusUnauthorized).
	WithTextCode(TextCodeNotLoggedIn)

// ErrTokenExpired is returned when a token carries a valid signature but its
// validity window has passed. Same status class as the other auth failures,
// distinct message.
var ErrTokenExpired = errors.New("登入憑證已過期，請重新登入", errors.CategoryAuth).
	WithCode(fiber.StatusUnauthorized).
	WithTextCode(TextCodeTokenExpired)

// ErrTokenInvalidSignature is returned when the embedded signature does not
// match the payload.
var ErrTokenInvalidSignature = errors.New("無效的憑證，請重新登入", errors.CategoryAuth).
	WithCode(fiber.StatusUnauthorized).
	WithTextCode(TextCodeTokenInvalid)

// ErrTokenMalformed is returned for tokens that do not decode at all.
var ErrTokenMalformed = errors.New("憑證格式錯誤，請重新登入", errors.CategoryAuth).
	WithCode(fiber.StatusUnauthorized).
	WithTextCode(TextCodeTokenMalformed)

// ErrMismatchedHashAndPassword is the fail-closed credential mismatch. A
// malformed stored hash surfaces as this same error so verification never
// leaks whether the record or the password was at fault.
var ErrMismatchedHashAndPassword = errors.New("密碼錯誤", errors.CategoryAuth).
	WithCode(fiber.StatusBadRequest).
	WithTextCode(TextCodeInvalidCreds)

var ErrEmailTaken = errors.New("此 Email 已註冊", errors.CategoryConflict).
	WithCode(fiber.StatusBadRequest).
	WithTextCode(TextCodeEmailTaken)

var ErrUserNotFound = errors.New("此使用者不存在", errors.CategoryNotFound).
	WithCode(fiber.StatusNotFound).
	WithTextCode(TextCodeUserNotFound)

var ErrBadVerificationCode = errors.New("驗證碼錯誤", errors.CategoryValidation).
	WithCode(fiber.StatusBadRequest).
	WithTextCode(TextCodeBadVerifyCode)

var ErrPasswordMismatch = errors.New("密碼不一致！", errors.CategoryValidation).
	WithCode(fiber.StatusBadRequest).
	WithTextCode(TextCodePasswordMismatch)

// ErrNoEmptyString rejects empty input to the credential hasher.
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryBadInput).
	WithCode(fiber.StatusBadRequest)

// NotFoundError builds a 404 business failure with an explicit message.
func NotFoundError(message string) *errors.Error {
	return errors.New(message, errors.CategoryNotFound).
		WithCode(fiber.StatusNotFound)
}

// BadRequestError builds a 400 business failure with an explicit message.
func BadRequestError(message string) *errors.Error {
	return errors.New(message, errors.CategoryBadInput).
		WithCode(fiber.StatusBadRequest)
}

// ValidationError builds a field-attributed validation failure. The gate
// reports the first failing rule only, so a single field/reason pair is all
// the envelope ever carries.
func ValidationError(field, reason string) *errors.Error {
	return errors.New(reason, errors.CategoryValidation).
		WithCode(fiber.StatusBadRequest).
		WithMetadata(map[string]any{"field": field})
}

// statusFromCategory backstops errors raised without an explicit HTTP code.
func statusFromCategory(category errors.Category) int {
	switch category {
	case errors.CategoryValidation, errors.CategoryBadInput, errors.CategoryConflict:
		return fiber.StatusBadRequest
	case errors.CategoryAuth, errors.CategoryAuthz:
		return fiber.StatusUnauthorized
	case errors.CategoryNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
