package metawall

import (
	"fmt"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/go-errors"
)

// Validatable is implemented by request payloads. Validate returns nil or the
// first failing rule as a structured validation failure.
type Validatable interface {
	Validate() error
}

// runRules evaluates field rule sets in declaration order and stops at the
// first failure. The gate reports a single field/reason pair; it does not
// accumulate errors across fields.
func runRules(target any, fields ...*validation.FieldRules) error {
	for _, field := range fields {
		if err := validation.ValidateStruct(target, field); err != nil {
			return firstFailure(err)
		}
	}
	return nil
}

// firstFailure converts an ozzo error into the structured validation failure
// the central responder formats.
func firstFailure(err error) error {
	var richErr *errors.Error
	if errors.As(err, &richErr) {
		return richErr
	}

	if fieldErrs, ok := err.(validation.Errors); ok {
		for field, fieldErr := range fieldErrs {
			return ValidationError(field, fieldErr.Error())
		}
	}

	return ValidationError("", err.Error())
}

// photoURL enforces URL format with an explicit http or https scheme. Empty
// values are left to the Required rule.
func photoURL(value any) error {
	s, ok := value.(string)
	if !ok {
		if sp, isPtr := value.(*string); isPtr && sp != nil {
			s = *sp
		}
	}
	if s == "" {
		return nil
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("大頭照的 URL 格式不正確")
	}

	return nil
}
