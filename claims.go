package metawall

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the read side of a verified token: the resolved subject
// identity plus the extra claims the application embeds.
type AuthClaims interface {
	Subject() string
	UserID() string
	VerificationCode() string
	Expires() time.Time
	IssuedAt() time.Time
}

// TokenClaims is the concrete claims payload carried by every issued token.
// UID duplicates the registered subject for older clients that read it from
// the body; Code carries the one-time verification code used by the password
// recovery flow.
type TokenClaims struct {
	jwt.RegisteredClaims
	UID  string `json:"uid,omitempty"`
	Code string `json:"code,omitempty"`
}

var _ AuthClaims = (*TokenClaims)(nil)

// Subject returns the subject claim
func (c *TokenClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the account primary key the token asserts.
func (c *TokenClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.Subject()
}

// VerificationCode returns the embedded one-time code, if any.
func (c *TokenClaims) VerificationCode() string {
	return c.Code
}

// Expires returns the expiration time
func (c *TokenClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *TokenClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
