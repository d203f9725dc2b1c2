package metawall

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// TokenService issues and verifies the self-contained credentials the auth
// gate and the account handlers rely on. Implementations must be safe for
// concurrent use: verification is a pure function of the token and the
// immutable signing secret.
type TokenService interface {
	Issue(userID string) (string, error)
	IssueWithClaims(claims *TokenClaims, ttl time.Duration) (string, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenServiceImpl implements the TokenService interface
type TokenServiceImpl struct {
	signingKey      []byte
	tokenExpiration time.Duration
	issuer          string
	logger          Logger
}

// NewTokenService creates a new TokenService instance. The signing key is
// process-wide configuration established at startup and never mutated;
// rotating it invalidates every previously issued token.
func NewTokenService(signingKey []byte, tokenExpiration time.Duration, issuer string, logger Logger) TokenService {
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenServiceImpl{
		signingKey:      signingKey,
		tokenExpiration: tokenExpiration,
		issuer:          issuer,
		logger:          logger,
	}
}

// Issue creates a token asserting the given account id with the default TTL.
func (ts *TokenServiceImpl) Issue(userID string) (string, error) {
	return ts.IssueWithClaims(&TokenClaims{UID: userID}, 0)
}

// IssueWithClaims serializes the claims plus an expiry of now+ttl, signs the
// payload, and returns the compact token string. A zero ttl uses the service
// default.
func (ts *TokenServiceImpl) IssueWithClaims(claims *TokenClaims, ttl time.Duration) (string, error) {
	if claims == nil {
		return "", errors.New("claims must not be nil", errors.CategoryInternal)
	}

	if ttl == 0 {
		ttl = ts.tokenExpiration
	}

	now := time.Now()
	subject := claims.RegisteredClaims.Subject
	if subject == "" {
		subject = claims.UID
	}

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    ts.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign JWT")
	}

	return signedString, nil
}

// Validate parses a token string, re-computes the signature, and checks the
// validity window. Signature and expiry are validated together: a token with
// a valid signature but a past expiry reports ErrTokenExpired, not a
// signature failure.
func (ts *TokenServiceImpl) Validate(tokenString string) (*TokenClaims, error) {
	parserOptions := make([]jwt.ParserOption, 0, 2)
	parserOptions = append(parserOptions, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if ts.issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(ts.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("TokenService validate encountered unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, parserOptions...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenInvalidSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}

	ts.logger.Error("TokenService validate could not decode claims")
	return nil, ErrTokenMalformed
}
