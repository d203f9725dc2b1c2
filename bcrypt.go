package metawall

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is fixed for every credential the application stores. The cost and
// salt are embedded in the bcrypt output, so verification needs no side
// channel.
const hashCost = 12

// HashPassword will generate a password hash
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	return string(h), err
}

// ComparePasswordAndHash will validate the given cleartext password matches
// the hashed password. Any failure, including a malformed stored hash, is
// reported as a credential mismatch: the comparison fails closed rather than
// surfacing the underlying bcrypt error to the caller.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatchedHashAndPassword
	}
	return nil
}
