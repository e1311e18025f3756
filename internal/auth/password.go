package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(b), err
}

// VerifyPassword reports whether plain matches hash. A malformed hash is a
// mismatch, not an error.
func VerifyPassword(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrHashTooShort):
		return false, nil
	}
	var (
		prefix  bcrypt.InvalidHashPrefixError
		version bcrypt.HashVersionTooNewError
		cost    bcrypt.InvalidCostError
	)
	if errors.As(err, &prefix) || errors.As(err, &version) || errors.As(err, &cost) {
		return false, nil
	}
	return false, err
}
