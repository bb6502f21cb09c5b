package hasher

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes bcrypt учитывает только первые 72 байта пароля.
const MaxPasswordBytes = 72

type Bcrypt struct {
	cost int
}

// New cost <= 0 означает bcrypt.DefaultCost.
func New(cost int) *Bcrypt {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash обрезает пароль до MaxPasswordBytes, так же делает Compare.
func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hash), nil
}

// Compare возвращает false без ошибки, если пароль просто не совпал.
func (b *Bcrypt) Compare(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), truncate(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("bcrypt compare: %w", err)
	}
}

func truncate(password string) []byte {
	raw := []byte(password)
	if len(raw) > MaxPasswordBytes {
		return raw[:MaxPasswordBytes]
	}
	return raw
}
