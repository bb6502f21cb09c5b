package entities

import "time"

type BlacklistedToken struct {
	Token         string
	BlacklistedOn time.Time
	ExpiresAt     time.Time
}

type TokenClaims struct {
	PublicID  int64
	ExpiresAt time.Time
}

// Session аутентифицированный пользователь вместе с токеном запроса.
type Session struct {
	User  User
	Token string
}
