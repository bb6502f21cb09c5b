package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/service/account"
)

type Gate struct {
	tokens TokenService
	users  UserRepository
}

func New(tokens TokenService, users UserRepository) *Gate {
	return &Gate{
		tokens: tokens,
		users:  users,
	}
}

// Authenticate проверяет токен в фиксированном порядке: наличие, черный список,
// подпись и срок, владелец, статус аккаунта. Ошибки декодирования возвращаются
// как есть из TokenService.
func (g *Gate) Authenticate(ctx context.Context, token string) (*entities.Session, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	revoked, err := g.tokens.IsRevoked(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if revoked {
		return nil, ErrRevokedToken
	}

	claims, err := g.tokens.Decode(token)
	if err != nil {
		return nil, err
	}

	user, err := g.users.GetByPublicID(ctx, claims.PublicID)
	if err != nil {
		if errors.Is(err, account.ErrUserNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("authenticate: load user: %w", err)
	}

	switch user.Status {
	case entities.UserDeactivated:
		return nil, ErrAccountDeactivated
	case entities.UserPending:
		return nil, ErrAccountPending
	}

	return &entities.Session{
		User:  *user,
		Token: token,
	}, nil
}

// ExtractBearer достает токен из заголовка "Bearer <token>".
// Схема не проверяется, берется второе слово.
func ExtractBearer(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
