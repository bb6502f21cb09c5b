//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"dispatch/internal/entities"
)

type TokenService interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
	Decode(token string) (entities.TokenClaims, error)
}

type UserRepository interface {
	GetByPublicID(ctx context.Context, publicID int64) (*entities.User, error)
}
