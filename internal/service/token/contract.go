//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=token_test
package token

import (
	"context"

	"dispatch/internal/entities"
)

type Store interface {
	Insert(ctx context.Context, token entities.BlacklistedToken) (bool, error)
	Exists(ctx context.Context, token string) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}
