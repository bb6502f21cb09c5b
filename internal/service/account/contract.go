//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_test
package account

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userModifyEntity entities.UserModify) (int64, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByPhone(ctx context.Context, phoneNo string) (*entities.User, error)
	GetByNumberPlate(ctx context.Context, numberPlate string) (*entities.User, error)
	Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

type TokenIssuer interface {
	Issue(user entities.User) (string, error)
}

type PublicIDFactory interface {
	Next() int64
}

type PhoneNormalizer interface {
	Normalize(raw string) string
	Local(normalized string) string
}
