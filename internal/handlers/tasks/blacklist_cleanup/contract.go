//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=blacklist_cleanup_test
package blacklist_cleanup

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CleanupExpired(ctx context.Context) (int64, error)
}
