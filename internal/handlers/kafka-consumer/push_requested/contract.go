//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=push_requested_test
package push_requested

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Dispatcher interface {
	Send(ctx context.Context, push entities.OrderPush) error
}
