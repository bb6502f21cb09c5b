//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

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

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	ListRiderDeviceIDs(ctx context.Context) ([]string, error)
}

// Dispatcher доставляет push: напрямую в FCM или через очередь.
type Dispatcher interface {
	Send(ctx context.Context, push entities.OrderPush) error
}
