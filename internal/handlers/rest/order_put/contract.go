//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_put_test
package order_put

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

type Service interface {
	Accept(ctx context.Context, orderID int64, rider entities.User) (*entities.Order, error)
	MarkPickedUp(ctx context.Context, orderID int64, rider entities.User) (*entities.Order, error)
	Complete(ctx context.Context, orderID int64, rider entities.User) (*entities.Order, error)
}
