//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fcm_put_test
package fcm_put

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
	UpdateDeviceID(ctx context.Context, userID int64, deviceID string) error
}
