//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=recovery_test
package recovery

import "dispatch/pkg/logger"

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
