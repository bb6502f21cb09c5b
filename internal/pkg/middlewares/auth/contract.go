//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"
	"net/http"

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

type Gate interface {
	Authenticate(ctx context.Context, token string) (*entities.Session, error)
}

// Handler обработчик защищенного маршрута: сессия передается явно.
type Handler interface {
	ServeAuthenticated(w http.ResponseWriter, r *http.Request, session entities.Session)
}
