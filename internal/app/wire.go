//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"dispatch/internal/gateway/fcm"
	"dispatch/internal/handlers/kafka-consumer/push_requested"
	"dispatch/internal/handlers/tasks/blacklist_cleanup"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/order_handle"
	"dispatch/internal/pkg/factory/public_id"
	"dispatch/internal/pkg/phone"
	blacklistRepo "dispatch/internal/repository/blacklist"
	orderRepo "dispatch/internal/repository/order"
	userRepo "dispatch/internal/repository/user"
	accountService "dispatch/internal/service/account"
	authService "dispatch/internal/service/auth"
	notificationService "dispatch/internal/service/notification"
	orderService "dispatch/internal/service/order"
	tokenService "dispatch/internal/service/token"
	"dispatch/pkg/background"
	"dispatch/pkg/hasher"
	"dispatch/pkg/logger"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	goredis "github.com/go-redis/redis/v8"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	Account           *accountService.Account
	Tokens            *tokenService.Service
	Gate              *authService.Gate
	Orders            *orderService.Service
	BackgroundWorkers *background.Worker
}

// InitializeApplication для HTTP сервиса (cmd/service).
// dispatcher выбирается по NOTIFIER_MODE в main.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	dispatcher notificationService.Dispatcher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideUserRepository,
		provideOrderRepository,
		provideBlacklistRepository,

		provideHasher,
		providePhoneNormalizer,
		public_id.New,

		provideTokenService,
		provideAccountService,
		authService.New,
		provideNotificationService,
		provideStatusHandlerFactory,
		provideOrderService,

		provideBlacklistCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(accountService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(accountService.TxManager), new(*tx.Manager)),
		wire.Bind(new(accountService.Hasher), new(*hasher.Bcrypt)),
		wire.Bind(new(accountService.TokenIssuer), new(*tokenService.Service)),
		wire.Bind(new(accountService.PublicIDFactory), new(*public_id.Factory)),
		wire.Bind(new(accountService.PhoneNormalizer), new(*phone.Normalizer)),

		wire.Bind(new(tokenService.Store), new(*blacklistRepo.Repository)),

		wire.Bind(new(authService.TokenService), new(*tokenService.Service)),
		wire.Bind(new(authService.UserRepository), new(*userRepo.Repository)),

		wire.Bind(new(notificationService.UserRepository), new(*userRepo.Repository)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.Notifier), new(*notificationService.Service)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Bind(new(blacklist_cleanup.Service), new(*tokenService.Service)),
	)
	return &Application{}, nil
}

type WorkerApp struct {
	Handler *push_requested.Handler
}

// InitializeWorkerApp для Kafka воркера (cmd/worker-push-requested)
func InitializeWorkerApp(
	log logger.Logger,
	cfg *config.Config,
) (*WorkerApp, error) {
	wire.Build(
		provideFCMHTTPClient,
		provideFCMGateway,
		providePushRequestedHandler,

		wire.Bind(new(push_requested.Dispatcher), new(*fcm.Gateway)),

		wire.Struct(new(WorkerApp), "*"),
	)
	return nil, nil
}
