package app

import (
	"context"
	"net/http"
	"time"

	"dispatch/internal/gateway/fcm"
	"dispatch/internal/handlers/kafka-consumer/push_requested"
	"dispatch/internal/handlers/tasks/blacklist_cleanup"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/order_handle"
	"dispatch/internal/pkg/phone"
	blacklistRepo "dispatch/internal/repository/blacklist"
	orderRepo "dispatch/internal/repository/order"
	userRepo "dispatch/internal/repository/user"
	accountService "dispatch/internal/service/account"
	notificationService "dispatch/internal/service/notification"
	orderService "dispatch/internal/service/order"
	tokenService "dispatch/internal/service/token"
	"dispatch/pkg/background"
	"dispatch/pkg/hasher"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	goredis "github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
)

const fcmClientTimeout = 10 * time.Second

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideBlacklistRepository(querier *querier.Querier, redisClient *goredis.Client) *blacklistRepo.Repository {
	return blacklistRepo.New(querier, redisClient)
}

func provideHasher(cfg *config.Config) *hasher.Bcrypt {
	return hasher.New(cfg.Auth.BcryptCost)
}

func providePhoneNormalizer(cfg *config.Config) *phone.Normalizer {
	return phone.New(cfg.Auth.PhoneCountryCode)
}

func provideTokenService(cfg *config.Config, store tokenService.Store) *tokenService.Service {
	return tokenService.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, store)
}

func provideAccountService(
	repository accountService.Repository,
	txManager accountService.TxManager,
	hasher accountService.Hasher,
	tokens accountService.TokenIssuer,
	publicIDs accountService.PublicIDFactory,
	phones accountService.PhoneNormalizer,
) *accountService.Account {
	return accountService.New(repository, txManager, hasher, tokens, publicIDs, phones)
}

func provideNotificationService(
	log logger.Logger,
	users notificationService.UserRepository,
	dispatcher notificationService.Dispatcher,
) *notificationService.Service {
	return notificationService.New(log, users, dispatcher)
}

func provideStatusHandlerFactory(notifier orderService.Notifier) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(notifier)
}

func provideOrderService(
	log logger.Logger,
	repository orderService.Repository,
	txManager orderService.TxManager,
	handlers orderService.HandlerFactory,
	cfg *config.Config,
) *orderService.Service {
	return orderService.New(log, repository, txManager, handlers, orderService.Config{
		StrictTransitions: cfg.Orders.StrictTransitions,
		NotifyTimeout:     cfg.Notifier.Timeout,
	})
}

func provideBlacklistCleanupTask(
	log logger.Logger,
	service blacklist_cleanup.Service,
	cfg *config.Config,
) *blacklist_cleanup.BlacklistCleanup {
	return blacklist_cleanup.NewBlacklistCleanup(log, service, cfg.Tasks.BlacklistCleanupInterval)
}

func provideTaskList(
	blacklistCleanupTask *blacklist_cleanup.BlacklistCleanup,
) []background.Task {
	return []background.Task{
		blacklistCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideFCMHTTPClient() *http.Client {
	return &http.Client{Timeout: fcmClientTimeout}
}

func provideFCMGateway(client *http.Client, cfg *config.Config) *fcm.Gateway {
	return fcm.New(client, cfg.Notifier.FCMEndpoint, cfg.Notifier.FCMAPIKey)
}

func providePushRequestedHandler(
	log logger.Logger,
	dispatcher push_requested.Dispatcher,
	cfg *config.Config,
) *push_requested.Handler {
	return push_requested.New(log, dispatcher, cfg.Kafka.Handlers.PushRequested.ProcessTimeout)
}

// NewFCMGateway для прямой доставки в cmd/service (NOTIFIER_MODE=direct).
func NewFCMGateway(cfg *config.Config) *fcm.Gateway {
	return provideFCMGateway(provideFCMHTTPClient(), cfg)
}
