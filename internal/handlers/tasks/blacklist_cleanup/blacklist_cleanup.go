package blacklist_cleanup

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type BlacklistCleanup struct {
	log      handlerLogger
	service  Service
	interval time.Duration
}

func NewBlacklistCleanup(log handlerLogger, service Service, interval time.Duration) *BlacklistCleanup {
	return &BlacklistCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (b *BlacklistCleanup) TTL() time.Duration {
	return b.interval
}

func (b *BlacklistCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	rowsAffected, err := b.service.CleanupExpired(ctxWithTimeout)

	if rowsAffected > 0 {
		b.log.With(
			logger.NewField("expired_tokens", rowsAffected),
		).Info("blacklist cleanup")
	}

	return err
}

func (b *BlacklistCleanup) Info() string {
	return "blacklist cleanup"
}
