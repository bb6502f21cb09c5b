package blacklist

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"

	"github.com/jackc/pgx/v5"
)

const keyPrefix = "blacklist:"

// Repository хранит отозванные токены в postgres, redis используется как кэш
// положительных ответов. Отсутствие ключа в redis ничего не значит, источник истины postgres.
type Repository struct {
	querier Querier
	cache   Cache
	now     func() time.Time
}

func New(querier Querier, cache Cache) *Repository {
	return &Repository{
		querier: querier,
		cache:   cache,
		now:     time.Now,
	}
}

// Insert возвращает false, если токен уже был в черном списке.
func (r *Repository) Insert(ctx context.Context, token entities.BlacklistedToken) (bool, error) {
	query := `INSERT INTO blacklist_tokens (token, blacklisted_on, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO NOTHING`

	tag, err := r.querier.Exec(ctx, query, token.Token, token.BlacklistedOn, token.ExpiresAt)
	if err != nil {
		return false, fmt.Errorf("unexpected blacklist repository insert error: %w", err)
	}

	// источник истины postgres, кэш догонит при следующем Exists
	_ = r.remember(ctx, token.Token, token.ExpiresAt)

	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Exists(ctx context.Context, token string) (bool, error) {
	hits, cacheErr := r.cache.Exists(ctx, cacheKey(token)).Result()
	if cacheErr == nil && hits > 0 {
		return true, nil
	}

	query := `SELECT expires_at FROM blacklist_tokens WHERE token = $1`

	var expiresAt time.Time
	err := r.querier.QueryRow(ctx, query, token).Scan(&expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, errors.Join(
			fmt.Errorf("unexpected blacklist repository exists error: %w", err),
			cacheErr,
		)
	}

	// промах кэша, прогреваем; ошибка redis не меняет ответ
	_ = r.remember(ctx, token, expiresAt)

	return true, nil
}

// DeleteExpired удаляет записи о токенах, срок действия которых уже истек:
// такие токены отклоняются при декодировании и без черного списка.
func (r *Repository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM blacklist_tokens WHERE expires_at < $1`

	tag, err := r.querier.Exec(ctx, query, r.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("unexpected blacklist repository delete expired error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) remember(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	return r.cache.Set(ctx, cacheKey(token), 1, ttl).Err()
}

func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return keyPrefix + hex.EncodeToString(sum[:])
}
