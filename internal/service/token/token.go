package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type claims struct {
	PublicID int64 `json:"public_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
	store  Store
	now    func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(secret string, ttl time.Duration, store Store, opts ...Option) *Service {
	s := &Service{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue подписывает HS256 токен на публичный id пользователя.
// jti делает токены уникальными даже при выдаче в одну и ту же секунду.
func (s *Service) Issue(user entities.User) (string, error) {
	now := s.now()
	c := claims{
		PublicID: user.PublicID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) Decode(token string) (entities.TokenClaims, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.TokenClaims{}, ErrExpiredToken
		}
		return entities.TokenClaims{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	if c.PublicID == 0 {
		return entities.TokenClaims{}, ErrMalformedToken
	}

	return entities.TokenClaims{
		PublicID:  c.PublicID,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

// Revoke помещает токен в черный список до конца срока его действия.
// Если срок прочитать нельзя, запись живет ttl от текущего момента.
func (s *Service) Revoke(ctx context.Context, token string) error {
	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)
	if decoded, err := s.Decode(token); err == nil {
		expiresAt = decoded.ExpiresAt.UTC()
	}

	inserted, err := s.store.Insert(ctx, entities.BlacklistedToken{
		Token:         token,
		BlacklistedOn: now,
		ExpiresAt:     expiresAt,
	})
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	if !inserted {
		return ErrAlreadyRevoked
	}
	return nil
}

func (s *Service) IsRevoked(ctx context.Context, token string) (bool, error) {
	revoked, err := s.store.Exists(ctx, token)
	if err != nil {
		return false, fmt.Errorf("check blacklist: %w", err)
	}
	return revoked, nil
}

func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	deleted, err := s.store.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("cleanup blacklist: %w", err)
	}
	return deleted, nil
}
