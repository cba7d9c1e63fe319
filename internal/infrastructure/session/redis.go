package session

import (
	"context"
	"errors"
	"time"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/redis/go-redis/v9"
)

// RedisStore guarda as sessões no Redis, com TTL opcional
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore usa um client já configurado; ttl <= 0 não expira
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisStore{client: client, ttl: ttl}
}

// NewSession grava token -> usuário serializado
func (s *RedisStore) NewSession(ctx context.Context, user entities.User) (string, error) {
	data, err := encode(user)
	if err != nil {
		return "", err
	}
	token := newToken()
	if err := s.client.Set(ctx, key(token), data, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// CurrentUser resolve o token para o usuário
func (s *RedisStore) CurrentUser(ctx context.Context, token string) (entities.User, bool, error) {
	data, err := s.client.Get(ctx, key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.User{}, false, nil
	}
	if err != nil {
		return entities.User{}, false, err
	}
	user, err := decode(data)
	if err != nil {
		return entities.User{}, false, err
	}
	return user, true, nil
}

// Logout remove o token
func (s *RedisStore) Logout(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, key(token)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

func (s *RedisStore) IsAuthenticated(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
