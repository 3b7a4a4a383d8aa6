package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Фиксированный префикс ключа — аналог ключа access_token в localStorage
const redisKeyPrefix = "rewear:session:"

// Сессии живут столько же, сколько токен бэкенда
const sessionTTL = 72 * time.Hour

// RedisStore хранит снимки сессий в Redis, переживая перезапуск шлюза
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore подключается к Redis по URL и проверяет соединение
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	opt.PoolSize = 10
	opt.MinIdleConns = 3

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, bool) {
	val, err := s.client.Get(ctx, redisKeyPrefix+token).Result()
	if err != nil {
		return nil, false
	}
	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, false
	}
	return &sess, true
}

func (s *RedisStore) Put(ctx context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return nil
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKeyPrefix+sess.Token, data, sessionTTL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisKeyPrefix+token).Err()
}

// Close закрывает соединение с Redis
func (s *RedisStore) Close() error {
	return s.client.Close()
}
