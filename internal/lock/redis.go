package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const redisRetryInterval = 50 * time.Millisecond

// Deletes the key only when it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// NewRedisClient connects to url (redis://...) and checks the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// Redis is a Locker shared by every process pointed at the same server.
// The TTL bounds how long a crashed holder keeps the key.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewRedis(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (l *Redis) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := "lock:" + key
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire %s: %w", redisKey, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(redisRetryInterval):
		}
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err(); err != nil && err != redis.Nil {
			l.logger.Warn().Err(err).Str("key", redisKey).Msg("lock release failed")
		}
	}, nil
}
