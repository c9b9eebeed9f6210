package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// RedisStorage is a redis client connected to a redis server living in this process.
// Nothing outlives Close.
type RedisStorage struct {
	Connection *redis.Client

	server *miniredis.Miniredis
}

func NewRedisStorage(ctx context.Context) (*RedisStorage, error) {
	server, err := miniredis.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start in-memory Redis: %w", err)
	}

	conn := redis.NewClient(&redis.Options{
		Addr: server.Addr(),
	})

	if _, err = conn.Ping(ctx).Result(); err != nil {
		server.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStorage{Connection: conn, server: server}, nil
}

func (that *RedisStorage) Close() error {
	err := that.Connection.Close()
	that.server.Close()

	if err != nil && !errors.Is(err, redis.ErrClosed) {
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}

	return nil
}
