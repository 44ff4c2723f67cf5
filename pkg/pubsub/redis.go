package pubsub

import (
	"context"
	"fmt"

	"github.com/Alwanly/firebird-track/pkg/logger"
	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type redisPublisher struct {
	client *redis.Client
	logger *logger.CanonicalLogger
}

func NewRedisPublisher(cfg RedisConfig, log *logger.CanonicalLogger) (Publisher, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	log.Info("redis client initialized", logger.String("addr", addr))

	return newRedisPublisher(client, log), nil
}

func newRedisPublisher(client *redis.Client, log *logger.CanonicalLogger) *redisPublisher {
	return &redisPublisher{client: client, logger: log}
}

// Publish publishes a message to a Redis channel
func (r *redisPublisher) Publish(ctx context.Context, channel string, message string) error {
	if err := r.client.Publish(ctx, channel, message).Err(); err != nil {
		r.logger.WithError(err).Error("failed to publish message to redis", logger.String("channel", channel))
		return err
	}
	return nil
}

// Ping checks if Redis connection is healthy
func (r *redisPublisher) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisPublisher) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.WithError(err).Error("failed to close redis client")
		return err
	}
	return nil
}
