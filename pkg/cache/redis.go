package cache

import (
	"context"
	"time"

	"hotel-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to Redis using the loaded config.
// Returns nil when the server is unreachable; callers must treat a nil
// client as "caching disabled" and keep serving from the database.
func NewRedisClient(config utils.RedisConfig, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, hotel cache disabled", zap.Error(err))
		return nil
	}

	logger.Info("Redis connected successfully", zap.String("addr", config.Addr))
	return client
}
