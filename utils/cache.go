// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"calmfix/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// ChatCacheClient backs the Redis chat store.
	ChatCacheClient *redis.Client
)

// InitChatCache initializes the Redis client for chat conversations (using REDIS_CHAT_DB).
func InitChatCache() {
	ChatCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ChatCacheClient.Ping(ctx).Result()
	if err != nil {
		GetLogger().Fatal("failed to connect to Redis (chat)",
			zap.String("addr", config.AppConfig.RedisAddr),
			zap.Int("db", config.AppConfig.RedisChatDB),
			zap.Error(err),
		)
	}
}

// GetChatCacheClient returns the Redis client for chat conversations.
func GetChatCacheClient() *redis.Client {
	if ChatCacheClient == nil {
		InitChatCache()
	}
	return ChatCacheClient
}
