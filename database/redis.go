// file: database/redis.go
package database

import (
	"DevOlympus/config"
	"context"
	"github.com/redis/go-redis/v9"
	"log"
	"time"
)

var RDB *redis.Client
var Ctx = context.Background()

func InitRedis(cfg config.Config) {
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		PoolSize: 100,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RDB.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	log.Println("Redis connection successfully established.")
}

// InvalidateTeamCaches 清理队伍相关的所有缓存键（报名、状态、缴费写入后调用）
func InvalidateTeamCaches() {
	if RDB == nil {
		return
	}
	keys, err := RDB.Keys(Ctx, "teams:*").Result()
	if err == nil && len(keys) > 0 {
		RDB.Del(Ctx, keys...)
		log.Printf("Cleared %d team cache keys from Redis.", len(keys))
	}
	RDB.Del(Ctx, "event:info")
}
