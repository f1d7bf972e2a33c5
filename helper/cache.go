package helper

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"case_empire/config"
)

var Redis *redis.Client

// InitRedis tạo client dùng chung cho cache và pub/sub
func InitRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Redis = redis.NewClient(&redis.Options{Addr: addr})
}

func cacheKey(table string) string {
	return "cache:" + table
}

// CacheGetJSON đọc cache, trả về false nếu miss hoặc redis lỗi
func CacheGetJSON(table string, dest any) bool {
	if Redis == nil {
		return false
	}
	raw, err := Redis.Get(context.Background(), cacheKey(table)).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

func CacheSetJSON(table string, value any, ttl time.Duration) {
	if Redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := Redis.Set(context.Background(), cacheKey(table), raw, ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", table, err)
	}
}

// InvalidateTable xoá cache theo tên bảng, dùng làm listener cho Submitter
func InvalidateTable(table string) {
	if Redis == nil {
		return
	}
	if err := Redis.Del(context.Background(), cacheKey(table), cacheKey("stats")).Err(); err != nil {
		log.Printf("cache invalidate %s: %v", table, err)
	}
}
