package redis

import (
	"context"
	"time"

	"student-wellness-system/config"

	goredis "github.com/redis/go-redis/v9"
)

var Client *goredis.Client

func Init() {
	cfg := config.Get()
	Client = goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// ConsumeOnce marks a token id as used. Returns false when the id was
// already consumed, so confirmation links are single-use. With no redis
// configured the check degrades to always-allowed; the token TTL still
// bounds the window.
func ConsumeOnce(ctx context.Context, key string, ttl time.Duration) bool {
	if Client == nil {
		return true
	}
	ok, err := Client.SetNX(ctx, "confirm:"+key, 1, ttl).Result()
	if err != nil {
		return true
	}
	return ok
}
