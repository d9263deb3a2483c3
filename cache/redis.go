package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

func ConnectRedis(addr string) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := rdb.Ping(Ctx).Result(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	log.Println("redis connected")
	return rdb
}
