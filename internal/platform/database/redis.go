package database

import (
	"context"
	"fmt"

	"github.com/gamevault/gamevault-backend/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

// RDB 是全局的Redis客户端实例，仅在缓存开启时非nil
var RDB *redis.Client

// Ctx 是一个全局的上下文，用于Redis操作
var Ctx = context.Background()

// InitRedis 初始化与Redis缓存的连接
// 缓存是可选组件：连接失败只会降级为无缓存运行，不会阻止应用启动
func InitRedis(cfg config.CacheConfig) {
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 使用Ping命令来测试连接是否成功
	_, err := RDB.Ping(Ctx).Result()
	if err != nil {
		fmt.Printf("无法连接到Redis缓存: %v，将以无缓存模式运行\n", err)
		setRedisHealth(false)
		return
	}

	setRedisHealth(true)
	fmt.Println("Redis 缓存连接成功！")
}
