package database

import (
	"fmt"
	"sync"
)

// statusManager 负责线程安全地管理和提供缓存的健康状态。
// 缓存不可用时，依赖它的查询（Steam ID解析缓存、AI元数据缓存）
// 会直接跳过缓存，退化为每次都请求外部服务。
type statusManager struct {
	mu             sync.RWMutex
	isRedisHealthy bool
}

// 全局的状态管理器实例，默认不健康，直到InitRedis成功
var globalStatus = &statusManager{}

// IsRedisHealthy 返回当前Redis缓存是否可用。
// 缓存未开启时RDB为nil，同样视为不可用。
func IsRedisHealthy() bool {
	if RDB == nil {
		return false
	}
	globalStatus.mu.RLock()
	defer globalStatus.mu.RUnlock()
	return globalStatus.isRedisHealthy
}

// setRedisHealth 用于线程安全地更新健康状态。
func setRedisHealth(isHealthy bool) {
	globalStatus.mu.Lock()
	defer globalStatus.mu.Unlock()

	// 只有当状态发生变化时才打印日志
	if globalStatus.isRedisHealthy != isHealthy {
		globalStatus.isRedisHealthy = isHealthy
		if isHealthy {
			fmt.Println("健康检查: Redis缓存状态已更新为 [可用]")
		} else {
			fmt.Println("健康检查警告: Redis缓存状态已更新为 [不可用]")
		}
	}
}

// UpdateRedisHealth 由健康检查器调用，更新缓存的可用状态。
func UpdateRedisHealth(isHealthy bool) {
	setRedisHealth(isHealthy)
}
