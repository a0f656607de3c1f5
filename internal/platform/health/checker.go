package health

import (
	"context"
	"fmt"
	"time"

	"github.com/gamevault/gamevault-backend/internal/platform/database"
	"github.com/gamevault/gamevault-backend/pkg/lifecycle"
)

const (
	checkInterval = 5 * time.Second
	pingTimeout   = 2 * time.Second
)

// ping 对Redis做一次带超时的探测
func ping() bool {
	ctx, cancel := context.WithTimeout(database.Ctx, pingTimeout)
	defer cancel()
	_, err := database.RDB.Ping(ctx).Result()
	return err == nil
}

// StartRedisHealthCheck 启动后台的缓存健康检查循环。
// 缓存中只有可重新获取的查询结果，恢复可用后不需要任何重建动作，
// 只需把状态翻回来让各处的缓存读写重新生效。
func StartRedisHealthCheck(handle *lifecycle.Handle) {
	defer handle.Close()
	fmt.Println("缓存健康检查器已启动。")

	for {
		if err := handle.Sleep(checkInterval); err != nil {
			fmt.Println("健康检查器: 收到停机信号，正在关闭...")
			return
		}
		database.UpdateRedisHealth(ping())
	}
}
