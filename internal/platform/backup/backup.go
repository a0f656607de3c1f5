package backup

import (
	"fmt"
	"time"

	"github.com/gamevault/gamevault-backend/internal/game"
	"github.com/gamevault/gamevault-backend/internal/platform/kvstore"
	"github.com/gamevault/gamevault-backend/pkg/lifecycle"
	"gorm.io/gorm"
)

// StartBackupScheduler 启动一个后台Goroutine来定期备份游戏库。
// 每次把完整的库JSON写入备份键，作为主数据键意外损坏时的最后防线。
func StartBackupScheduler(handle *lifecycle.Handle, store *game.Store, db *gorm.DB, interval time.Duration) {
	defer handle.Close()
	fmt.Println("游戏库备份调度器已启动。")

	for {
		// 使用可中断的休眠来代替ticker，
		// 使循环可以在收到停机信号时立刻从休眠中唤醒并退出。
		if err := handle.Sleep(interval); err != nil {
			fmt.Println("备份调度器: 休眠被中断，正在关闭...")
			return
		}

		if err := SnapshotLibrary(store, db); err != nil {
			fmt.Printf("备份调度器错误: %v\n", err)
		} else {
			fmt.Println("备份调度器: 游戏库快照备份成功。")
		}
	}
}

// SnapshotLibrary 把当前游戏库写入备份键，并记录备份时间。
func SnapshotLibrary(store *game.Store, db *gorm.DB) error {
	data, err := store.SerializedLibrary()
	if err != nil {
		return fmt.Errorf("序列化游戏库失败: %w", err)
	}
	if err := kvstore.SetValue(db, kvstore.BackupKey, data); err != nil {
		return fmt.Errorf("写入备份失败: %w", err)
	}
	if err := kvstore.SetValue(db, kvstore.BackupTimeKey, time.Now().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("记录备份时间失败: %w", err)
	}
	return nil
}
