package startup

import (
	"fmt"

	"github.com/gamevault/gamevault-backend/internal/game"
	"github.com/gamevault/gamevault-backend/internal/platform/kvstore"
	"github.com/gamevault/gamevault-backend/internal/settings"
	"gorm.io/gorm"
)

// Bootstrap 汇总了应用启动时构造出的核心对象。
// 这些对象在这里显式构造一次，随后按引用传给需要它们的模块。
type Bootstrap struct {
	Store    *game.Store
	Settings *settings.Service
}

// InitializeApplication 是应用首次启动时执行的总入口
func InitializeApplication(db *gorm.DB) (*Bootstrap, error) {
	fmt.Println("开始应用初始化...")

	// 1. 迁移键值槽位的表结构
	if err := kvstore.PrimeDB(db); err != nil {
		return nil, err
	}

	// 2. 加载应用设置
	settingsService, err := settings.NewService(db)
	if err != nil {
		return nil, err
	}

	// 3. 从持久化槽位加载游戏库（空/损坏时自动落回示例数据）
	store, err := game.PrimeStore(db)
	if err != nil {
		return nil, err
	}

	fmt.Println("应用初始化完成！")
	return &Bootstrap{Store: store, Settings: settingsService}, nil
}
