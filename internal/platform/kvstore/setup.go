package kvstore

import (
	"fmt"

	"gorm.io/gorm"
)

// PrimeDB 负责初始化键值槽位的数据库表结构
func PrimeDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("无法迁移键值表: %w", err)
	}
	fmt.Println("键值存储表迁移成功。")
	return nil
}
