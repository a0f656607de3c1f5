package game

import (
	"gorm.io/gorm"
)

// PrimeStore 创建游戏库存储并从持久化槽位完成首次加载
func PrimeStore(db *gorm.DB) (*Store, error) {
	store := NewStore(db)
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}
