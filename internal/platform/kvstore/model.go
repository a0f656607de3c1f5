package kvstore

import "gorm.io/gorm"

// Entry 定义了本地持久化槽位的键值对表结构。
// 整个游戏库以一个JSON数组的形式存放在单个键下，
// 应用设置和备份快照各自占用独立的键。
type Entry struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model

	// Key 是槽位的唯一键，例如 "gamevault_data"
	Key string `gorm:"uniqueIndex;not null;type:varchar(255)"`

	// Value 存储该键对应的序列化内容
	Value string `gorm:"type:text"`
}
