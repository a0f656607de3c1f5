package kvstore

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetValue 从键值表中读取指定键的内容。
// 键不存在时返回空字符串，这是一个合法的默认值，不是错误。
func GetValue(db *gorm.DB, key string) (string, error) {
	var entry Entry
	err := db.Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return entry.Value, nil
}

// SetValue 写入或覆盖指定键的内容。
// 使用GORM的OnConflict子句实现原子的"upsert"操作。
func SetValue(db *gorm.DB, key, value string) error {
	entry := Entry{
		Key:   key,
		Value: value,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}
