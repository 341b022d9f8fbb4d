package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel 只追加的记录共用字段，写入后不再更新，所以没有 UpdatedAt
// CreatedAt 建索引，按时间统计和清理都走它
type BaseModel struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
