package db

import "time"

// Category 表示植物分类。
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// 只读统计列，由查询中的 COUNT 填充
	PlantCount int64 `gorm:"->;-:migration" json:"plant_count"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// PlantCategory 植物与分类的关联表。
type PlantCategory struct {
	PlantID    uint `gorm:"primaryKey" json:"plant_id"`
	CategoryID uint `gorm:"primaryKey" json:"category_id"`
}

// TableName 指定表名
func (PlantCategory) TableName() string {
	return "plant_categories"
}
