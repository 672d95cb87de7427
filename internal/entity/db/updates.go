package db

import (
	"herbal/internal/entity/common"
	"time"
)

// UserUpdates 用户更新字段
type UserUpdates struct {
	Role        *common.Role
	IsActive    *bool
	FirstName   *string
	LastName    *string
	LastLoginAt *time.Time
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u UserUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Role != nil {
		updates["role"] = *u.Role
	}
	if u.IsActive != nil {
		updates["is_active"] = *u.IsActive
	}
	if u.FirstName != nil {
		updates["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		updates["last_name"] = *u.LastName
	}
	if u.LastLoginAt != nil {
		updates["last_login"] = *u.LastLoginAt
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u UserUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
