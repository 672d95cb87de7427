package db

import (
	"herbal/internal/entity/common"
	"time"
)

// User 表示持久化的用户账户。用户只会被停用，不会被删除。
type User struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Username     string      `gorm:"column:username;type:varchar(80);uniqueIndex;not null" json:"username"`
	Email        string      `gorm:"column:email;type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role         common.Role `gorm:"column:role;type:varchar(20);index;not null;default:user" json:"role"`
	FirstName    string      `gorm:"column:first_name;type:varchar(50)" json:"first_name"`
	LastName     string      `gorm:"column:last_name;type:varchar(50)" json:"last_name"`
	Avatar       string      `gorm:"column:avatar;type:varchar(200)" json:"avatar"`
	Bio          string      `gorm:"column:bio;type:text" json:"bio"`
	IsActive     bool        `gorm:"column:is_active;not null;default:true" json:"is_active"`
	LastLoginAt  *time.Time  `gorm:"column:last_login" json:"last_login,omitempty"`
}

// TableName 指定表名。
func (User) TableName() string {
	return "users"
}

// FullName returns "first last", falling back to the username.
func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}
