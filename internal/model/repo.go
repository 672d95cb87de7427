package model

import (
	"context"
	"herbal/internal/entity/common"
	"herbal/internal/entity/db"
	"herbal/internal/entity/dto"
	"time"
)

// Repository 定义数据库操作接口
type Repository interface {
	// 用户管理
	CreateUser(ctx context.Context, user *db.User) error
	UpdateUser(ctx context.Context, id uint, updates db.UserUpdates) error
	GetUserByID(ctx context.Context, id uint) (*db.User, error)
	GetUserByUsername(ctx context.Context, username string) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	ListUsers(ctx context.Context, params *dto.UserQuery) ([]db.User, *common.Meta, error)
	CountUsers(ctx context.Context) (int64, error)

	// 分类
	ListCategories(ctx context.Context, includePending bool) ([]db.Category, error)
	GetCategory(ctx context.Context, id uint) (*db.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*db.Category, error)
	CreateCategory(ctx context.Context, category *db.Category) error
	FindCategoriesByIDs(ctx context.Context, ids []uint) ([]db.Category, error)
	CountCategories(ctx context.Context) (int64, error)

	// 植物与审核
	CreatePlant(ctx context.Context, plant *db.Plant) error
	GetPlant(ctx context.Context, id uint) (*db.Plant, error)
	SearchPlants(ctx context.Context, params *dto.PlantQuery) ([]db.Plant, error)
	CountPlants(ctx context.Context, params *dto.PlantQuery) (int64, error)
	ApprovePlant(ctx context.Context, id, approverID uint, at time.Time) (*db.Plant, error)
	RejectPlant(ctx context.Context, id uint, reason string) error

	// 识别记录
	CreateIdentification(ctx context.Context, record *db.PlantIdentification, matchScientificName string) error
	ListRecentIdentifications(ctx context.Context, limit int) ([]db.PlantIdentification, error)
	CountIdentificationsByUser(ctx context.Context, userID uint) (int64, error)
}
