package sql

import (
	"context"
	"fmt"
	"herbal/internal/entity/db"
	"strings"

	"gorm.io/gorm"
)

// ListCategories returns all categories with the number of plants in each.
// Pending plants are counted only when includePending is set.
func (r *GormRepository) ListCategories(ctx context.Context, includePending bool) ([]db.Category, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Model(&db.Category{}).
		Select("categories.*, COUNT(plants.id) as plant_count").
		Joins("LEFT JOIN plant_categories ON plant_categories.category_id = categories.id")
	if includePending {
		query = query.Joins("LEFT JOIN plants ON plants.id = plant_categories.plant_id")
	} else {
		query = query.Joins("LEFT JOIN plants ON plants.id = plant_categories.plant_id AND plants.is_approved = ?", true)
	}

	var categories []db.Category
	if err := query.Group("categories.id").Order("categories.name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory loads a category by ID.
func (r *GormRepository) GetCategory(ctx context.Context, id uint) (*db.Category, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var category db.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategoryByName loads a category by its unique name.
func (r *GormRepository) GetCategoryByName(ctx context.Context, name string) (*db.Category, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var category db.Category
	if err := r.db.WithContext(ctx).Where("name = ?", trimmed).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory inserts a new category.
func (r *GormRepository) CreateCategory(ctx context.Context, category *db.Category) error {
	if err := r.ready(); err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("category is nil")
	}
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return fmt.Errorf("category name is empty")
	}
	return r.db.WithContext(ctx).Create(category).Error
}

// FindCategoriesByIDs fetches categories by ids. Unknown ids are skipped.
func (r *GormRepository) FindCategoriesByIDs(ctx context.Context, ids []uint) ([]db.Category, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return []db.Category{}, nil
	}

	var categories []db.Category
	if err := r.db.WithContext(ctx).Where("id IN ?", unique).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CountCategories returns the number of categories.
func (r *GormRepository) CountCategories(ctx context.Context) (int64, error) {
	if err := r.ready(); err != nil {
		return 0, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&db.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func uniqueIDs(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
