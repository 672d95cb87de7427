package sql

import (
	"context"
	"fmt"
	"herbal/internal/entity/db"
	"herbal/internal/entity/dto"
	"strings"
	"time"

	"gorm.io/gorm"
)

const plantSearchClause = "(LOWER(plants.name) LIKE LOWER(?) ESCAPE '!'" +
	" OR LOWER(plants.scientific_name) LIKE LOWER(?) ESCAPE '!'" +
	" OR LOWER(plants.hindi_name) LIKE LOWER(?) ESCAPE '!'" +
	" OR LOWER(plants.ayurvedic_name) LIKE LOWER(?) ESCAPE '!'" +
	" OR EXISTS (SELECT 1 FROM plant_common_names WHERE plant_common_names.plant_id = plants.id" +
	" AND LOWER(plant_common_names.name) LIKE LOWER(?) ESCAPE '!'))"

// CreatePlant inserts a plant together with its common names and category
// links. Categories must already exist.
func (r *GormRepository) CreatePlant(ctx context.Context, plant *db.Plant) error {
	if err := r.ready(); err != nil {
		return err
	}
	if plant == nil {
		return fmt.Errorf("plant is nil")
	}
	if strings.TrimSpace(plant.Name) == "" {
		return fmt.Errorf("plant name is empty")
	}
	if plant.AuthorID == 0 {
		return fmt.Errorf("plant author is required")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Author", "Approver", "Categories.*").Create(plant).Error
	})
}

// GetPlant loads a plant with its author, approver, categories and names.
func (r *GormRepository) GetPlant(ctx context.Context, id uint) (*db.Plant, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var plant db.Plant
	err := preloadPlant(r.db.WithContext(ctx)).
		Preload("Approver").
		First(&plant, id).Error
	if err != nil {
		return nil, err
	}
	return &plant, nil
}

// SearchPlants lists plants matching the query. Non matching category ids
// yield an empty result.
func (r *GormRepository) SearchPlants(ctx context.Context, params *dto.PlantQuery) ([]db.Plant, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		params = &dto.PlantQuery{}
	}

	query := applyPlantFilters(r.db.WithContext(ctx).Model(&db.Plant{}), params)
	if params.NewestFirst {
		query = query.Order("plants.created_at DESC, plants.id DESC")
	} else {
		query = query.Order("plants.created_at ASC, plants.id ASC")
	}
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}

	var plants []db.Plant
	if err := preloadPlant(query).Find(&plants).Error; err != nil {
		return nil, err
	}
	return plants, nil
}

// CountPlants counts plants matching the same filters as SearchPlants.
func (r *GormRepository) CountPlants(ctx context.Context, params *dto.PlantQuery) (int64, error) {
	if err := r.ready(); err != nil {
		return 0, err
	}
	if params == nil {
		params = &dto.PlantQuery{}
	}

	var count int64
	if err := applyPlantFilters(r.db.WithContext(ctx).Model(&db.Plant{}), params).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ApprovePlant marks a plant approved by approverID at the given time.
// Approving an approved plant overwrites approver and timestamp.
func (r *GormRepository) ApprovePlant(ctx context.Context, id, approverID uint, at time.Time) (*db.Plant, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if approverID == 0 {
		return nil, fmt.Errorf("approver is required")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plant db.Plant
		if err := tx.Select("id").First(&plant, id).Error; err != nil {
			return err
		}
		return tx.Model(&db.Plant{}).Where("id = ?", plant.ID).Updates(map[string]interface{}{
			"is_approved": true,
			"approved_by": approverID,
			"approved_at": at,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetPlant(ctx, id)
}

// RejectPlant records the reason and removes the plant with its category
// links and common names in one transaction.
func (r *GormRepository) RejectPlant(ctx context.Context, id uint, reason string) error {
	if err := r.ready(); err != nil {
		return err
	}
	if id == 0 {
		return gorm.ErrRecordNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&db.Plant{}).Where("id = ?", id).Update("rejection_reason", reason)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("plant_id = ?", id).Delete(&db.PlantCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("plant_id = ?", id).Delete(&db.PlantCommonName{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db.Plant{}, id).Error
	})
}

func applyPlantFilters(query *gorm.DB, params *dto.PlantQuery) *gorm.DB {
	switch {
	case params.PendingOnly:
		query = query.Where("plants.is_approved = ?", false)
	case !params.IncludePending:
		query = query.Where("plants.is_approved = ?", true)
	}
	if params.AuthorID > 0 {
		query = query.Where("plants.user_id = ?", params.AuthorID)
	}
	if params.CategoryID > 0 {
		query = query.Joins("JOIN plant_categories ON plant_categories.plant_id = plants.id AND plant_categories.category_id = ?", params.CategoryID)
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		pattern := containsPattern(q)
		query = query.Where(plantSearchClause, pattern, pattern, pattern, pattern, pattern)
	}
	return query
}

func preloadPlant(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Author").
		Preload("Categories", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("categories.name ASC")
		}).
		Preload("CommonNames", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("plant_common_names.position ASC")
		})
}
