package sql

import (
	"context"
	"fmt"
	"herbal/internal/entity/db"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateIdentification stores an identification record. When
// matchScientificName is set, the first plant (by id) whose scientific name
// contains it is linked as the suggested plant.
func (r *GormRepository) CreateIdentification(ctx context.Context, record *db.PlantIdentification, matchScientificName string) error {
	if err := r.ready(); err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("identification record is nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var match *db.Plant
		if name := strings.TrimSpace(matchScientificName); name != "" {
			var plants []db.Plant
			err := preloadPlant(tx).
				Where("LOWER(plants.scientific_name) LIKE LOWER(?) ESCAPE '!'", containsPattern(name)).
				Order("plants.id ASC").
				Limit(1).
				Find(&plants).Error
			if err != nil {
				return err
			}
			if len(plants) > 0 {
				match = &plants[0]
				record.SuggestedPlantID = &match.ID
			}
		}

		record.SuggestedPlant = nil
		if err := tx.Omit(clause.Associations).Create(record).Error; err != nil {
			return err
		}
		record.SuggestedPlant = match
		return nil
	})
}

// ListRecentIdentifications returns the newest identification records.
func (r *GormRepository) ListRecentIdentifications(ctx context.Context, limit int) ([]db.PlantIdentification, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 5
	}

	var records []db.PlantIdentification
	err := r.db.WithContext(ctx).
		Preload("SuggestedPlant").
		Preload("SuggestedPlant.Categories").
		Preload("SuggestedPlant.CommonNames", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("plant_common_names.position ASC")
		}).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountIdentificationsByUser counts identification records owned by userID.
func (r *GormRepository) CountIdentificationsByUser(ctx context.Context, userID uint) (int64, error) {
	if err := r.ready(); err != nil {
		return 0, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&db.PlantIdentification{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
