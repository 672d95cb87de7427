package sql

import (
	"fmt"
	"herbal/internal/entity/common"
	"strings"

	"gorm.io/gorm"
)

var errNotInitialised = fmt.Errorf("repository not initialised")

// likeEscaper escapes LIKE wildcards; '!' is the escape character.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new repository instance
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ready() error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	return nil
}

// containsPattern builds a LIKE pattern matching s anywhere. Case folding
// is left to the database (LOWER on both sides) so column and pattern are
// folded by the same rules.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// calculatePagination calculates pagination metrics
func (r *GormRepository) calculatePagination(totalCount int64, page, pageSize int) *common.Meta {
	if pageSize <= 0 {
		pageSize = 20
	}
	if page <= 0 {
		page = 1
	}

	return &common.Meta{
		Total:    totalCount,
		Page:     int64(page),
		PageSize: int64(pageSize),
	}
}
