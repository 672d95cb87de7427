package db

import (
	"herbal/internal/entity/common"
	"time"
)

// PlantIdentification stores one identification attempt. Records are append only.
type PlantIdentification struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	ImageKey          string             `gorm:"column:image_filename;type:varchar(255);not null" json:"image_key"`
	IdentifiedSpecies string             `gorm:"column:identified_species;type:varchar(200)" json:"identified_species"`
	CommonNames       common.StringArray `gorm:"column:common_names;type:json" json:"common_names"`
	Confidence        float64            `gorm:"column:confidence_score" json:"confidence"`
	RawResponse       string             `gorm:"column:plant_id_api_response;type:text" json:"-"`
	UserNotes         string             `gorm:"column:user_notes;type:text" json:"user_notes"`

	SuggestedPlantID *uint  `gorm:"column:suggested_plant_id;index" json:"suggested_plant_id,omitempty"`
	SuggestedPlant   *Plant `gorm:"foreignKey:SuggestedPlantID" json:"-"`

	UserID *uint `gorm:"column:user_id;index" json:"user_id,omitempty"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName 指定表名
func (PlantIdentification) TableName() string {
	return "plant_identifications"
}
