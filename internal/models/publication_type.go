package models

import "gorm.io/gorm"

// PublicationType is reference data: no write routes exist, rows are seeded at boot.
type PublicationType struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`

	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
