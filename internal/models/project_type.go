package models

import "gorm.io/gorm"

// ProjectType is reference data: no write routes exist, rows are seeded at boot.
type ProjectType struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`

	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
