package models

import (
	"time"

	"gorm.io/gorm"
)

// ELibraryItem is a catalog entry; Author here is free text, not a foreign key.
type ELibraryItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`

	Author       string  `gorm:"not null" json:"author"`
	Title        string  `gorm:"not null" json:"title"`
	Organization *string `json:"organization"`
}

func (ELibraryItem) TableName() string { return "e_library_items" }
