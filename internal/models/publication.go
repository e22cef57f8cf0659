package models

import (
	"time"

	"gorm.io/gorm"
)

type Publication struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`

	Year        int     `gorm:"not null" json:"year"`
	Title       string  `gorm:"not null" json:"title"`
	Description *string `json:"description"`
	TypeID      uint    `gorm:"not null;index" json:"typeId"`

	// Relationships
	Type    PublicationType     `gorm:"foreignKey:TypeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"type"`
	Authors []PublicationAuthor `gorm:"foreignKey:PublicationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"authors"`
}
