package models

import (
	"time"

	"gorm.io/gorm"
)

type Project struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`

	StartDate   time.Time  `gorm:"not null" json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `gorm:"not null" json:"description"`
	WebsiteURL  *string    `json:"websiteUrl"`
	TypeID      uint       `gorm:"not null;index" json:"typeId"`

	// Relationships
	Type ProjectType `gorm:"foreignKey:TypeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"type"`
}
