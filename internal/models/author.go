package models

import (
	"time"

	"gorm.io/gorm"
)

type Author struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`

	FullName string  `gorm:"not null" json:"fullName"`
	Email    *string `json:"email"`
	Orcid    *string `gorm:"uniqueIndex" json:"orcid"`
}
