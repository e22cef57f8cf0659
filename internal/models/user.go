package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`

	Name string `gorm:"not null" json:"name"`

	// Relationships
	Emails []Email `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"emails"`
	Phones []Phone `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"phones"`
}

type Email struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`

	UserID uint   `gorm:"not null;index" json:"userId"`
	Email  string `gorm:"not null" json:"email"`
}

type Phone struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`

	UserID uint   `gorm:"not null;index" json:"userId"`
	Phone  string `gorm:"not null" json:"phone"`
}
