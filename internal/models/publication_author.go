package models

import "gorm.io/gorm"

// PublicationAuthor links a publication to an author with a citation position.
// Rows are append-only: replacing a publication's author list soft-deletes the
// current links and inserts a fresh set.
type PublicationAuthor struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`

	PublicationID uint `gorm:"not null;index" json:"publicationId"`
	AuthorID      uint `gorm:"not null;index" json:"authorId"`
	Order         int  `gorm:"column:author_order;not null" json:"order"`

	// Relationships
	Author Author `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"author"`
}
