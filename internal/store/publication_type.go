package store

import (
	"context"

	"github.com/registry-dev/registry/internal/models"
	"gorm.io/gorm"
)

type PublicationTypeStore struct {
	db *gorm.DB
}

func NewPublicationTypeStore(db *gorm.DB) *PublicationTypeStore {
	return &PublicationTypeStore{db: db}
}

func (s *PublicationTypeStore) List(ctx context.Context) ([]models.PublicationType, error) {
	types := []models.PublicationType{}
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, wrapError(err)
	}
	return types, nil
}

func (s *PublicationTypeStore) Get(ctx context.Context, id uint) (*models.PublicationType, error) {
	var t models.PublicationType
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, wrapError(err)
	}
	return &t, nil
}
