package store

import (
	"context"
	"strings"

	"github.com/registry-dev/registry/internal/models"
	"gorm.io/gorm"
)

type ProjectTypeStore struct {
	db *gorm.DB
}

func NewProjectTypeStore(db *gorm.DB) *ProjectTypeStore {
	return &ProjectTypeStore{db: db}
}

func (s *ProjectTypeStore) List(ctx context.Context) ([]models.ProjectType, error) {
	types := []models.ProjectType{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&types).Error; err != nil {
		return nil, wrapError(err)
	}
	return types, nil
}

func (s *ProjectTypeStore) Get(ctx context.Context, id uint) (*models.ProjectType, error) {
	var t models.ProjectType
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, wrapError(err)
	}
	return &t, nil
}

// GetByName resolves a type by its unique name, trimmed.
func (s *ProjectTypeStore) GetByName(ctx context.Context, name string) (*models.ProjectType, error) {
	var t models.ProjectType
	if err := s.db.WithContext(ctx).Where("name = ?", strings.TrimSpace(name)).First(&t).Error; err != nil {
		return nil, wrapError(err)
	}
	return &t, nil
}
