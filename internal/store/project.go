package store

import (
	"context"
	"time"

	"github.com/registry-dev/registry/internal/models"
	"gorm.io/gorm"
)

type ProjectStore struct {
	db *gorm.DB
}

func NewProjectStore(db *gorm.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

type ProjectChanges struct {
	StartDate   *time.Time
	EndDate     Optional[time.Time]
	Description *string
	WebsiteURL  Optional[string]
	TypeID      *uint
}

func (s *ProjectStore) List(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	err := s.db.WithContext(ctx).
		Preload("Type").
		Order("id DESC").
		Find(&projects).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return projects, nil
}

func (s *ProjectStore) ListByType(ctx context.Context, typeID uint) ([]models.Project, error) {
	projects := []models.Project{}
	err := s.db.WithContext(ctx).
		Preload("Type").
		Where("type_id = ?", typeID).
		Order("id DESC").
		Find(&projects).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return projects, nil
}

func (s *ProjectStore) Get(ctx context.Context, id uint, includeDeleted bool) (*models.Project, error) {
	q := s.db.WithContext(ctx)
	if includeDeleted {
		q = q.Unscoped()
	}
	var project models.Project
	if err := q.Preload("Type").First(&project, id).Error; err != nil {
		return nil, wrapError(err)
	}
	return &project, nil
}

func (s *ProjectStore) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	if err := s.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, wrapError(err)
	}
	return s.Get(ctx, project.ID, false)
}

func (s *ProjectStore) Update(ctx context.Context, id uint, ch ProjectChanges) (*models.Project, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			return wrapError(err)
		}
		updates := map[string]interface{}{}
		if ch.StartDate != nil {
			updates["start_date"] = *ch.StartDate
		}
		if ch.EndDate.Set {
			updates["end_date"] = ch.EndDate.Value
		}
		if ch.Description != nil {
			updates["description"] = *ch.Description
		}
		if ch.WebsiteURL.Set {
			updates["website_url"] = ch.WebsiteURL.Value
		}
		if ch.TypeID != nil {
			updates["type_id"] = *ch.TypeID
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&project).Updates(updates).Error; err != nil {
			return wrapError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id, false)
}

func (s *ProjectStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			return wrapError(err)
		}
		if err := tx.Delete(&project).Error; err != nil {
			return wrapError(err)
		}
		return nil
	})
}
