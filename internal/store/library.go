package store

import (
	"context"

	"github.com/registry-dev/registry/internal/models"
	"gorm.io/gorm"
)

type LibraryStore struct {
	db *gorm.DB
}

func NewLibraryStore(db *gorm.DB) *LibraryStore {
	return &LibraryStore{db: db}
}

type LibraryItemChanges struct {
	Author       *string
	Title        *string
	Organization Optional[string]
}

func (s *LibraryStore) List(ctx context.Context) ([]models.ELibraryItem, error) {
	items := []models.ELibraryItem{}
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&items).Error; err != nil {
		return nil, wrapError(err)
	}
	return items, nil
}

func (s *LibraryStore) Get(ctx context.Context, id uint, includeDeleted bool) (*models.ELibraryItem, error) {
	q := s.db.WithContext(ctx)
	if includeDeleted {
		q = q.Unscoped()
	}
	var item models.ELibraryItem
	if err := q.First(&item, id).Error; err != nil {
		return nil, wrapError(err)
	}
	return &item, nil
}

func (s *LibraryStore) Create(ctx context.Context, item *models.ELibraryItem) (*models.ELibraryItem, error) {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, wrapError(err)
	}
	return item, nil
}

func (s *LibraryStore) Update(ctx context.Context, id uint, ch LibraryItemChanges) (*models.ELibraryItem, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.ELibraryItem
		if err := tx.First(&item, id).Error; err != nil {
			return wrapError(err)
		}
		updates := map[string]interface{}{}
		if ch.Author != nil {
			updates["author"] = *ch.Author
		}
		if ch.Title != nil {
			updates["title"] = *ch.Title
		}
		if ch.Organization.Set {
			updates["organization"] = ch.Organization.Value
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&item).Updates(updates).Error; err != nil {
			return wrapError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id, false)
}

func (s *LibraryStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.ELibraryItem
		if err := tx.First(&item, id).Error; err != nil {
			return wrapError(err)
		}
		if err := tx.Delete(&item).Error; err != nil {
			return wrapError(err)
		}
		return nil
	})
}
