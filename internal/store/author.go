package store

import (
	"context"

	"github.com/registry-dev/registry/internal/models"
	"gorm.io/gorm"
)

type AuthorStore struct {
	db *gorm.DB
}

func NewAuthorStore(db *gorm.DB) *AuthorStore {
	return &AuthorStore{db: db}
}

type AuthorChanges struct {
	FullName *string
	Email    Optional[string]
	Orcid    Optional[string]
}

func (s *AuthorStore) List(ctx context.Context) ([]models.Author, error) {
	authors := []models.Author{}
	if err := s.db.WithContext(ctx).Order("full_name ASC").Find(&authors).Error; err != nil {
		return nil, wrapError(err)
	}
	return authors, nil
}

func (s *AuthorStore) Get(ctx context.Context, id uint, includeDeleted bool) (*models.Author, error) {
	q := s.db.WithContext(ctx)
	if includeDeleted {
		q = q.Unscoped()
	}
	var author models.Author
	if err := q.First(&author, id).Error; err != nil {
		return nil, wrapError(err)
	}
	return &author, nil
}

func (s *AuthorStore) Create(ctx context.Context, author *models.Author) (*models.Author, error) {
	if err := s.db.WithContext(ctx).Create(author).Error; err != nil {
		return nil, wrapError(err)
	}
	return author, nil
}

func (s *AuthorStore) Update(ctx context.Context, id uint, ch AuthorChanges) (*models.Author, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var author models.Author
		if err := tx.First(&author, id).Error; err != nil {
			return wrapError(err)
		}
		updates := map[string]interface{}{}
		if ch.FullName != nil {
			updates["full_name"] = *ch.FullName
		}
		if ch.Email.Set {
			updates["email"] = ch.Email.Value
		}
		if ch.Orcid.Set {
			updates["orcid"] = ch.Orcid.Value
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&author).Updates(updates).Error; err != nil {
			return wrapError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id, false)
}

func (s *AuthorStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var author models.Author
		if err := tx.First(&author, id).Error; err != nil {
			return wrapError(err)
		}
		if err := tx.Delete(&author).Error; err != nil {
			return wrapError(err)
		}
		return nil
	})
}

// CountLive reports how many of the given ids resolve to live authors.
// Callers use it to reject links to missing or soft-deleted authors.
func (s *AuthorStore) CountLive(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Author{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return 0, wrapError(err)
	}
	return n, nil
}
