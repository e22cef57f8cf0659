package store

import (
	"context"

	"github.com/registry-dev/registry/internal/models"
	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// UserChanges describes a partial update. A nil Emails/Phones pointer keeps
// the existing child rows; a non-nil pointer (even to an empty slice)
// replaces them wholesale.
type UserChanges struct {
	Name   *string
	Emails *[]string
	Phones *[]string
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := s.db.WithContext(ctx).
		Preload("Emails").
		Preload("Phones").
		Order("id ASC").
		Find(&users).Error
	if err != nil {
		return nil, wrapError(err)
	}
	for i := range users {
		normalizeUser(&users[i])
	}
	return users, nil
}

func (s *UserStore) Get(ctx context.Context, id uint, includeDeleted bool) (*models.User, error) {
	q := s.db.WithContext(ctx)
	if includeDeleted {
		q = q.Unscoped()
	}
	var user models.User
	if err := q.Preload("Emails").Preload("Phones").First(&user, id).Error; err != nil {
		return nil, wrapError(err)
	}
	normalizeUser(&user)
	return &user, nil
}

func (s *UserStore) Create(ctx context.Context, name string, emails, phones []string) (*models.User, error) {
	user := models.User{Name: name}
	for _, e := range emails {
		user.Emails = append(user.Emails, models.Email{Email: e})
	}
	for _, p := range phones {
		user.Phones = append(user.Phones, models.Phone{Phone: p})
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, wrapError(err)
	}
	return s.Get(ctx, user.ID, false)
}

func (s *UserStore) Update(ctx context.Context, id uint, ch UserChanges) (*models.User, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return wrapError(err)
		}
		if ch.Name != nil {
			if err := tx.Model(&user).Update("name", *ch.Name).Error; err != nil {
				return wrapError(err)
			}
		}
		if ch.Emails != nil {
			if err := tx.Where("user_id = ?", id).Delete(&models.Email{}).Error; err != nil {
				return wrapError(err)
			}
			for _, e := range *ch.Emails {
				if err := tx.Create(&models.Email{UserID: id, Email: e}).Error; err != nil {
					return wrapError(err)
				}
			}
		}
		if ch.Phones != nil {
			if err := tx.Where("user_id = ?", id).Delete(&models.Phone{}).Error; err != nil {
				return wrapError(err)
			}
			for _, p := range *ch.Phones {
				if err := tx.Create(&models.Phone{UserID: id, Phone: p}).Error; err != nil {
					return wrapError(err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id, false)
}

func (s *UserStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return wrapError(err)
		}
		if err := tx.Delete(&user).Error; err != nil {
			return wrapError(err)
		}
		return nil
	})
}

func normalizeUser(user *models.User) {
	if user.Emails == nil {
		user.Emails = []models.Email{}
	}
	if user.Phones == nil {
		user.Phones = []models.Phone{}
	}
}
