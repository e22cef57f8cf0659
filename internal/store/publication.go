package store

import (
	"context"

	"github.com/registry-dev/registry/internal/models"
	"gorm.io/gorm"
)

type PublicationStore struct {
	db *gorm.DB
}

func NewPublicationStore(db *gorm.DB) *PublicationStore {
	return &PublicationStore{db: db}
}

// AuthorLink is one entry of a publication's ordered author list.
type AuthorLink struct {
	AuthorID uint
	Order    int
}

// PublicationChanges describes a partial update. A nil Authors pointer keeps
// the existing link set; a non-nil pointer (even to an empty slice) replaces
// it wholesale: the live links are soft-deleted and a fresh set is inserted.
type PublicationChanges struct {
	Year        *int
	Title       *string
	Description Optional[string]
	TypeID      *uint
	Authors     *[]AuthorLink
}

func byAuthorOrder(db *gorm.DB) *gorm.DB {
	return db.Order("author_order ASC")
}

func (s *PublicationStore) List(ctx context.Context) ([]models.Publication, error) {
	pubs := []models.Publication{}
	err := s.db.WithContext(ctx).
		Preload("Type").
		Preload("Authors", byAuthorOrder).
		Preload("Authors.Author").
		Order("year DESC, id DESC").
		Find(&pubs).Error
	if err != nil {
		return nil, wrapError(err)
	}
	for i := range pubs {
		normalizePublication(&pubs[i])
	}
	return pubs, nil
}

func (s *PublicationStore) ListByType(ctx context.Context, typeID uint) ([]models.Publication, error) {
	pubs := []models.Publication{}
	err := s.db.WithContext(ctx).
		Preload("Type").
		Preload("Authors", byAuthorOrder).
		Preload("Authors.Author").
		Where("type_id = ?", typeID).
		Order("year DESC, id DESC").
		Find(&pubs).Error
	if err != nil {
		return nil, wrapError(err)
	}
	for i := range pubs {
		normalizePublication(&pubs[i])
	}
	return pubs, nil
}

func (s *PublicationStore) Get(ctx context.Context, id uint, includeDeleted bool) (*models.Publication, error) {
	q := s.db.WithContext(ctx)
	if includeDeleted {
		q = q.Unscoped()
	}
	var pub models.Publication
	err := q.
		Preload("Type").
		Preload("Authors", byAuthorOrder).
		Preload("Authors.Author").
		First(&pub, id).Error
	if err != nil {
		return nil, wrapError(err)
	}
	normalizePublication(&pub)
	return &pub, nil
}

// Create inserts the publication together with its author links. gorm runs
// the association inserts in one transaction, so a failed link insert rolls
// back the publication row too.
func (s *PublicationStore) Create(ctx context.Context, pub *models.Publication, links []AuthorLink) (*models.Publication, error) {
	for _, l := range links {
		pub.Authors = append(pub.Authors, models.PublicationAuthor{
			AuthorID: l.AuthorID,
			Order:    l.Order,
		})
	}
	if err := s.db.WithContext(ctx).Omit("Authors.Author").Create(pub).Error; err != nil {
		return nil, wrapError(err)
	}
	return s.Get(ctx, pub.ID, false)
}

// Update applies field changes and, when ch.Authors is present, replaces the
// whole author link set, all inside a single transaction.
func (s *PublicationStore) Update(ctx context.Context, id uint, ch PublicationChanges) (*models.Publication, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pub models.Publication
		if err := tx.First(&pub, id).Error; err != nil {
			return wrapError(err)
		}
		if ch.Authors != nil {
			if err := tx.Where("publication_id = ?", id).Delete(&models.PublicationAuthor{}).Error; err != nil {
				return wrapError(err)
			}
			for _, l := range *ch.Authors {
				link := models.PublicationAuthor{
					PublicationID: id,
					AuthorID:      l.AuthorID,
					Order:         l.Order,
				}
				if err := tx.Create(&link).Error; err != nil {
					return wrapError(err)
				}
			}
		}
		updates := map[string]interface{}{}
		if ch.Year != nil {
			updates["year"] = *ch.Year
		}
		if ch.Title != nil {
			updates["title"] = *ch.Title
		}
		if ch.Description.Set {
			updates["description"] = ch.Description.Value
		}
		if ch.TypeID != nil {
			updates["type_id"] = *ch.TypeID
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&pub).Updates(updates).Error; err != nil {
			return wrapError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id, false)
}

// Delete soft-deletes the publication and all of its live author links in one
// transaction.
func (s *PublicationStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pub models.Publication
		if err := tx.First(&pub, id).Error; err != nil {
			return wrapError(err)
		}
		if err := tx.Delete(&pub).Error; err != nil {
			return wrapError(err)
		}
		if err := tx.Where("publication_id = ?", id).Delete(&models.PublicationAuthor{}).Error; err != nil {
			return wrapError(err)
		}
		return nil
	})
}

// LiveLinks returns the live author links for a publication, ordered. Used by
// tests and by callers that only need the relationship rows.
func (s *PublicationStore) LiveLinks(ctx context.Context, id uint) ([]models.PublicationAuthor, error) {
	links := []models.PublicationAuthor{}
	err := s.db.WithContext(ctx).
		Where("publication_id = ?", id).
		Order("author_order ASC").
		Find(&links).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return links, nil
}

func normalizePublication(pub *models.Publication) {
	if pub.Authors == nil {
		pub.Authors = []models.PublicationAuthor{}
	}
}
