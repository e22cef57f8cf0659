package db

import (
	"github.com/registry-dev/registry/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func Migrate(db *gorm.DB) error {
	entities := []interface{}{
		&models.User{},
		&models.Email{},
		&models.Phone{},
		&models.Author{},
		&models.ProjectType{},
		&models.Project{},
		&models.PublicationType{},
		&models.Publication{},
		&models.PublicationAuthor{},
		&models.ELibraryItem{},
	}

	migrator := db.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := db.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}
