package db

import (
	"github.com/registry-dev/registry/internal/models"
	"gorm.io/gorm"
)

var defaultProjectTypes = []string{
	"National projects",
	"International projects",
	"Internal projects",
}

var defaultPublicationTypes = []string{
	"Article",
	"Conference paper",
	"Monograph",
	"Report",
}

// SeedTypes inserts the default reference data. The API exposes no write
// routes for types, so the tables are populated here when empty.
func SeedTypes(db *gorm.DB) error {
	var count int64

	if err := db.Model(&models.ProjectType{}).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		for _, name := range defaultProjectTypes {
			if err := db.Create(&models.ProjectType{Name: name}).Error; err != nil {
				return err
			}
		}
	}

	if err := db.Model(&models.PublicationType{}).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		for _, name := range defaultPublicationTypes {
			if err := db.Create(&models.PublicationType{Name: name}).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
