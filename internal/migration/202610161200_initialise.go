package migration

import (
	"github.com/PayRam/go-jobly/models"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

var Initialise = &gormigrate.Migration{
	ID: "202610161200-jb-118204",
	Migrate: func(db *gorm.DB) error {
		return db.AutoMigrate(&models.Company{}, &models.Job{}, &models.User{}, &models.Application{})
	},
	Rollback: func(db *gorm.DB) error {
		return db.Migrator().DropTable(&models.Application{}, &models.Job{}, &models.User{}, &models.Company{})
	},
}
