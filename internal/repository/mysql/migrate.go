package mysql

import (
	"gorm.io/gorm"

	"github.com/Guyuepp/feed-engagement/internal/repository/mysql/model"
)

// AutoMigrate creates or updates every table this service owns, including the
// unique index the like store depends on.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(model.All()...)
}
