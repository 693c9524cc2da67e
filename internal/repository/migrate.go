package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every table owned by this
// package. The row models are the single source of truth for columns and
// indexes; cmd binaries and tests call this instead of listing models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&projectModel{},
		&checklistItemModel{},
	)
}
