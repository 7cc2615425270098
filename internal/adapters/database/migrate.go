package database

import (
	"gorm.io/gorm"
	"tripplanner.app/pkg/errors"
)

// Migrate creates or updates the users and trips tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserModel{}, &TripModel{}); err != nil {
		return errors.NewDatabaseError("failed to migrate database", err)
	}
	return nil
}
