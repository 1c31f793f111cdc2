package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/snapmenu/backend/internal/model"
)

// Migrate brings the schema up to date. The single recipes table carries
// everything, so GORM auto-migration covers both drivers.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
