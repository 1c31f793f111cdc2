package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/snapmenu/backend/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Recipe{}))
	return db
}

func seedRecipe(t *testing.T, db *gorm.DB, r model.Recipe) model.Recipe {
	t.Helper()

	if r.DietaryTags == "" {
		r.DietaryTags = "[]"
	}
	if r.Instructions == "" {
		r.Instructions = "[]"
	}
	if r.CreatedAt == "" {
		r.CreatedAt = model.Timestamp()
	}
	if r.UpdatedAt == "" {
		r.UpdatedAt = r.CreatedAt
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}
