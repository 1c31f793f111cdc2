package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapmenu/backend/config"
	"github.com/snapmenu/backend/internal/model"
)

func TestNewSQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", DBPath: ":memory:"}

	db, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, db)

	assert.True(t, db.Migrator().HasTable(&model.Recipe{}))
}

func TestNewUnsupportedDriver(t *testing.T) {
	cfg := &config.Config{DBDriver: "oracle"}

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNewRedisClientDisabled(t *testing.T) {
	client, err := NewRedisClient(&config.Config{})
	assert.NoError(t, err)
	assert.Nil(t, client)
}
