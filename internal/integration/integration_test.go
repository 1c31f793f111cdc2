package integration

import (
	"context"
	"fmt"
	"math/rand"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/snapmenu/backend/internal/model"
	"github.com/snapmenu/backend/internal/service"
)

// setupPostgres starts a disposable Postgres container and returns a
// migrated GORM handle. Skips when docker is unavailable.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "testuser",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections"),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=testuser password=testpass dbname=testdb sslmode=disable",
		host, port.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Recipe{}))

	return db
}

func TestIngestAndSearchOnPostgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	ingest := service.NewIngestService(db, nil, nil)
	search := service.NewSearchService(db, nil)

	id, err := ingest.Ingest(ctx, service.Submission{
		Title:        "Mandi",
		Ingredients:  service.TextOrList{Items: []string{"rice", "lamb"}, IsList: true},
		Instructions: service.TextOrList{Items: []string{"season lamb", "steam over rice"}, IsList: true},
		DietaryTags:  []string{"hearty"},
	})
	require.NoError(t, err)
	require.Positive(t, id)

	recipes, err := search.Search(ctx, "lamb")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Mandi", recipes[0].RecipeTitle)
	assert.Equal(t, "rice, lamb", recipes[0].Ingredients)

	recent, err := search.Recent(ctx)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestGenerationPersistsOnPostgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	generation := service.NewGenerationService(db, nil, nil, rand.New(rand.NewSource(5)), 0)

	result, err := generation.Analyze(ctx, "base64-image", "vegan")
	require.NoError(t, err)
	require.Len(t, result.Recipes, 1)

	var rows []model.Recipe
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "Fresh Garden Salad", rows[0].RecipeTitle)
	assert.Contains(t, rows[0].DietaryTags, "vegan")
}
