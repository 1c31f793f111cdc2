package api

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/snapmenu/backend/internal/i18n"
	"github.com/snapmenu/backend/internal/model"
	"github.com/snapmenu/backend/internal/service"
)

// setupTestRouter builds the API over an in-memory database, with the
// analysis delay zeroed and a seeded random source.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Recipe{}))

	searchService := service.NewSearchService(db, nil)
	generationService := service.NewGenerationService(db, nil, nil, rand.New(rand.NewSource(1)), 0)
	ingestService := service.NewIngestService(db, nil, nil)
	recipeHandler := NewRecipeHandler(searchService, generationService, ingestService)

	translator := i18n.NewTranslator(context.Background(), &i18n.MemoryStore{})
	languageHandler := NewLanguageHandler(translator)

	router := gin.New()
	apiGroup := router.Group("/api")
	apiGroup.GET("/health", recipeHandler.Health)
	apiGroup.POST("/analyze-photo", recipeHandler.AnalyzePhoto)
	apiGroup.GET("/recipes", recipeHandler.ListRecipes)
	apiGroup.GET("/search-recipes", recipeHandler.SearchRecipes)
	apiGroup.POST("/add-recipe", recipeHandler.AddRecipe)
	apiGroup.GET("/language", languageHandler.GetLanguage)
	apiGroup.PUT("/language", languageHandler.SetLanguage)

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
