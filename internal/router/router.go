package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/snapmenu/backend/config"
	"github.com/snapmenu/backend/internal/api"
	"github.com/snapmenu/backend/internal/middleware"
)

// SetupRouter configures the application routes. rateLimit may be nil when
// Redis is not configured; it only guards the analysis endpoint.
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	languageHandler *api.LanguageHandler,
	rateLimit gin.HandlerFunc,
) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery())

	// Permissive CORS, the API serves a public frontend with no credentials.
	router.Use(cors.Default())

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", recipeHandler.Health)
		apiGroup.GET("/recipes", recipeHandler.ListRecipes)
		apiGroup.GET("/search-recipes", recipeHandler.SearchRecipes)
		apiGroup.POST("/add-recipe", recipeHandler.AddRecipe)

		apiGroup.GET("/language", languageHandler.GetLanguage)
		apiGroup.PUT("/language", languageHandler.SetLanguage)

		analyze := apiGroup.Group("")
		if rateLimit != nil {
			analyze.Use(rateLimit)
		}
		analyze.POST("/analyze-photo", recipeHandler.AnalyzePhoto)
	}

	return router
}
