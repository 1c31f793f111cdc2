package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snapmenu/backend/internal/i18n"
	"github.com/snapmenu/backend/internal/service"
)

// RecipeHandler serves the recipe endpoints.
type RecipeHandler struct {
	search     *service.SearchService
	generation *service.GenerationService
	ingest     *service.IngestService
}

func NewRecipeHandler(search *service.SearchService, generation *service.GenerationService, ingest *service.IngestService) *RecipeHandler {
	return &RecipeHandler{
		search:     search,
		generation: generation,
		ingest:     ingest,
	}
}

func (h *RecipeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AnalyzePhoto runs the mock photo analysis and returns the detected
// ingredients plus the suggested recipes. Any failure, including a
// malformed body, surfaces as a bilingual 500.
func (h *RecipeHandler) AnalyzePhoto(c *gin.Context) {
	var req AnalyzePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error analyzing photo: %v", err)
		bilingualError(c, http.StatusInternalServerError, "apiAnalyzeFailed")
		return
	}

	result, err := h.generation.Analyze(c.Request.Context(), req.ImageData, req.DietaryPreference)
	if err != nil {
		log.Printf("Error analyzing photo: %v", err)
		bilingualError(c, http.StatusInternalServerError, "apiAnalyzeFailed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ingredients": result.Ingredients,
		"recipes":     result.Recipes,
	})
}

// ListRecipes returns the 20 most recent recipes.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.search.Recent(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching recipes: %v", err)
		en, _ := i18n.Pair("apiFetchFailed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": en})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// SearchRecipes returns recipes ranked by relevance to the q parameter,
// or the most recent recipes when q is blank.
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	recipes, err := h.search.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		log.Printf("Error searching recipes: %v", err)
		en, _ := i18n.Pair("apiSearchFailed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": en})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// AddRecipe validates and persists a user-submitted recipe.
func (h *RecipeHandler) AddRecipe(c *gin.Context) {
	var req AddRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error adding recipe: %v", err)
		bilingualError(c, http.StatusInternalServerError, "apiAddRecipeFailed")
		return
	}

	id, err := h.ingest.Ingest(c.Request.Context(), service.Submission{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CookingTime:  req.CookingTime,
		Difficulty:   req.Difficulty,
		DietaryTags:  req.DietaryTags,
		PhotoURL:     req.PhotoURL,
	})
	if errors.Is(err, service.ErrMissingFields) {
		bilingualError(c, http.StatusBadRequest, "apiMissingFields")
		return
	}
	if err != nil {
		log.Printf("Error adding recipe: %v", err)
		bilingualError(c, http.StatusInternalServerError, "apiAddRecipeFailed")
		return
	}

	en, ar := i18n.Pair("apiRecipeAdded")
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"recipe_id":  id,
		"message":    en,
		"message_ar": ar,
	})
}

// bilingualError writes the en/ar error pair for key. Every client-facing
// failure carries both strings.
func bilingualError(c *gin.Context, status int, key string) {
	en, ar := i18n.Pair(key)
	c.JSON(status, gin.H{
		"error":    en,
		"error_ar": ar,
	})
}
