package api

import "github.com/snapmenu/backend/internal/service"

// AnalyzePhotoRequest is the body of POST /api/analyze-photo. The image
// payload is treated as opaque; no decoding happens during analysis.
type AnalyzePhotoRequest struct {
	ImageData         string `json:"image_data"`
	DietaryPreference string `json:"dietary_preference"`
}

// AddRecipeRequest is the body of POST /api/add-recipe. Ingredients and
// instructions accept either a string or an array of strings.
type AddRecipeRequest struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Ingredients  service.TextOrList `json:"ingredients"`
	Instructions service.TextOrList `json:"instructions"`
	CookingTime  string             `json:"cooking_time"`
	Difficulty   string             `json:"difficulty"`
	DietaryTags  []string           `json:"dietary_tags"`
	PhotoURL     string             `json:"photo_url"`
}

// SetLanguageRequest is the body of PUT /api/language.
type SetLanguageRequest struct {
	Language string `json:"language"`
}
