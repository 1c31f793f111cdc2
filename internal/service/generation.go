package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/snapmenu/backend/internal/model"
)

// ErrMissingImage is returned when an analysis request carries no photo
// payload.
var ErrMissingImage = errors.New("image payload is required")

// AnalysisResult is what an analyze call returns: the mock-detected
// ingredients and the filtered templates with native arrays, not the
// JSON-text storage encoding.
type AnalysisResult struct {
	Ingredients []string         `json:"ingredients"`
	Recipes     []RecipeTemplate `json:"recipes"`
}

// GenerationService simulates photo analysis: it picks a random ingredient
// subset, filters the canned templates by dietary preference and persists
// one recipe row per surviving template.
type GenerationService struct {
	db    *gorm.DB
	cache *redis.Client
	rng   *rand.Rand
	delay time.Duration
	photo *PhotoStore
}

// NewGenerationService creates a GenerationService. rng may be nil, in
// which case a time-seeded source is used; tests inject a seeded one for
// deterministic picks. cache and photo may be nil.
func NewGenerationService(db *gorm.DB, cache *redis.Client, photo *PhotoStore, rng *rand.Rand, delay time.Duration) *GenerationService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GenerationService{
		db:    db,
		cache: cache,
		rng:   rng,
		delay: delay,
		photo: photo,
	}
}

// Analyze validates the payload, waits out the artificial processing delay,
// then returns 5-8 random ingredients plus the dietary-filtered templates.
// Each returned template is also inserted as a recipe row; the first insert
// failure aborts the call.
func (s *GenerationService) Analyze(ctx context.Context, imageData, dietaryPreference string) (*AnalysisResult, error) {
	if imageData == "" {
		return nil, ErrMissingImage
	}

	// Models the latency of an external inference call. Blocks only the
	// calling goroutine.
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	recipes := filterTemplates(recipeCatalog, dietaryPreference)
	ingredients := s.pickIngredients()
	ingredientsStr := strings.Join(ingredients, ", ")

	photoURL := imageData
	if s.photo != nil {
		if url, err := s.photo.Save(ctx, imageData); err == nil {
			photoURL = url
		}
	}

	timestamp := model.Timestamp()
	for _, tpl := range recipes {
		description := tpl.Description
		row := model.Recipe{
			PhotoURL:          &photoURL,
			Ingredients:       ingredientsStr,
			RecipeTitle:       tpl.Title,
			RecipeDescription: &description,
			CookingTime:       tpl.CookingTime,
			Difficulty:        tpl.Difficulty,
			DietaryTags:       model.EncodeStringList(tpl.DietaryTags),
			Instructions:      model.EncodeStringList(tpl.Instructions),
			CreatedAt:         timestamp,
			UpdatedAt:         timestamp,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, fmt.Errorf("failed to store generated recipe: %w", err)
		}
	}

	invalidateRecent(ctx, s.cache)

	return &AnalysisResult{Ingredients: ingredients, Recipes: recipes}, nil
}

// filterTemplates keeps templates whose tags contain the preference as a
// case-insensitive substring. An empty match set falls back to all
// templates so a caller never receives zero recipes.
func filterTemplates(catalog []RecipeTemplate, preference string) []RecipeTemplate {
	if preference == "" {
		return append([]RecipeTemplate(nil), catalog...)
	}

	pref := strings.ToLower(preference)
	var filtered []RecipeTemplate
	for _, tpl := range catalog {
		for _, tag := range tpl.DietaryTags {
			if strings.Contains(strings.ToLower(tag), pref) {
				filtered = append(filtered, tpl)
				break
			}
		}
	}

	if len(filtered) == 0 {
		return append([]RecipeTemplate(nil), catalog...)
	}
	return filtered
}

// pickIngredients draws 5-8 distinct items from the vocabulary in random
// order.
func (s *GenerationService) pickIngredients() []string {
	shuffled := append([]string(nil), ingredientVocabulary...)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	n := 5 + s.rng.Intn(4)
	return shuffled[:n]
}
