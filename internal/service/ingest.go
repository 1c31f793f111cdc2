package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/snapmenu/backend/internal/model"
)

// ErrMissingFields is returned when a submission lacks a required field.
// Validation happens before any storage access.
var ErrMissingFields = errors.New("missing required fields")

// TextOrList accepts a JSON string or a JSON array of strings, preserving
// which form arrived so the two storage encodings stay faithful: list
// ingredients are comma-joined while list instructions are JSON-encoded,
// and pre-joined strings pass through verbatim either way.
type TextOrList struct {
	Items  []string
	Raw    string
	IsList bool
}

func (v *TextOrList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		v.IsList = true
		return json.Unmarshal(data, &v.Items)
	}
	v.IsList = false
	return json.Unmarshal(data, &v.Raw)
}

// Empty reports whether the value carries no content.
func (v TextOrList) Empty() bool {
	if v.IsList {
		return len(v.Items) == 0
	}
	return v.Raw == ""
}

// Joined returns the comma-joined form used for the ingredients column.
func (v TextOrList) Joined() string {
	if v.IsList {
		return strings.Join(v.Items, ", ")
	}
	return v.Raw
}

// Encoded returns the JSON-array form used for the instructions column.
func (v TextOrList) Encoded() string {
	if v.IsList {
		return model.EncodeStringList(v.Items)
	}
	return v.Raw
}

// Submission is a user-submitted recipe before normalization.
type Submission struct {
	Title        string
	Description  string
	Ingredients  TextOrList
	Instructions TextOrList
	CookingTime  string
	Difficulty   string
	DietaryTags  []string
	PhotoURL     string
}

// IngestService validates and persists user-submitted recipes.
type IngestService struct {
	db    *gorm.DB
	cache *redis.Client
	photo *PhotoStore
}

// NewIngestService creates an IngestService. cache and photo may be nil.
func NewIngestService(db *gorm.DB, cache *redis.Client, photo *PhotoStore) *IngestService {
	return &IngestService{db: db, cache: cache, photo: photo}
}

// Ingest validates sub and persists it as a new recipe row, returning the
// assigned id.
func (s *IngestService) Ingest(ctx context.Context, sub Submission) (int64, error) {
	if sub.Title == "" || sub.Ingredients.Empty() || sub.Instructions.Empty() {
		return 0, ErrMissingFields
	}

	row := model.Recipe{
		Ingredients:  sub.Ingredients.Joined(),
		RecipeTitle:  sub.Title,
		CookingTime:  sub.CookingTime,
		Difficulty:   sub.Difficulty,
		DietaryTags:  model.EncodeStringList(sub.DietaryTags),
		Instructions: sub.Instructions.Encoded(),
	}

	if sub.Description != "" {
		row.RecipeDescription = &sub.Description
	}
	if row.Difficulty == "" {
		row.Difficulty = "Easy"
	}
	if sub.PhotoURL != "" {
		photoURL := sub.PhotoURL
		if s.photo != nil && strings.HasPrefix(photoURL, "data:") {
			if url, err := s.photo.Save(ctx, photoURL); err == nil {
				photoURL = url
			}
		}
		row.PhotoURL = &photoURL
	}

	timestamp := model.Timestamp()
	row.CreatedAt = timestamp
	row.UpdatedAt = timestamp

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("failed to store recipe: %w", err)
	}

	invalidateRecent(ctx, s.cache)

	return row.ID, nil
}
