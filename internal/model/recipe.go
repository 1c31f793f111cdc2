package model

import (
	"encoding/json"
	"time"
)

// Recipe is the persisted recipe row. Rows are created by the generation
// and ingestion services, never updated in place and never deleted.
//
// dietary_tags and instructions are stored as JSON-encoded arrays in text
// columns; ingredients is a comma-joined string. Use EncodeStringList and
// DecodeStringList when crossing that boundary.
type Recipe struct {
	ID                int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	PhotoURL          *string `gorm:"type:text" json:"photo_url"`
	Ingredients       string  `gorm:"type:text;not null" json:"ingredients"`
	RecipeTitle       string  `gorm:"size:255;not null" json:"recipe_title"`
	RecipeDescription *string `gorm:"type:text" json:"recipe_description"`
	CookingTime       string  `gorm:"size:100" json:"cooking_time"`
	Difficulty        string  `gorm:"size:50" json:"difficulty"`
	DietaryTags       string  `gorm:"type:text;not null;default:'[]'" json:"dietary_tags"`
	Instructions      string  `gorm:"type:text;not null" json:"instructions"`
	DishImageURL      *string `gorm:"type:text" json:"dish_image_url"`
	CreatedAt         string  `gorm:"size:40" json:"created_at"`
	UpdatedAt         string  `gorm:"size:40" json:"updated_at"`
}

// TableName keeps the table name explicit so the raw search query and the
// model stay in sync.
func (Recipe) TableName() string {
	return "recipes"
}

// Timestamp returns the value stored in created_at/updated_at at insert
// time. Both columns are set once; updated_at is never revised afterwards.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// EncodeStringList encodes items as a JSON array for a text column.
// An empty or nil slice encodes as "[]", never as null.
func EncodeStringList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeStringList decodes a JSON array text column back into a slice.
// Malformed or empty input decodes as an empty slice.
func DecodeStringList(s string) []string {
	if s == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return []string{}
	}
	if items == nil {
		return []string{}
	}
	return items
}
