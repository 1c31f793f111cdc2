package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapmenu/backend/internal/model"
)

func list(items ...string) TextOrList {
	return TextOrList{Items: items, IsList: true}
}

func text(s string) TextOrList {
	return TextOrList{Raw: s}
}

func TestIngestRejectsMissingFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngestService(db, nil, nil)

	cases := []Submission{
		{Title: "", Ingredients: text("x"), Instructions: text("y")},
		{Title: "T", Ingredients: text(""), Instructions: text("y")},
		{Title: "T", Ingredients: text("x"), Instructions: text("")},
		{Title: "T", Ingredients: list(), Instructions: text("y")},
	}

	for _, sub := range cases {
		_, err := svc.Ingest(context.Background(), sub)
		assert.ErrorIs(t, err, ErrMissingFields)
	}

	// Validation failures never reach storage.
	var count int64
	require.NoError(t, db.Model(&model.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestIngestNormalizesLists(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngestService(db, nil, nil)

	id, err := svc.Ingest(context.Background(), Submission{
		Title:        "T",
		Ingredients:  list("a", "b"),
		Instructions: list("s1", "s2"),
	})
	require.NoError(t, err)
	require.Positive(t, id)

	var row model.Recipe
	require.NoError(t, db.First(&row, "id = ?", id).Error)

	// Asymmetric encoding: ingredients comma-joined, instructions as a
	// JSON array.
	assert.Equal(t, "a, b", row.Ingredients)
	assert.Equal(t, `["s1","s2"]`, row.Instructions)
}

func TestIngestPreservesPreJoinedStrings(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngestService(db, nil, nil)

	id, err := svc.Ingest(context.Background(), Submission{
		Title:        "T",
		Ingredients:  text("2 tomatoes, lettuce"),
		Instructions: text("chop and mix"),
	})
	require.NoError(t, err)

	var row model.Recipe
	require.NoError(t, db.First(&row, "id = ?", id).Error)
	assert.Equal(t, "2 tomatoes, lettuce", row.Ingredients)
	assert.Equal(t, "chop and mix", row.Instructions)
}

func TestIngestDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngestService(db, nil, nil)

	id, err := svc.Ingest(context.Background(), Submission{
		Title:        "T",
		Ingredients:  text("x"),
		Instructions: text("y"),
	})
	require.NoError(t, err)

	var row model.Recipe
	require.NoError(t, db.First(&row, "id = ?", id).Error)

	assert.Equal(t, "[]", row.DietaryTags)
	assert.Equal(t, "Easy", row.Difficulty)
	assert.Nil(t, row.PhotoURL)
	assert.Nil(t, row.RecipeDescription)
	assert.Equal(t, row.CreatedAt, row.UpdatedAt)
}

func TestIngestUniqueIDs(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngestService(db, nil, nil)

	sub := Submission{Title: "T", Ingredients: text("x"), Instructions: text("y")}
	id1, err := svc.Ingest(context.Background(), sub)
	require.NoError(t, err)
	id2, err := svc.Ingest(context.Background(), sub)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
}

func TestTextOrListUnmarshal(t *testing.T) {
	var v TextOrList
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &v))
	assert.True(t, v.IsList)
	assert.Equal(t, "a, b", v.Joined())
	assert.Equal(t, `["a","b"]`, v.Encoded())

	var w TextOrList
	require.NoError(t, json.Unmarshal([]byte(`"chop and mix"`), &w))
	assert.False(t, w.IsList)
	assert.Equal(t, "chop and mix", w.Joined())
	assert.Equal(t, "chop and mix", w.Encoded())

	assert.Error(t, json.Unmarshal([]byte(`42`), &v))
}
