package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapmenu/backend/internal/model"
)

func TestHealth(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestAnalyzePhoto(t *testing.T) {
	router, db := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/analyze-photo", map[string]interface{}{
		"image_data": "base64-payload",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	ingredients := body["ingredients"].([]interface{})
	assert.GreaterOrEqual(t, len(ingredients), 5)
	assert.LessOrEqual(t, len(ingredients), 8)

	recipes := body["recipes"].([]interface{})
	require.Len(t, recipes, 3)

	// Response templates carry native arrays, not JSON strings.
	first := recipes[0].(map[string]interface{})
	_, ok := first["dietary_tags"].([]interface{})
	assert.True(t, ok, "dietary_tags should be an array at the response boundary")
	_, ok = first["instructions"].([]interface{})
	assert.True(t, ok, "instructions should be an array at the response boundary")

	// One row persisted per returned template.
	var count int64
	require.NoError(t, db.Model(&model.Recipe{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestAnalyzePhotoDietaryFallback(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/analyze-photo", map[string]interface{}{
		"image_data":         "base64-payload",
		"dietary_preference": "keto",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// No template is tagged keto; all three come back instead of none.
	assert.Len(t, decodeBody(t, w)["recipes"].([]interface{}), 3)
}

func TestAnalyzePhotoMissingImage(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/analyze-photo", map[string]interface{}{})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["error"])
	assert.NotEmpty(t, body["error_ar"])
}

func TestAnalyzePhotoMalformedBody(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/analyze-photo", "not an object")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["error"])
	assert.NotEmpty(t, body["error_ar"])
}

func TestListRecipes(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/add-recipe", map[string]interface{}{
		"title":        "Kabsa",
		"ingredients":  []string{"rice", "chicken"},
		"instructions": []string{"cook rice", "add chicken"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	recipes := decodeBody(t, w)["recipes"].([]interface{})
	require.Len(t, recipes, 1)

	row := recipes[0].(map[string]interface{})
	assert.Equal(t, "Kabsa", row["recipe_title"])
	// Round-trip: tags absent at submission come back as "[]".
	assert.Equal(t, "[]", row["dietary_tags"])
	assert.Equal(t, "rice, chicken", row["ingredients"])
	assert.Equal(t, `["cook rice","add chicken"]`, row["instructions"])
}

func TestSearchRecipesRanked(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, r := range []map[string]interface{}{
		{"title": "Chicken Kabsa", "ingredients": "rice, chicken", "instructions": "cook"},
		{"title": "Plain Rice", "ingredients": "rice, chicken stock", "instructions": "boil"},
	} {
		w := doJSON(t, router, "POST", "/api/add-recipe", r)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, router, "GET", "/api/search-recipes?q=chicken", nil)
	require.Equal(t, http.StatusOK, w.Code)

	recipes := decodeBody(t, w)["recipes"].([]interface{})
	require.Len(t, recipes, 2)

	// Title match outranks ingredients match.
	assert.Equal(t, "Chicken Kabsa", recipes[0].(map[string]interface{})["recipe_title"])
	assert.Equal(t, "Plain Rice", recipes[1].(map[string]interface{})["recipe_title"])
}

func TestSearchRecipesEmptyQuery(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/api/search-recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, decodeBody(t, w)["recipes"])
}

func TestAddRecipeMissingFields(t *testing.T) {
	router, db := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/add-recipe", map[string]interface{}{
		"title":        "",
		"ingredients":  "x",
		"instructions": "y",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Missing required fields", body["error"])
	assert.NotEmpty(t, body["error_ar"])

	var count int64
	require.NoError(t, db.Model(&model.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddRecipeSuccess(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/add-recipe", map[string]interface{}{
		"title":        "Fattoush",
		"description":  "A Levantine salad",
		"ingredients":  []string{"bread", "tomatoes"},
		"instructions": []string{"toast bread", "mix"},
		"dietary_tags": []string{"vegan"},
		"difficulty":   "Medium",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotZero(t, body["recipe_id"])
	assert.Equal(t, "Recipe added successfully", body["message"])
	assert.NotEmpty(t, body["message_ar"])
}
