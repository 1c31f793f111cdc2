package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLanguageDefault(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/api/language", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "ar", body["language"])
	assert.Equal(t, "rtl", body["direction"])
}

func TestSetLanguage(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "PUT", "/api/language", map[string]interface{}{"language": "en"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "en", body["language"])
	assert.Equal(t, "ltr", body["direction"])
}

func TestSetLanguageUnsupported(t *testing.T) {
	router, _ := setupTestRouter(t)

	// Unsupported codes are ignored, the prior selection is retained.
	w := doJSON(t, router, "PUT", "/api/language", map[string]interface{}{"language": "xx"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ar", decodeBody(t, w)["language"])
}
