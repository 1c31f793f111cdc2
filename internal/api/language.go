package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snapmenu/backend/internal/i18n"
)

// LanguageHandler exposes the active language selection and its layout
// direction to UI collaborators.
type LanguageHandler struct {
	translator *i18n.Translator
}

func NewLanguageHandler(translator *i18n.Translator) *LanguageHandler {
	return &LanguageHandler{translator: translator}
}

func (h *LanguageHandler) GetLanguage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"language":  h.translator.Language(),
		"direction": h.translator.Direction(),
	})
}

// SetLanguage switches the active language. Unsupported codes are ignored
// and the prior selection is reported back.
func (h *LanguageHandler) SetLanguage(c *gin.Context) {
	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		h.translator.SetLanguage(c.Request.Context(), i18n.Language(req.Language))
	}

	c.JSON(http.StatusOK, gin.H{
		"language":  h.translator.Language(),
		"direction": h.translator.Direction(),
	})
}
