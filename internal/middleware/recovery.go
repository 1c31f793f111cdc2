package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snapmenu/backend/internal/i18n"
)

// Recovery converts panics into the bilingual 500 body every client-facing
// failure must carry. Panic detail is logged server-side only.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		log.Printf("panic recovered: %v", err)
		en, ar := i18n.Pair("apiInternalError")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":    en,
			"error_ar": ar,
		})
	})
}
