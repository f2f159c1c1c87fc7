// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Adittooo01/SneakPick/internal/i18n"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := negotiateLanguage(c.GetHeader("Accept-Language"))
		c.Set("lang", lang)
		c.Next()
	}
}

// negotiateLanguage picks the first requested language with a loaded
// locale, falling back to English. Handles headers like
// "en-US,en;q=0.9,sv;q=0.8".
func negotiateLanguage(header string) string {
	if header == "" {
		return "en"
	}

	supported := i18n.GetSupportedLanguages()
	for _, part := range strings.Split(header, ",") {
		requested := strings.TrimSpace(strings.Split(part, ";")[0])
		// "en-US" matches the "en" locale
		base := strings.Split(requested, "-")[0]
		for _, lang := range supported {
			if base == lang {
				return lang
			}
		}
	}
	return "en"
}
