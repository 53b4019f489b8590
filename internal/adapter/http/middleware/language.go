package middleware

import (
	"github.com/onurcagigan-dotcom/planet-event/pkg/translator"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

var langMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
})

// LanguageMiddleware resolves the Accept-Language header to one of the
// supported catalog languages and stores it in the request context.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := translator.LanguageEn
		if header := c.GetHeader("Accept-Language"); header != "" {
			if tags, _, err := language.ParseAcceptLanguage(header); err == nil {
				tag, _, _ := langMatcher.Match(tags...)
				base, _ := tag.Base()
				lang = base.String()
			}
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
