package translator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator loads the TOML message catalogs for the supported
// languages into the global bundle. A missing folder or file is logged
// and skipped; lookups then fall back to the raw message key.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || !supported(f.Name(), cfg.SupportedLanguages) {
			continue
		}
		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// supported matches catalog files named <lang>.toml against the
// configured language list. An empty list accepts every file.
func supported(name string, languages []string) bool {
	if len(languages) == 0 {
		return true
	}
	lang := strings.TrimSuffix(name, ".toml")
	for _, l := range languages {
		if lang == l {
			return true
		}
	}
	return false
}
