package apierrors

import (
	"fmt"

	"github.com/onurcagigan-dotcom/planet-event/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// JsonErr is the error envelope returned by every API handler.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err carries the HTTP status code and the localized message.
type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e JsonErr) Error() string {
	return fmt.Sprintf("%d: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError builds a JsonErr with the message translated for lang.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: Err{Code: code, Message: GetTransErrorMsg(msgKey, lang)}}
}

// GetTransErrorMsg resolves msgKey for lang, falling back to English and
// finally to the raw key when no catalog entry exists.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("translation not found",
			zap.String("lang", lang),
			zap.String("message_id", msgKey),
			zap.Error(err))
		return msgKey
	}
	return msg
}
