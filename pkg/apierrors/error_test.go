package apierrors_test

import (
	"testing"

	"github.com/onurcagigan-dotcom/planet-event/pkg/apierrors"
	"github.com/onurcagigan-dotcom/planet-event/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	translator.Translator = i18n.NewBundle(language.English)
	err := translator.Translator.AddMessages(language.English, &i18n.Message{
		ID:    "taskNotFound",
		Other: "The task could not be found.",
	})
	if err != nil {
		return
	}
	m.Run()
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(404, "taskNotFound", "en")
	assert.Equal(t, 404, err.ErrDetails.Code)
	assert.Equal(t, "The task could not be found.", err.ErrDetails.Message)
}

func TestGetTransErrorMsg_ReturnsTranslation(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("taskNotFound", "en")
	assert.Equal(t, "The task could not be found.", msg)
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}

func TestGetTransErrorMsg_UnknownLangFallsBackToEnglish(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("taskNotFound", "xx")
	assert.Equal(t, "The task could not be found.", msg)
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError(500, "taskNotFound", "en")
	assert.Equal(t, "500: The task could not be found.", err.Error())
}
