package api

import (
	"herbal/internal/entity/dto"
	"herbal/internal/i18n"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetLanguage stores the UI language in the caller's session token.
func (h *HTTPHandler) SetLanguage(c *gin.Context) {
	var param languageParam
	if err := c.ShouldBindUri(&param); err != nil {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidRequest, "unsupported language",
			gin.H{"supported": i18n.Languages()})
		return
	}
	prefs := PreferencesFrom(c)
	prefs.Language = param.Lang
	h.updatePreferences(c, prefs)
}

// SetTheme stores the UI theme in the caller's session token.
func (h *HTTPHandler) SetTheme(c *gin.Context) {
	var param themeParam
	if err := c.ShouldBindUri(&param); err != nil {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidRequest, "unsupported theme",
			gin.H{"supported": []string{"light", "dark"}})
		return
	}
	prefs := PreferencesFrom(c)
	prefs.Theme = param.Theme
	h.updatePreferences(c, prefs)
}

func (h *HTTPHandler) updatePreferences(c *gin.Context, prefs dto.Preferences) {
	token, err := h.issuePreferences(c, prefs)
	if err != nil {
		logrus.WithError(err).Error("failed to store preferences")
		InternalError(c, "failed to store preferences")
		return
	}
	c.Set(preferencesContextKey, prefs)
	c.JSON(http.StatusOK, dto.PreferenceResponse{
		Preferences: prefs,
		Message:     i18n.T(prefs.Language, "preferences_updated"),
		Token:       token,
	})
}

// Translations returns the dictionary of the active language.
func (h *HTTPHandler) Translations(c *gin.Context) {
	lang := PreferencesFrom(c).Language
	c.JSON(http.StatusOK, dto.TranslationsResponse{
		Language:     lang,
		Languages:    i18n.Languages(),
		Translations: i18n.Dictionary(lang),
	})
}
