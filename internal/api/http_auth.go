package api

import (
	"context"
	"herbal/internal/auth"
	"herbal/internal/entity/converter"
	"herbal/internal/entity/dto"
	"herbal/internal/i18n"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Register creates a regular user account. The caller still has to log in.
func (h *HTTPHandler) Register(c *gin.Context) {
	var req dto.AuthRegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid registration payload", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := h.users.Register(ctx, &req)
	if err != nil {
		respondError(c, err, "")
		return
	}

	summary := converter.UserToSummary(user)
	c.JSON(http.StatusCreated, gin.H{
		"user":    summary,
		"message": i18n.T(PreferencesFrom(c).Language, "registration_success"),
	})
}

// Login verifies the credentials and starts a session that keeps the
// caller's current preferences.
func (h *HTTPHandler) Login(c *gin.Context) {
	var req dto.AuthLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := h.users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		logrus.WithError(err).WithField("username", req.Username).Warn("login attempt failed")
		respondError(c, err, "")
		return
	}

	prefs := PreferencesFrom(c)
	token, claims, err := h.sessions.Issue(auth.Session{
		UserID:   user.ID,
		Role:     user.Role,
		Language: prefs.Language,
		Theme:    prefs.Theme,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to generate token")
		InternalError(c, "failed to create session")
		return
	}
	h.setSessionCookie(c, token)

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      converter.UserToSummary(user),
	})
}

// Logout revokes the current session and hands back an anonymous token
// that only carries the preferences.
func (h *HTTPHandler) Logout(c *gin.Context) {
	if claims := sessionClaimsFrom(c); claims != nil && claims.ID != "" {
		until := time.Now().Add(h.sessions.Expiry())
		if claims.ExpiresAt != nil {
			until = claims.ExpiresAt.Time
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		if err := h.revocations.Revoke(ctx, claims.ID, until); err != nil {
			logrus.WithError(err).Error("failed to revoke session")
			InternalError(c, "failed to end session")
			return
		}
	}

	prefs := PreferencesFrom(c)
	token, _, err := h.sessions.Issue(auth.Session{Language: prefs.Language, Theme: prefs.Theme})
	if err != nil {
		logrus.WithError(err).Error("failed to generate token")
		InternalError(c, "failed to create session")
		return
	}
	h.setSessionCookie(c, token)

	c.JSON(http.StatusOK, dto.PreferenceResponse{
		Preferences: prefs,
		Message:     i18n.T(prefs.Language, "logout_success"),
		Token:       token,
	})
}

// Me describes the caller. Anonymous callers get a nil user.
func (h *HTTPHandler) Me(c *gin.Context) {
	resp := dto.MeResponse{Preferences: PreferencesFrom(c)}
	if user := CurrentUser(c); user != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		dbUser, err := h.users.Get(ctx, user.ID)
		if err != nil {
			respondError(c, err, ErrCodeUserNotFound)
			return
		}
		summary := converter.UserToSummary(dbUser)
		resp.User = &summary
	}
	c.JSON(http.StatusOK, resp)
}

// issuePreferences signs a token for prefs that keeps the current login,
// if any, and sets it as the session cookie.
func (h *HTTPHandler) issuePreferences(c *gin.Context, prefs dto.Preferences) (string, error) {
	session := auth.Session{Language: prefs.Language, Theme: prefs.Theme}
	if user := CurrentUser(c); user != nil {
		session.UserID = user.ID
		session.Role = user.Role
	}
	token, _, err := h.sessions.Issue(session)
	if err != nil {
		return "", err
	}
	h.setSessionCookie(c, token)
	return token, nil
}

func (h *HTTPHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookieName, token, int(h.sessions.Expiry().Seconds()), "/", "", h.cfg.SessionCookieSecure, true)
}
