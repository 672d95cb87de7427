package api

import (
	"context"
	"errors"
	"herbal/internal/auth"
	"herbal/internal/entity/common"
	"herbal/internal/entity/dto"
	"herbal/internal/i18n"
	"herbal/internal/service"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	currentUserContextKey  = "current-user"
	claimsContextKey       = "session-claims"
	preferencesContextKey  = "preferences"
	disabledUserContextKey = "user-disabled"
)

// RequestUser 存储请求上下文中的认证用户信息
type RequestUser struct {
	ID       uint
	Username string
	Role     common.Role
}

// SessionMiddleware resolves the caller and their display preferences for
// every request. Requests without a valid session continue anonymously.
// The role always comes from the stored user, never from the token.
func (h *HTTPHandler) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		prefs := dto.Preferences{
			Language: i18n.Match(c.GetHeader("Accept-Language")),
			Theme:    defaultTheme,
		}

		claims := h.sessionClaims(c)
		session := claims.Session()
		if i18n.Supported(session.Language) {
			prefs.Language = session.Language
		}
		if validTheme(session.Theme) {
			prefs.Theme = session.Theme
		}
		if claims != nil {
			c.Set(claimsContextKey, claims)
		}
		c.Set(preferencesContextKey, prefs)

		if !session.Authenticated() {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		user, err := h.repo.GetUserByID(ctx, session.UserID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logrus.WithError(err).WithField("user_id", session.UserID).Error("failed to load session user")
				InternalError(c, i18n.T(prefs.Language, "error_occurred"))
				c.Abort()
				return
			}
			c.Next()
			return
		}
		if !user.IsActive {
			c.Set(disabledUserContextKey, true)
			c.Next()
			return
		}

		c.Set(currentUserContextKey, &RequestUser{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
		c.Next()
	}
}

// sessionClaims reads the session token from the cookie or the bearer
// header. Invalid and revoked tokens are ignored.
func (h *HTTPHandler) sessionClaims(c *gin.Context) *auth.Claims {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		if cookie, err := c.Cookie(h.cfg.SessionCookieName); err == nil {
			token = strings.TrimSpace(cookie)
		}
	}
	if token == "" {
		return nil
	}

	claims, err := h.sessions.Parse(token)
	if err != nil {
		logrus.WithError(err).Debug("ignoring invalid session token")
		return nil
	}
	if claims.ID != "" {
		revoked, err := h.revocations.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logrus.WithError(err).Warn("failed to check session revocation")
			return nil
		}
		if revoked {
			return nil
		}
	}
	return claims
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireLogin 登录守卫中间件
func (h *HTTPHandler) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) != nil {
			c.Next()
			return
		}
		lang := PreferencesFrom(c).Language
		if c.GetBool(disabledUserContextKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, APIError{
				Code:    ErrCodeUserDisabled,
				Message: service.ErrInactiveUser.Error(),
			})
			return
		}
		Unauthorized(c, i18n.T(lang, "login_required"))
		c.Abort()
	}
}

// RequireCapability 权限守卫中间件
func (h *HTTPHandler) RequireCapability(capability common.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !actorFrom(c).Can(capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, APIError{
				Code:    ErrCodeForbidden,
				Message: i18n.T(PreferencesFrom(c).Language, "access_denied"),
			})
			return
		}
		c.Next()
	}
}

// CurrentUser 从上下文获取当前认证用户
func CurrentUser(c *gin.Context) *RequestUser {
	value, exists := c.Get(currentUserContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*RequestUser)
	if !ok {
		return nil
	}
	return user
}

// PreferencesFrom returns the display preferences resolved for the request.
func PreferencesFrom(c *gin.Context) dto.Preferences {
	if value, exists := c.Get(preferencesContextKey); exists {
		if prefs, ok := value.(dto.Preferences); ok {
			return prefs
		}
	}
	return dto.Preferences{Language: i18n.DefaultLanguage, Theme: defaultTheme}
}

func sessionClaimsFrom(c *gin.Context) *auth.Claims {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}

func actorFrom(c *gin.Context) service.Actor {
	user := CurrentUser(c)
	if user == nil {
		return service.Actor{}
	}
	return service.Actor{ID: user.ID, Role: user.Role}
}
