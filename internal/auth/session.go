package auth

import (
	"errors"
	"fmt"
	"herbal/internal/entity/common"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session is the state carried by a session token. UserID is zero for
// anonymous visitors that only stored preferences.
type Session struct {
	UserID   uint
	Role     common.Role
	Language string
	Theme    string
}

// Authenticated reports whether the session belongs to a logged in user.
func (s Session) Authenticated() bool {
	return s.UserID != 0
}

// Claims represents JWT claims for session tokens.
type Claims struct {
	UserID   uint        `json:"uid,omitempty"`
	Role     common.Role `json:"role,omitempty"`
	Language string      `json:"lang,omitempty"`
	Theme    string      `json:"theme,omitempty"`
	jwt.RegisteredClaims
}

// Session returns the session state held by the claims.
func (c *Claims) Session() Session {
	if c == nil {
		return Session{}
	}
	return Session{UserID: c.UserID, Role: c.Role, Language: c.Language, Theme: c.Theme}
}

// Manager encapsulates session token generation and validation.
type Manager struct {
	secret []byte
	issuer string
	expiry time.Duration
	now    func() time.Time
}

// NewManager creates a new session manager.
func NewManager(secret, issuer string, expiry time.Duration) (*Manager, error) {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return nil, errors.New("session secret must not be empty")
	}
	if expiry <= 0 {
		expiry = time.Hour * 24 * 7
	}
	if strings.TrimSpace(issuer) == "" {
		issuer = "herbal-garden"
	}
	return &Manager{
		secret: []byte(trimmed),
		issuer: issuer,
		expiry: expiry,
		now:    time.Now,
	}, nil
}

// Expiry returns the lifetime of issued tokens.
func (m *Manager) Expiry() time.Duration {
	return m.expiry
}

// Issue signs a new token for the session. Every token gets a fresh ID so it
// can be revoked on its own.
func (m *Manager) Issue(s Session) (string, *Claims, error) {
	if m == nil {
		return "", nil, errors.New("session manager is nil")
	}
	now := m.now().UTC()

	claims := &Claims{
		UserID:   s.UserID,
		Role:     s.Role,
		Language: s.Language,
		Theme:    s.Theme,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if s.UserID != 0 {
		claims.Subject = fmt.Sprintf("%d", s.UserID)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Parse validates the token and returns its claims.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	if m == nil {
		return nil, errors.New("session manager is nil")
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
