package dto

import "time"

// AuthLoginRequest is the login request payload.
type AuthLoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// AuthRegisterRequest is the registration request payload. The role is
// always "user"; it cannot be chosen by the caller.
type AuthRegisterRequest struct {
	Username        string `json:"username" form:"username" binding:"required,min=3,max=80"`
	Email           string `json:"email" form:"email" binding:"required,email,max=120"`
	Password        string `json:"password" form:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name" form:"first_name" binding:"max=50"`
	LastName        string `json:"last_name" form:"last_name" binding:"max=50"`
}

// AuthResponse is returned after successful login.
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      UserSummary `json:"user"`
}

// MeResponse describes the caller. User is nil for anonymous sessions.
type MeResponse struct {
	User        *UserSummary `json:"user"`
	Preferences Preferences  `json:"preferences"`
}

// Preferences are the per session display settings.
type Preferences struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// PreferenceResponse is returned after a preference change.
type PreferenceResponse struct {
	Preferences Preferences `json:"preferences"`
	Message     string      `json:"message"`
	Token       string      `json:"token,omitempty"`
}

// TranslationsResponse carries the dictionary for the active language.
type TranslationsResponse struct {
	Language     string            `json:"language"`
	Languages    []string          `json:"languages"`
	Translations map[string]string `json:"translations"`
}
