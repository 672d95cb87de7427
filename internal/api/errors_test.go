package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"herbal/internal/entity/dto"
	"herbal/internal/identify"
	"herbal/internal/service"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		status  int
		code    string
		message string
	}{
		{name: "BadRequest", status: http.StatusBadRequest, code: ErrCodeInvalidRequest, message: "无效的请求"},
		{name: "NotFound", status: http.StatusNotFound, code: ErrCodePlantNotFound, message: "植物不存在"},
		{name: "InternalError", status: http.StatusInternalServerError, code: ErrCodeInternalError, message: "服务器内部错误"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponse(c, tt.status, tt.code, tt.message)

			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}

			var response APIError
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if response.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, response.Code)
			}
			if response.Message != tt.message {
				t.Errorf("expected message %s, got %s", tt.message, response.Message)
			}
		})
	}
}

func TestErrorResponseWithDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	MissingField(c, "plant_image")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var response APIError
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response.Code != ErrCodeMissingField {
		t.Errorf("expected code %s, got %s", ErrCodeMissingField, response.Code)
	}
	if response.Details == nil {
		t.Error("expected details to be set")
	}
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		err          error
		notFoundCode string
		wantStatus   int
		wantCode     string
		wantMessage  string
	}{
		{"password mismatch", service.ErrPasswordMismatch, "", http.StatusBadRequest, ErrCodeInvalidRequest, "Passwords do not match"},
		{"file type", service.ErrInvalidImageType, "", http.StatusBadRequest, ErrCodeInvalidFileType, "Invalid file type. Allowed: png, jpg, jpeg, gif"},
		{"no image", service.ErrNoImage, "", http.StatusBadRequest, ErrCodeMissingField, ""},
		{"username", service.ErrUsernameTaken, "", http.StatusBadRequest, ErrCodeUsernameExists, "Username already exists"},
		{"email", service.ErrEmailTaken, "", http.StatusBadRequest, ErrCodeEmailExists, "Email already registered"},
		{"login", service.ErrInvalidLogin, "", http.StatusUnauthorized, ErrCodeInvalidCredentials, "Invalid username or password"},
		{"inactive", service.ErrInactiveUser, "", http.StatusForbidden, ErrCodeUserDisabled, ""},
		{"denied", fmt.Errorf("approve: %w", service.ErrPermissionDenied), "", http.StatusForbidden, ErrCodeForbidden, "Access denied. Admin privileges required."},
		{"plant missing", service.ErrNotFound, ErrCodePlantNotFound, http.StatusNotFound, ErrCodePlantNotFound, "Not found"},
		{"generic missing", service.ErrNotFound, "", http.StatusNotFound, ErrCodeNotFound, "Not found"},
		{"identification", fmt.Errorf("%w: timeout", identify.ErrIdentificationFailed), "", http.StatusBadGateway, ErrCodeIdentificationFailed, "Plant identification failed"},
		{"storage", errors.New("disk full"), "", http.StatusInternalServerError, ErrCodeInternalError, "An error occurred: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tt.err, tt.notFoundCode)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var response APIError
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if response.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, response.Code)
			}
			if tt.wantMessage != "" && response.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, response.Message)
			}
		})
	}
}

func TestRespondErrorUsesRequestLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(preferencesContextKey, dto.Preferences{Language: "es", Theme: "dark"})

	respondError(c, service.ErrNotFound, "")

	var response APIError
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response.Message != "No encontrado" {
		t.Errorf("expected Spanish message, got %q", response.Message)
	}
}
