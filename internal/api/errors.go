package api

import (
	"errors"
	"herbal/internal/i18n"
	"herbal/internal/identify"
	"herbal/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 错误码定义
const (
	// 通用错误码
	ErrCodeInvalidRequest     = "ERR_INVALID_REQUEST"
	ErrCodeUnauthorized       = "ERR_UNAUTHORIZED"
	ErrCodeForbidden          = "ERR_FORBIDDEN"
	ErrCodeNotFound           = "ERR_NOT_FOUND"
	ErrCodeInternalError      = "ERR_INTERNAL_ERROR"

	// 认证错误码
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeUsernameExists     = "ERR_USERNAME_EXISTS"
	ErrCodeEmailExists        = "ERR_EMAIL_EXISTS"
	ErrCodeUserDisabled       = "ERR_USER_DISABLED"

	// 资源错误码
	ErrCodePlantNotFound    = "ERR_PLANT_NOT_FOUND"
	ErrCodeCategoryNotFound = "ERR_CATEGORY_NOT_FOUND"
	ErrCodeUserNotFound     = "ERR_USER_NOT_FOUND"

	// 业务逻辑错误码
	ErrCodeMissingField         = "ERR_MISSING_FIELD"
	ErrCodeInvalidFileType      = "ERR_INVALID_FILE_TYPE"
	ErrCodeIdentificationFailed = "ERR_IDENTIFICATION_FAILED"
)

// APIError 统一的 API 错误响应结构
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse 返回统一格式的错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails 返回带详情的错误响应
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401 未授权
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// Forbidden 403 禁止访问
func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, ErrCodeForbidden, message)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// MissingField 缺少必填字段
func MissingField(c *gin.Context, field string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField, field+" is required", gin.H{"field": field})
}

// InvalidPayload 无效的请求体
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}

// respondError maps a service error onto a localized error response.
// notFoundCode is used for ErrNotFound.
func respondError(c *gin.Context, err error, notFoundCode string) {
	lang := PreferencesFrom(c).Language
	switch {
	case errors.Is(err, service.ErrPasswordMismatch):
		BadRequest(c, ErrCodeInvalidRequest, i18n.T(lang, "passwords_do_not_match"))
	case errors.Is(err, service.ErrInvalidImageType):
		BadRequest(c, ErrCodeInvalidFileType, i18n.T(lang, "invalid_file_type"))
	case errors.Is(err, service.ErrNoImage):
		MissingField(c, "plant_image")
	case errors.Is(err, service.ErrValidation):
		BadRequest(c, ErrCodeInvalidRequest, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		BadRequest(c, ErrCodeUsernameExists, i18n.T(lang, "username_exists"))
	case errors.Is(err, service.ErrEmailTaken):
		BadRequest(c, ErrCodeEmailExists, i18n.T(lang, "email_exists"))
	case errors.Is(err, service.ErrDuplicate):
		BadRequest(c, ErrCodeInvalidRequest, err.Error())
	case errors.Is(err, service.ErrInvalidLogin):
		ErrorResponse(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, i18n.T(lang, "invalid_credentials"))
	case errors.Is(err, service.ErrInactiveUser):
		ErrorResponse(c, http.StatusForbidden, ErrCodeUserDisabled, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		Forbidden(c, i18n.T(lang, "access_denied"))
	case errors.Is(err, service.ErrNotFound):
		if notFoundCode == "" {
			notFoundCode = ErrCodeNotFound
		}
		NotFound(c, notFoundCode, i18n.T(lang, "not_found"))
	case errors.Is(err, identify.ErrIdentificationFailed):
		ErrorResponseWithDetails(c, http.StatusBadGateway, ErrCodeIdentificationFailed,
			i18n.T(lang, "identification_failed"), gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
		InternalError(c, i18n.T(lang, "error_occurred")+": "+err.Error())
	}
}
