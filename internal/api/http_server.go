package api

import (
	"herbal/internal/auth"
	"herbal/internal/config"
	"herbal/internal/entity/common"
	"herbal/internal/identify"
	"herbal/internal/model"
	"herbal/internal/service"
	"herbal/internal/storage"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg               config.Config
	repo              model.Repository
	storagePublicBase string
	sessions          *auth.Manager
	revocations       auth.RevocationStore
	identifyTimeout   time.Duration

	// 服务层
	plants          *service.PlantService
	users           *service.UserService
	identifications *service.IdentificationService
}

// NewHTTPHandler 创建 HTTP 处理器实例
func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage, identifier identify.Identifier, revocations auth.RevocationStore) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.SessionExpirationMinutes) * time.Minute
	sessions, err := auth.NewManager(cfg.SessionSecret, cfg.SessionIssuer, expiry)
	if err != nil {
		return nil, err
	}
	if revocations == nil {
		revocations = auth.NewMemoryRevocationStore()
	}
	if err := registerValidators(); err != nil {
		return nil, err
	}

	identifyTimeout := time.Duration(cfg.IdentifyTimeoutS) * time.Second
	if identifyTimeout <= 0 {
		identifyTimeout = 30 * time.Second
	}

	return &HTTPHandler{
		cfg:               cfg,
		repo:              repo,
		storagePublicBase: normalisePublicBase(cfg.StoragePublicBaseURL),
		sessions:          sessions,
		revocations:       revocations,
		identifyTimeout:   identifyTimeout,
		plants:            service.NewPlantService(repo, store),
		users:             service.NewUserService(repo),
		identifications:   service.NewIdentificationService(repo, store, identifier),
	}, nil
}

// RegisterRoutes mounts the JSON API and health endpoints.
func (h *HTTPHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	apiGroup := r.Group("/api")
	apiGroup.Use(h.SessionMiddleware())

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
	authGroup.POST("/logout", h.Logout)
	authGroup.GET("/me", h.Me)

	apiGroup.GET("/plants", h.ListPlants)
	apiGroup.GET("/plants/:id", h.GetPlant)
	apiGroup.POST("/plants", h.RequireLogin(), h.SubmitPlant)
	apiGroup.GET("/search", h.SearchPlants)

	apiGroup.GET("/categories", h.ListCategories)
	apiGroup.GET("/categories/:id/plants", h.CategoryPlants)

	apiGroup.POST("/identify", h.IdentifyPlant)
	apiGroup.GET("/identifications/recent", h.RecentIdentifications)

	apiGroup.POST("/preferences/language/:lang", h.SetLanguage)
	apiGroup.POST("/preferences/theme/:theme", h.SetTheme)
	apiGroup.GET("/i18n", h.Translations)

	apiGroup.GET("/me/dashboard", h.RequireLogin(), h.MyDashboard)

	admin := apiGroup.Group("/admin")
	admin.Use(h.RequireLogin())
	admin.GET("/dashboard", h.RequireCapability(common.CapViewPending), h.AdminDashboard)
	admin.POST("/plants/:id/approve", h.RequireCapability(common.CapApprovePlant), h.ApprovePlant)
	admin.POST("/plants/:id/reject", h.RequireCapability(common.CapRejectPlant), h.RejectPlant)
	admin.GET("/users", h.RequireCapability(common.CapManageUsers), h.ListUsers)
	admin.PATCH("/users/:id", h.RequireCapability(common.CapManageUsers), h.UpdateUser)
}

// normalisePublicBase 规范化公共 URL 基础路径
func normalisePublicBase(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = "/files"
	}
	if isAbsoluteURL(trimmed) {
		return strings.TrimRight(trimmed, "/")
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return strings.TrimRight(trimmed, "/")
}
