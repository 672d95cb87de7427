package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"herbal/internal/config"
	"herbal/internal/entity/dto"
	"herbal/internal/identify"
	"herbal/internal/model"
	"herbal/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

type testServer struct {
	router   *gin.Engine
	repo     model.Repository
	recorder *recordingRepository
}

// recordingRepository remembers the reasons handed to RejectPlant.
type recordingRepository struct {
	model.Repository
	rejectReasons []string
}

func (r *recordingRepository) RejectPlant(ctx context.Context, id uint, reason string) error {
	r.rejectReasons = append(r.rejectReasons, reason)
	return r.Repository.RejectPlant(ctx, id, reason)
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	repo, err := model.OpenRepository(sqlite.Open(filepath.Join(dir, "api.db")))
	require.NoError(t, err)
	images, err := storage.NewLocalStorage(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	cfg := config.Config{
		StoragePublicBaseURL:     "/files",
		UploadMaxBytes:           1 << 20,
		RecentIdentifyMax:        5,
		IdentifyTimeoutS:         5,
		SessionSecret:            "test-secret",
		SessionIssuer:            "herbal-test",
		SessionExpirationMinutes: 60,
		SessionCookieName:        "herbal_session",
		AdminUsername:            "admin",
		AdminEmail:               "admin@example.com",
		AdminPassword:            "admin-pass",
	}
	ctx := context.Background()
	require.NoError(t, model.SeedDefaultCategories(ctx, repo))
	require.NoError(t, model.SeedAdmin(ctx, repo, cfg))

	recorder := &recordingRepository{Repository: repo}
	handler, err := NewHTTPHandler(cfg, recorder, images, identify.NewStub(), nil)
	require.NoError(t, err)

	router := gin.New()
	handler.RegisterRoutes(router)
	return &testServer{router: router, repo: repo, recorder: recorder}
}

func (s *testServer) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) doJSON(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.do(req, token)
}

func (s *testServer) doForm(t *testing.T, path string, form url.Values, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req, token)
}

func (s *testServer) doMultipart(t *testing.T, path string, fields map[string][]string, fileField, fileName string, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, v := range values {
			require.NoError(t, writer.WriteField(key, v))
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return s.do(req, token)
}

func (s *testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	w := s.doJSON(t, http.MethodPost, "/api/auth/login", dto.AuthLoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.AuthResponse
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (s *testServer) register(t *testing.T, username string) *httptest.ResponseRecorder {
	t.Helper()
	return s.doJSON(t, http.MethodPost, "/api/auth/register", dto.AuthRegisterRequest{
		Username:        username,
		Email:           username + "@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}, "")
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var apiErr APIError
	decode(t, w, &apiErr)
	return apiErr.Code
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.doJSON(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	w := s.doJSON(t, http.MethodPost, "/api/auth/register", dto.AuthRegisterRequest{
		Username:        "gardener",
		Email:           "gardener@example.com",
		Password:        "secret123",
		ConfirmPassword: "different",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.register(t, "gardener")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.register(t, "gardener")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrCodeUsernameExists, errorCode(t, w))

	w = s.doJSON(t, http.MethodPost, "/api/auth/login", dto.AuthLoginRequest{Username: "gardener", Password: "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, ErrCodeInvalidCredentials, errorCode(t, w))

	token := s.login(t, "gardener", "secret123")

	w = s.doJSON(t, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var me dto.MeResponse
	decode(t, w, &me)
	require.NotNil(t, me.User)
	assert.Equal(t, "gardener", me.User.Username)
	assert.Equal(t, "user", string(me.User.Role))

	w = s.doJSON(t, http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	// the revoked token no longer identifies the user
	w = s.doJSON(t, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	me = dto.MeResponse{}
	decode(t, w, &me)
	assert.Nil(t, me.User)
}

func TestPlantModerationFlow(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.register(t, "gardener").Code)
	userToken := s.login(t, "gardener", "secret123")
	adminToken := s.login(t, "admin", "admin-pass")

	herbs, err := s.repo.GetCategoryByName(context.Background(), "Herbs")
	require.NoError(t, err)

	fields := map[string][]string{
		"name":            {"Holy Basil"},
		"scientific_name": {"Ocimum tenuiflorum"},
		"common_names":    {"hi:Tulsi"},
		"categories":      {fmt.Sprint(herbs.ID)},
	}

	w := s.doMultipart(t, "/api/plants", fields, "image", "basil.png", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, ErrCodeUnauthorized, errorCode(t, w))

	w = s.doMultipart(t, "/api/plants", fields, "image", "basil.exe", userToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrCodeInvalidFileType, errorCode(t, w))

	w = s.doMultipart(t, "/api/plants", fields, "image", "basil.png", userToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var submitted dto.PlantSubmitResponse
	decode(t, w, &submitted)
	assert.True(t, submitted.Pending)
	assert.Equal(t, []string{"Herbs"}, submitted.Plant.Categories)
	assert.True(t, strings.HasPrefix(submitted.Plant.ImageURL, "/files/plants/"))
	plantPath := fmt.Sprintf("/api/plants/%d", submitted.Plant.ID)
	moderatePath := fmt.Sprintf("/api/admin/plants/%d", submitted.Plant.ID)

	var list dto.PlantListResponse
	w = s.doJSON(t, http.MethodGet, "/api/plants", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	assert.Zero(t, list.Total)

	w = s.doJSON(t, http.MethodGet, plantPath, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ErrCodePlantNotFound, errorCode(t, w))
	w = s.doJSON(t, http.MethodGet, plantPath, nil, userToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.doJSON(t, http.MethodGet, "/api/admin/dashboard", nil, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = s.doJSON(t, http.MethodGet, "/api/admin/dashboard", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	var dashboard dto.AdminDashboard
	decode(t, w, &dashboard)
	assert.EqualValues(t, 1, dashboard.PendingApproval)

	w = s.doJSON(t, http.MethodPost, moderatePath+"/approve", nil, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = s.doJSON(t, http.MethodPost, moderatePath+"/approve", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var moderation dto.ModerationResponse
	decode(t, w, &moderation)
	require.NotNil(t, moderation.Plant)
	assert.True(t, moderation.Plant.IsApproved)
	require.NotNil(t, moderation.Plant.ApprovedBy)
	assert.Equal(t, "admin", moderation.Plant.ApprovedBy.Username)

	list = dto.PlantListResponse{}
	w = s.doJSON(t, http.MethodGet, "/api/search?q=tulsi", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Holy Basil", list.Plants[0].Name)

	list = dto.PlantListResponse{}
	w = s.doJSON(t, http.MethodGet, "/api/plants?category=9999", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	assert.Zero(t, list.Total)

	// 非法的分类参数被忽略，空白关键字等同于不过滤
	for _, path := range []string{"/api/plants?category=abc", "/api/plants?category=-1", "/api/search?q=%20%20"} {
		list = dto.PlantListResponse{}
		w = s.doJSON(t, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, w.Code, path)
		decode(t, w, &list)
		assert.Equal(t, 1, list.Total, path)
	}

	w = s.doJSON(t, http.MethodGet, "/api/categories/9999/plants", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.doJSON(t, http.MethodGet, "/api/me/dashboard", nil, userToken)
	require.Equal(t, http.StatusOK, w.Code)
	var mine dto.UserDashboard
	decode(t, w, &mine)
	assert.EqualValues(t, 1, mine.ApprovedPlants)

	w = s.doForm(t, moderatePath+"/reject", url.Values{"reason": {"duplicate"}}, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, s.recorder.rejectReasons)
	w = s.doForm(t, moderatePath+"/reject", url.Values{"reason": {"duplicate"}}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"duplicate"}, s.recorder.rejectReasons)
	w = s.doJSON(t, http.MethodGet, plantPath, nil, adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIdentifyEndpoint(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(t, "admin", "admin-pass")

	w := s.doMultipart(t, "/api/plants", map[string][]string{
		"name":            {"Holy Basil"},
		"scientific_name": {"Ocimum tenuiflorum L."},
	}, "", "", adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.doMultipart(t, "/api/identify", map[string][]string{"notes": {"from the garden"}}, "", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrCodeMissingField, errorCode(t, w))

	w = s.doMultipart(t, "/api/identify", map[string][]string{"notes": {"from the garden"}}, "plant_image", "leaf.jpg", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.IdentifyResponse
	decode(t, w, &resp)
	assert.Equal(t, "Ocimum tenuiflorum", resp.Result.ScientificName)
	assert.InDelta(t, 0.85, resp.Result.Confidence, 1e-9)
	assert.True(t, resp.MatchFound)
	require.NotNil(t, resp.Identification.SuggestedPlant)
	assert.Equal(t, "from the garden", resp.Identification.UserNotes)

	w = s.doJSON(t, http.MethodGet, "/api/identifications/recent", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var recent dto.IdentificationListResponse
	decode(t, w, &recent)
	require.Len(t, recent.Identifications, 1)
	assert.Equal(t, "Ocimum tenuiflorum", recent.Identifications[0].IdentifiedSpecies)
}

func TestPreferences(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/i18n", nil)
	req.Header.Set("Accept-Language", "es-MX,es;q=0.9")
	w := s.do(req, "")
	require.Equal(t, http.StatusOK, w.Code)
	var translations dto.TranslationsResponse
	decode(t, w, &translations)
	assert.Equal(t, "es", translations.Language)

	w = s.doJSON(t, http.MethodPost, "/api/preferences/language/fr", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.doJSON(t, http.MethodPost, "/api/preferences/theme/blue", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.doJSON(t, http.MethodPost, "/api/preferences/language/hi", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var prefs dto.PreferenceResponse
	decode(t, w, &prefs)
	assert.Equal(t, "hi", prefs.Preferences.Language)
	require.NotEmpty(t, prefs.Token)
	assert.NotEmpty(t, w.Result().Cookies())

	w = s.doJSON(t, http.MethodPost, "/api/preferences/theme/dark", nil, prefs.Token)
	require.Equal(t, http.StatusOK, w.Code)
	prefs = dto.PreferenceResponse{}
	decode(t, w, &prefs)
	assert.Equal(t, dto.Preferences{Language: "hi", Theme: "dark"}, prefs.Preferences)

	translations = dto.TranslationsResponse{}
	w = s.doJSON(t, http.MethodGet, "/api/i18n", nil, prefs.Token)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &translations)
	assert.Equal(t, "hi", translations.Language)
	assert.Equal(t, "होम", translations.Translations["home"])
}

func TestAdminUserManagement(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.register(t, "gardener").Code)
	userToken := s.login(t, "gardener", "secret123")
	adminToken := s.login(t, "admin", "admin-pass")

	w := s.doJSON(t, http.MethodGet, "/api/admin/users", nil, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.doJSON(t, http.MethodGet, "/api/admin/users?keyword=garden", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	var users dto.UserListResponse
	decode(t, w, &users)
	require.Len(t, users.Users, 1)
	gardenerID := users.Users[0].ID

	inactive := false
	w = s.doJSON(t, http.MethodPatch, fmt.Sprintf("/api/admin/users/%d", gardenerID), dto.UserUpdateRequest{IsActive: &inactive}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// a deactivated account keeps its token but loses access
	w = s.doJSON(t, http.MethodGet, "/api/me/dashboard", nil, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, ErrCodeUserDisabled, errorCode(t, w))

	w = s.doJSON(t, http.MethodPatch, "/api/admin/users/abc", dto.UserUpdateRequest{IsActive: &inactive}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
