package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"greencouncil-api/config"
	"greencouncil-api/internal/app/http/middleware"
	"greencouncil-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&users.User{}, &users.VerificationToken{}))

	h := NewHandler(db)
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.GET("/api/auth/verify", h.VerifyEmail)
	r.POST("/api/auth/login", h.Login)

	staff := r.Group("/", middleware.AuthMiddleware())
	staff.POST("/api/auth/change-password", h.ChangePassword)
	staff.GET("/staff-only", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})

	admin := r.Group("/", middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/admin-only", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndVerify(t *testing.T, r *gin.Engine, db *gorm.DB, email, password string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Sami", "lastname": "Idrissi", "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var verif users.VerificationToken
	require.NoError(t, db.Order("id DESC").First(&verif).Error)

	w = doJSON(t, r, http.MethodGet, "/api/auth/verify?token="+verif.Token, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func login(t *testing.T, r *gin.Engine, email, password string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp.Token
}

func TestRegisterVerifyLogin(t *testing.T) {
	r, db := newTestRouter(t)
	registerAndVerify(t, r, db, "sami@example.org", "passw0rd1")

	w, token := login(t, r, "sami@example.org", "passw0rd1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotEmpty(t, token)

	w = doJSON(t, r, http.MethodGet, "/staff-only", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sami@example.org")
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, password := range []string{"short1", "lettersonly", "12345678"} {
		w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"name": "A", "lastname": "B", "email": "weak@example.org", "password": password,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "password %q accepted", password)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, db := newTestRouter(t)
	registerAndVerify(t, r, db, "sami@example.org", "passw0rd1")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Sami", "lastname": "Idrissi", "email": "sami@example.org", "password": "passw0rd1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginFailures(t *testing.T) {
	r, db := newTestRouter(t)

	// unverified account
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Sami", "lastname": "Idrissi", "email": "sami@example.org", "password": "passw0rd1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = login(t, r, "sami@example.org", "passw0rd1")
	assert.Equal(t, http.StatusForbidden, w.Code)

	registerAndVerify(t, r, db, "lina@example.org", "passw0rd1")
	w, _ = login(t, r, "lina@example.org", "wrong-password")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = login(t, r, "nobody@example.org", "passw0rd1")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyUnknownToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/verify?token=deadbeef", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/auth/verify", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/staff-only", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/staff-only", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleBlocksEditors(t *testing.T) {
	r, db := newTestRouter(t)
	registerAndVerify(t, r, db, "editor@example.org", "passw0rd1")
	w, token := login(t, r, "editor@example.org", "passw0rd1")
	require.Equal(t, http.StatusOK, w.Code)

	// registration always yields an editor account
	w = doJSON(t, r, http.MethodGet, "/admin-only", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	require.NoError(t, db.Model(&users.User{}).
		Where("email = ?", "editor@example.org").
		Update("role", users.RoleAdmin).Error)
	w, token = login(t, r, "editor@example.org", "passw0rd1")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin-only", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChangePassword(t *testing.T) {
	r, db := newTestRouter(t)
	registerAndVerify(t, r, db, "sami@example.org", "passw0rd1")
	w, token := login(t, r, "sami@example.org", "passw0rd1")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/change-password", token, gin.H{
		"current_password": "wrong", "new_password": "n3wpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/change-password", token, gin.H{
		"current_password": "passw0rd1", "new_password": "n3wpassword",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = login(t, r, "sami@example.org", "passw0rd1")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = login(t, r, "sami@example.org", "n3wpassword")
	assert.Equal(t, http.StatusOK, w.Code)
}
