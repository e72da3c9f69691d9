package resources

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"greencouncil-api/internal/domain/resources"

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

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&resources.Resource{}, &resources.ResourceTranslation{}))

	h := NewHandler(db)
	r := gin.New()
	r.GET("/api/resources", h.List)
	r.GET("/api/resources/:slug", h.Get)
	r.POST("/api/resources", h.Create)
	r.PUT("/api/resources/:slug", h.Update)
	r.DELETE("/api/resources/:slug", h.Delete)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createResource(t *testing.T, r *gin.Engine, slug string, translations []gin.H) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/resources", gin.H{
		"slug":         slug,
		"status":       "published",
		"file_url":     "/files/" + slug + ".pdf",
		"file_type":    "pdf",
		"translations": translations,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateRequiresFileURL(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/resources", gin.H{
		"slug":         "no-file",
		"translations": []gin.H{{"language": "fr", "title": "Sans fichier"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBumpsDownloads(t *testing.T) {
	r, db := newTestRouter(t)
	createResource(t, r, "guide", []gin.H{{"language": "fr", "title": "Guide"}})

	w := doJSON(t, r, http.MethodGet, "/api/resources/guide", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Eventually(t, func() bool {
		var res resources.Resource
		if err := db.Where("slug = ?", "guide").First(&res).Error; err != nil {
			return false
		}
		return res.Downloads >= 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGetUnknownSlug(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/resources/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&resources.Resource{}).Where("downloads > 0").Count(&count).Error)
	assert.Zero(t, count)
}

func TestListTypeFilter(t *testing.T) {
	r, _ := newTestRouter(t)
	createResource(t, r, "guide", []gin.H{
		{"language": "fr", "title": "Guide", "type": "guide"},
	})
	createResource(t, r, "report", []gin.H{
		{"language": "fr", "title": "Rapport", "type": "rapport"},
	})

	w := doJSON(t, r, http.MethodGet, "/api/resources?type=guide", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "guide", resp.Items[0].Slug)
}

func TestUpdateFileFields(t *testing.T) {
	r, _ := newTestRouter(t)
	createResource(t, r, "guide", []gin.H{
		{"language": "fr", "title": "Guide"},
		{"language": "ar", "title": "دليل"},
	})

	w := doJSON(t, r, http.MethodPut, "/api/resources/guide", gin.H{
		"file_url":     "/files/guide-v2.pdf",
		"translations": []gin.H{{"language": "ar", "title": "دليل محدث"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/resources/guide?language=ar", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var item Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "/files/guide-v2.pdf", item.FileURL)
	assert.Equal(t, "دليل محدث", item.Title)

	// replaced set no longer carries the French row
	w = doJSON(t, r, http.MethodGet, "/api/resources/guide?language=fr", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCascades(t *testing.T) {
	r, db := newTestRouter(t)
	createResource(t, r, "gone", []gin.H{{"language": "fr", "title": "Parti"}})

	w := doJSON(t, r, http.MethodDelete, "/api/resources/gone", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var translations int64
	require.NoError(t, db.Model(&resources.ResourceTranslation{}).Count(&translations).Error)
	assert.Zero(t, translations)
}
