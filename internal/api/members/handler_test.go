package members

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"greencouncil-api/internal/domain/members"

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
	require.NoError(t, db.AutoMigrate(&members.Member{}))

	h := NewHandler(db)
	r := gin.New()
	r.GET("/api/members", h.List)
	r.GET("/api/members/stats/summary", h.Stats)
	r.GET("/api/members/:id", h.Get)
	r.POST("/api/members", h.Create)
	r.PUT("/api/members/:id", h.Update)
	r.DELETE("/api/members/:id", h.Delete)
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

func signup(t *testing.T, r *gin.Engine, email string, extra gin.H) string {
	t.Helper()
	body := gin.H{
		"email":      email,
		"first_name": "Amina",
		"last_name":  "Benali",
	}
	for k, v := range extra {
		body[k] = v
	}
	w := doJSON(t, r, http.MethodPost, "/api/members", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func TestSignupStartsPending(t *testing.T) {
	r, db := newTestRouter(t)
	id := signup(t, r, "amina@example.org", gin.H{
		// signup never chooses its own status
		"status":    "active",
		"language":  "ar",
		"interests": []string{"certification", "training"},
	})

	var m members.Member
	require.NoError(t, db.Where("id = ?", id).First(&m).Error)
	assert.Equal(t, members.StatusPending, m.Status)
	assert.Equal(t, members.TypeIndividual, m.MembershipType)
	assert.Equal(t, "ar", m.Language)
}

func TestSignupValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/members", gin.H{
		"email": "not-an-email", "first_name": "A", "last_name": "B",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/members", gin.H{
		"email": "ok@example.org", "first_name": "A", "last_name": "B",
		"membership_type": "platinum",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupDuplicateEmail(t *testing.T) {
	r, _ := newTestRouter(t)
	signup(t, r, "amina@example.org", nil)

	w := doJSON(t, r, http.MethodPost, "/api/members", gin.H{
		"email": "amina@example.org", "first_name": "Amina", "last_name": "Benali",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateStatusAndEmailUniqueness(t *testing.T) {
	r, _ := newTestRouter(t)
	id := signup(t, r, "amina@example.org", nil)
	signup(t, r, "karim@example.org", nil)

	w := doJSON(t, r, http.MethodPut, "/api/members/"+id, gin.H{"status": "active"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/members/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var m members.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, members.StatusActive, m.Status)

	w = doJSON(t, r, http.MethodPut, "/api/members/"+id, gin.H{"status": "frozen"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/members/"+id, gin.H{"email": "karim@example.org"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/members/"+id, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/members/unknown-id", gin.H{"status": "active"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListFilters(t *testing.T) {
	r, _ := newTestRouter(t)
	a := signup(t, r, "a@example.org", nil)
	signup(t, r, "b@example.org", gin.H{"membership_type": "corporate", "organization": "EcoBuild"})

	w := doJSON(t, r, http.MethodPut, "/api/members/"+a, gin.H{"status": "active"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/members?status=active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Items      []members.Member `json:"items"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "a@example.org", resp.Items[0].Email)

	w = doJSON(t, r, http.MethodGet, "/api/members?type=corporate", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "b@example.org", resp.Items[0].Email)

	w = doJSON(t, r, http.MethodGet, "/api/members", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Pagination.Total)
}

func TestDelete(t *testing.T) {
	r, _ := newTestRouter(t)
	id := signup(t, r, "gone@example.org", nil)

	w := doJSON(t, r, http.MethodDelete, "/api/members/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/members/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/members/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatsSummary(t *testing.T) {
	r, _ := newTestRouter(t)
	a := signup(t, r, "a@example.org", nil)
	b := signup(t, r, "b@example.org", nil)
	signup(t, r, "c@example.org", nil)

	doJSON(t, r, http.MethodPut, "/api/members/"+a, gin.H{"status": "active"})
	doJSON(t, r, http.MethodPut, "/api/members/"+b, gin.H{"status": "inactive"})

	w := doJSON(t, r, http.MethodGet, "/api/members/stats/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var s StatsSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, int64(3), s.Total)
	assert.Equal(t, int64(1), s.Active)
	assert.Equal(t, int64(1), s.Pending)
	assert.Equal(t, int64(1), s.Inactive)

	require.Len(t, s.Monthly, 12)
	current := s.Monthly[len(s.Monthly)-1]
	assert.Equal(t, int64(3), current.Count)

	var earlier int64
	for _, m := range s.Monthly[:len(s.Monthly)-1] {
		earlier += m.Count
	}
	assert.Zero(t, earlier)
}
