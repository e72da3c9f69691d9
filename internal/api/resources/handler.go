package resources

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"greencouncil-api/internal/api/respond"
	"greencouncil-api/internal/content"
	"greencouncil-api/internal/domain/resources"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	store *content.Store[resources.Resource, resources.ResourceTranslation]
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{store: content.NewStore(db, Mapping())}
}

// Mapping binds the generic store to the resource tables. Reading a resource
// by slug bumps its download counter.
func Mapping() content.Mapping[resources.Resource, resources.ResourceTranslation] {
	return content.Mapping[resources.Resource, resources.ResourceTranslation]{
		EntityTable:      "resources",
		TranslationTable: "resource_translations",
		OwnerColumn:      "resource_id",
		DefaultOrder:     "resources.created_at DESC",
		CounterColumn:    "downloads",
		CategoryColumn:   "category",
		TypeColumn:       "type",
		TagsColumn:       "tags",
		EntityID:         func(r *resources.Resource) string { return r.ID },
		Slug:             func(r *resources.Resource) string { return r.Slug },
		Language:         func(t *resources.ResourceTranslation) string { return t.Language },
		SetOwner:         func(t *resources.ResourceTranslation, id string) { t.ResourceID = id },
		ValidateTranslation: func(t *resources.ResourceTranslation) error {
			if strings.TrimSpace(t.Title) == "" {
				return fmt.Errorf("%w: title is required for language %q", content.ErrValidation, t.Language)
			}
			return nil
		},
	}
}

func validStatus(s string) bool {
	for _, v := range resources.AllowedStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// GET /api/resources
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	status := c.DefaultQuery("status", content.StatusPublished)
	if status == "all" {
		status = ""
	}

	items, pagination, err := h.store.List(content.ListOptions{
		Language: content.NormalizeLanguage(c.DefaultQuery("language", content.DefaultLanguage)),
		Status:   status,
		Category: c.Query("category"),
		Type:     c.Query("type"),
		Tag:      c.Query("tag"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		respond.Error(c, err, "Failed to load resources")
		return
	}

	out := make([]Item, 0, len(items))
	for _, r := range items {
		out = append(out, toItem(r))
	}
	c.JSON(http.StatusOK, ListResponse{Items: out, Pagination: pagination})
}

// GET /api/resources/:slug
func (h *Handler) Get(c *gin.Context) {
	lang := content.NormalizeLanguage(c.DefaultQuery("language", content.DefaultLanguage))

	r, err := h.store.GetBySlug(c.Param("slug"), lang)
	if err != nil {
		respond.Error(c, err, "Failed to load resource")
		return
	}
	c.JSON(http.StatusOK, toItem(*r))
}

// POST /api/resources
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = content.StatusDraft
	}
	if !validStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	resource := resources.Resource{
		Slug:     req.Slug,
		Status:   status,
		FileURL:  req.FileURL,
		FileSize: req.FileSize,
		FileType: req.FileType,
	}
	if err := h.store.Create(&resource, toTranslations(req.Translations)); err != nil {
		respond.Error(c, err, "Failed to create resource")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": resource.ID, "message": "Resource created"})
}

// PUT /api/resources/:slug
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		fields["status"] = *req.Status
	}
	if req.FileURL != nil {
		fields["file_url"] = *req.FileURL
	}
	if req.FileSize != nil {
		fields["file_size"] = *req.FileSize
	}
	if req.FileType != nil {
		fields["file_type"] = *req.FileType
	}

	if err := h.store.Update(c.Param("slug"), fields, toTranslations(req.Translations)); err != nil {
		respond.Error(c, err, "Failed to update resource")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resource updated"})
}

// DELETE /api/resources/:slug
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("slug")); err != nil {
		respond.Error(c, err, "Failed to delete resource")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resource deleted"})
}
