package blog

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"greencouncil-api/internal/api/respond"
	"greencouncil-api/internal/content"
	"greencouncil-api/internal/domain/blog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	store *content.Store[blog.Post, blog.PostTranslation]
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{store: content.NewStore(db, Mapping())}
}

// Mapping binds the generic Entity+Translation store to the blog tables.
func Mapping() content.Mapping[blog.Post, blog.PostTranslation] {
	return content.Mapping[blog.Post, blog.PostTranslation]{
		EntityTable:      "posts",
		TranslationTable: "post_translations",
		OwnerColumn:      "post_id",
		DefaultOrder:     "posts.created_at DESC",
		CounterColumn:    "views",
		CategoryColumn:   "category",
		TagsColumn:       "tags",
		EntityID:         func(p *blog.Post) string { return p.ID },
		Slug:             func(p *blog.Post) string { return p.Slug },
		Language:         func(t *blog.PostTranslation) string { return t.Language },
		SetOwner:         func(t *blog.PostTranslation, id string) { t.PostID = id },
		ValidateTranslation: func(t *blog.PostTranslation) error {
			if strings.TrimSpace(t.Title) == "" {
				return fmt.Errorf("%w: title is required for language %q", content.ErrValidation, t.Language)
			}
			return nil
		},
	}
}

func validStatus(s string) bool {
	for _, v := range blog.AllowedStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// GET /api/blog
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
		Tag:      c.Query("tag"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		respond.Error(c, err, "Failed to load blog posts")
		return
	}

	out := make([]Item, 0, len(items))
	for _, p := range items {
		out = append(out, toItem(p))
	}
	c.JSON(http.StatusOK, ListResponse{Items: out, Pagination: pagination})
}

// GET /api/blog/:slug
func (h *Handler) Get(c *gin.Context) {
	lang := content.NormalizeLanguage(c.DefaultQuery("language", content.DefaultLanguage))

	p, err := h.store.GetBySlug(c.Param("slug"), lang)
	if err != nil {
		respond.Error(c, err, "Failed to load blog post")
		return
	}
	c.JSON(http.StatusOK, toItem(*p))
}

// POST /api/blog
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

	post := blog.Post{
		Slug:          req.Slug,
		Status:        status,
		FeaturedImage: req.FeaturedImage,
		ReadTime:      req.ReadTime,
	}
	if err := h.store.Create(&post, toTranslations(req.Translations)); err != nil {
		respond.Error(c, err, "Failed to create blog post")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": post.ID, "message": "Blog post created"})
}

// PUT /api/blog/:slug
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Counters stay off the general update path.
	fields := map[string]interface{}{}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		fields["status"] = *req.Status
	}
	if req.FeaturedImage != nil {
		fields["featured_image"] = *req.FeaturedImage
	}
	if req.ReadTime != nil {
		fields["read_time"] = *req.ReadTime
	}

	if err := h.store.Update(c.Param("slug"), fields, toTranslations(req.Translations)); err != nil {
		respond.Error(c, err, "Failed to update blog post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post updated"})
}

// DELETE /api/blog/:slug
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("slug")); err != nil {
		respond.Error(c, err, "Failed to delete blog post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted"})
}

// POST /api/blog/:slug/like
func (h *Handler) Like(c *gin.Context) {
	if err := h.store.Increment(c.Param("slug"), "likes"); err != nil {
		respond.Error(c, err, "Failed to like blog post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Liked"})
}

// GET /api/blog/meta/categories
func (h *Handler) Categories(c *gin.Context) {
	lang := content.NormalizeLanguage(c.DefaultQuery("language", content.DefaultLanguage))
	categories, err := h.store.DistinctCategories(lang)
	if err != nil {
		respond.Error(c, err, "Failed to load categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GET /api/blog/meta/tags
func (h *Handler) Tags(c *gin.Context) {
	lang := content.NormalizeLanguage(c.DefaultQuery("language", content.DefaultLanguage))
	tags, err := h.store.DistinctTags(lang)
	if err != nil {
		respond.Error(c, err, "Failed to load tags")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
