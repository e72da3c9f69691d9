package events

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"greencouncil-api/internal/api/respond"
	"greencouncil-api/internal/content"
	"greencouncil-api/internal/domain/events"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	store *content.Store[events.Event, events.EventTranslation]
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{store: content.NewStore(db, Mapping())}
}

// Mapping binds the generic store to the event tables. Events list in
// chronological order rather than by creation time.
func Mapping() content.Mapping[events.Event, events.EventTranslation] {
	return content.Mapping[events.Event, events.EventTranslation]{
		EntityTable:      "events",
		TranslationTable: "event_translations",
		OwnerColumn:      "event_id",
		DefaultOrder:     "events.start_date ASC",
		CategoryColumn:   "category",
		TagsColumn:       "tags",
		EntityID:         func(e *events.Event) string { return e.ID },
		Slug:             func(e *events.Event) string { return e.Slug },
		Language:         func(t *events.EventTranslation) string { return t.Language },
		SetOwner:         func(t *events.EventTranslation, id string) { t.EventID = id },
		ValidateTranslation: func(t *events.EventTranslation) error {
			if strings.TrimSpace(t.Title) == "" {
				return fmt.Errorf("%w: title is required for language %q", content.ErrValidation, t.Language)
			}
			return nil
		},
	}
}

func validStatus(s string) bool {
	for _, v := range events.AllowedStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// GET /api/events
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
		respond.Error(c, err, "Failed to load events")
		return
	}

	out := make([]Item, 0, len(items))
	for _, e := range items {
		out = append(out, toItem(e))
	}
	c.JSON(http.StatusOK, ListResponse{Items: out, Pagination: pagination})
}

// GET /api/events/:slug
func (h *Handler) Get(c *gin.Context) {
	lang := content.NormalizeLanguage(c.DefaultQuery("language", content.DefaultLanguage))

	e, err := h.store.GetBySlug(c.Param("slug"), lang)
	if err != nil {
		respond.Error(c, err, "Failed to load event")
		return
	}
	c.JSON(http.StatusOK, toItem(*e))
}

// POST /api/events
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

	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}

	event := events.Event{
		Slug:             req.Slug,
		Status:           status,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Location:         req.Location,
		Capacity:         req.Capacity,
		Price:            req.Price,
		Currency:         currency,
		RegistrationLink: req.RegistrationLink,
	}
	if err := h.store.Create(&event, toTranslations(req.Translations)); err != nil {
		respond.Error(c, err, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": event.ID, "message": "Event created"})
}

// PUT /api/events/:slug
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
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Capacity != nil {
		fields["capacity"] = *req.Capacity
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Currency != nil {
		fields["currency"] = *req.Currency
	}
	if req.RegistrationLink != nil {
		fields["registration_link"] = *req.RegistrationLink
	}

	if err := h.store.Update(c.Param("slug"), fields, toTranslations(req.Translations)); err != nil {
		respond.Error(c, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated"})
}

// DELETE /api/events/:slug
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("slug")); err != nil {
		respond.Error(c, err, "Failed to delete event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
