package resources

import (
	"time"

	"greencouncil-api/internal/content"
	"greencouncil-api/internal/domain/resources"
)

// ---------- requests

type TranslationInput struct {
	Language    string   `json:"language" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type CreateRequest struct {
	Slug         string             `json:"slug" binding:"required"`
	Status       string             `json:"status"`
	FileURL      string             `json:"file_url" binding:"required"`
	FileSize     int64              `json:"file_size"`
	FileType     string             `json:"file_type"`
	Translations []TranslationInput `json:"translations" binding:"required"`
}

type UpdateRequest struct {
	Status       *string            `json:"status"`
	FileURL      *string            `json:"file_url"`
	FileSize     *int64             `json:"file_size"`
	FileType     *string            `json:"file_type"`
	Translations []TranslationInput `json:"translations" binding:"required"`
}

// ---------- responses

type Item struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Status    string `json:"status"`
	FileURL   string `json:"file_url"`
	FileSize  int64  `json:"file_size"`
	FileType  string `json:"file_type,omitempty"`
	Downloads int64  `json:"downloads"`

	Language    string   `json:"language"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListResponse struct {
	Items      []Item             `json:"items"`
	Pagination content.Pagination `json:"pagination"`
}

func toItem(r resources.Resource) Item {
	item := Item{
		ID:        r.ID,
		Slug:      r.Slug,
		Status:    r.Status,
		FileURL:   r.FileURL,
		FileSize:  r.FileSize,
		FileType:  r.FileType,
		Downloads: r.Downloads,
		Tags:      []string{},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if len(r.Translations) > 0 {
		tr := r.Translations[0]
		item.Language = tr.Language
		item.Title = tr.Title
		item.Description = tr.Description
		item.Type = tr.Type
		item.Category = tr.Category
		if tr.Tags != nil {
			item.Tags = tr.Tags
		}
	}
	return item
}

func toTranslations(in []TranslationInput) []resources.ResourceTranslation {
	out := make([]resources.ResourceTranslation, 0, len(in))
	for _, t := range in {
		out = append(out, resources.ResourceTranslation{
			Language:    t.Language,
			Title:       t.Title,
			Description: t.Description,
			Type:        t.Type,
			Category:    t.Category,
			Tags:        content.StringList(t.Tags),
		})
	}
	return out
}
